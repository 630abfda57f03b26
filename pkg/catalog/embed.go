package catalog

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed manifest.yaml templates
var embedded embed.FS

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// EmbeddedFS exposes the built-in scaffold bundle for consumers that want to
// extend or inspect the default templates.
func EmbeddedFS() fs.FS {
	return embedded
}

// Default returns the catalog parsed from the embedded bundle. The result is
// cached after the first call.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = LoadFS(embedded)
	})
	return defaultStore, defaultErr
}
