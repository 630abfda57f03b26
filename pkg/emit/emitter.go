package emit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const defaultFileMode fs.FileMode = 0o644

// Option configures the emitter before construction.
type Option func(*Emitter)

// Emitter writes rendered content to destination paths. The zero value is not
// usable; construct instances through New.
type Emitter struct {
	fileMode fs.FileMode
	dirMode  fs.FileMode
	mkdirAll bool
}

// WithFileMode overrides the mode applied to emitted files.
func WithFileMode(mode fs.FileMode) Option {
	return func(e *Emitter) {
		if mode != 0 {
			e.fileMode = mode
		}
	}
}

// WithMkdirAll creates missing parent directories before writing. By default a
// missing parent directory is an error and no file is created.
func WithMkdirAll(dirMode fs.FileMode) Option {
	return func(e *Emitter) {
		e.mkdirAll = true
		if dirMode != 0 {
			e.dirMode = dirMode
		}
	}
}

// New constructs an Emitter using the provided options.
func New(options ...Option) *Emitter {
	emitter := &Emitter{
		fileMode: defaultFileMode,
		dirMode:  0o755,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(emitter)
	}
	return emitter
}

// Write materializes content at path, overwriting any existing file. The
// content on disk equals the content supplied byte for byte.
func (e *Emitter) Write(path string, content []byte) error {
	if e == nil {
		return errors.New("emit: emitter is nil")
	}
	// Blank-only paths are rejected, but the path is otherwise passed through
	// untouched: whitespace is legal in filenames and the file must land at
	// exactly the path the caller named.
	if strings.TrimSpace(path) == "" {
		return errors.New("emit: destination path is required")
	}

	if e.mkdirAll {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, e.dirMode); err != nil {
				return fmt.Errorf("emit: create directory %q: %w", dir, err)
			}
		}
	}

	if err := os.WriteFile(path, content, e.fileMode); err != nil {
		return fmt.Errorf("emit: write %q: %w", path, err)
	}
	return nil
}

// WriteString is a convenience wrapper over Write for string content.
func (e *Emitter) WriteString(path, content string) error {
	return e.Write(path, []byte(content))
}
