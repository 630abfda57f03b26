package scaffold

import (
	"strings"

	"github.com/goliatone/go-stencil/pkg/catalog"
	"github.com/goliatone/go-stencil/pkg/emit"
	"github.com/goliatone/go-stencil/pkg/render/template"
)

// Option configures the generator before construction.
type Option func(*Generator)

// WithCatalog supplies an alternate catalog store. When the option is used
// without WithEngine, the engine is built over the catalog's filesystem.
func WithCatalog(store *catalog.Store) Option {
	return func(g *Generator) {
		if store != nil {
			g.catalog = store
		}
	}
}

// WithEngine supplies a pre-configured template renderer.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(g *Generator) {
		if engine != nil {
			g.engine = engine
		}
	}
}

// WithEmitter supplies a pre-configured emitter, e.g. one that creates
// missing parent directories.
func WithEmitter(emitter *emit.Emitter) Option {
	return func(g *Generator) {
		if emitter != nil {
			g.emitter = emitter
		}
	}
}

// WithThemeSelector registers a go-theme selector so theme/variant choices
// resolve to tokens templates can interpolate.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(g *Generator) {
		g.themeSelector = selector
	}
}

// WithThemeDefaults sets the theme and variant used when a request does not
// name one.
func WithThemeDefaults(themeName, variant string) Option {
	return func(g *Generator) {
		g.defaultTheme = strings.TrimSpace(themeName)
		g.defaultVariant = strings.TrimSpace(variant)
	}
}
