package stencil

import (
	"context"

	"github.com/goliatone/go-stencil/pkg/catalog"
	"github.com/goliatone/go-stencil/pkg/emit"
	"github.com/goliatone/go-stencil/pkg/render/template"
	"github.com/goliatone/go-stencil/pkg/scaffold"
)

// Request identifies a catalog entry and the values to render it with.
type Request = scaffold.Request

// Option configures the scaffold generator.
type Option = scaffold.Option

// EmbeddedCatalog returns the catalog parsed from the built-in scaffold
// bundle so callers can inspect or extend the default templates.
func EmbeddedCatalog() (*catalog.Store, error) {
	return catalog.Default()
}

// NewGenerator exposes the scaffold constructor from the top-level module.
func NewGenerator(options ...Option) (*scaffold.Generator, error) {
	return scaffold.New(options...)
}

// Generate renders the named catalog entry with the supplied values and
// returns the resulting source bytes. It is the simplest entry point for
// callers that just want rendered output.
func Generate(ctx context.Context, templateID string, values map[string]any, options ...Option) ([]byte, error) {
	gen, err := scaffold.New(options...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(ctx, Request{Template: templateID, Values: values})
}

// Emit renders the named catalog entry and writes it to output (or the
// entry's default output filename when output is empty), returning the path
// that was written.
func Emit(ctx context.Context, templateID, output string, values map[string]any, options ...Option) (string, error) {
	gen, err := scaffold.New(options...)
	if err != nil {
		return "", err
	}
	return gen.Emit(ctx, Request{Template: templateID, Output: output, Values: values})
}

// WithCatalog supplies an alternate catalog store.
func WithCatalog(store *catalog.Store) Option {
	return scaffold.WithCatalog(store)
}

// WithEngine supplies a pre-configured template renderer.
func WithEngine(engine template.TemplateRenderer) Option {
	return scaffold.WithEngine(engine)
}

// WithEmitter supplies a pre-configured emitter.
func WithEmitter(emitter *emit.Emitter) Option {
	return scaffold.WithEmitter(emitter)
}

// WithThemeSelector registers a go-theme selector so theme tokens resolve
// into template context.
func WithThemeSelector(selector scaffold.ThemeSelector) Option {
	return scaffold.WithThemeSelector(selector)
}

// WithThemeDefaults sets the theme and variant used when a request does not
// name one.
func WithThemeDefaults(themeName, variant string) Option {
	return scaffold.WithThemeDefaults(themeName, variant)
}
