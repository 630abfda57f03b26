package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-stencil/pkg/catalog"
	"github.com/goliatone/go-stencil/pkg/emit"
	"github.com/goliatone/go-stencil/pkg/render/template"
	gotemplate "github.com/goliatone/go-stencil/pkg/render/template/gotemplate"
)

// Request identifies the catalog entry to render and the values to render it
// with. Output overrides the entry's default output filename when set.
type Request struct {
	Template     string
	Output       string
	Values       map[string]any
	ThemeName    string
	ThemeVariant string
}

// Generator renders catalog entries and emits the result to disk.
type Generator struct {
	catalog *catalog.Store
	engine  template.TemplateRenderer
	emitter *emit.Emitter

	themeSelector  ThemeSelector
	defaultTheme   string
	defaultVariant string
}

// New constructs a Generator. Without options it serves the embedded catalog
// through a pongo2-backed engine and a default emitter.
func New(options ...Option) (*Generator, error) {
	gen := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(gen)
	}

	if gen.catalog == nil {
		store, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("scaffold: load embedded catalog: %w", err)
		}
		gen.catalog = store
	}

	if gen.engine == nil {
		fsys := gen.catalog.FS()
		if fsys == nil {
			return nil, errors.New("scaffold: catalog has no template filesystem")
		}
		engine, err := gotemplate.New(gotemplate.WithFS(fsys))
		if err != nil {
			return nil, fmt.Errorf("scaffold: build template engine: %w", err)
		}
		gen.engine = engine
	}

	if gen.emitter == nil {
		gen.emitter = emit.New()
	}

	return gen, nil
}

// Catalog exposes the store the generator renders from.
func (g *Generator) Catalog() *catalog.Store {
	if g == nil {
		return nil
	}
	return g.catalog
}

// Generate renders the requested catalog entry and returns the resulting
// source bytes without touching disk.
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if g == nil {
		return nil, errors.New("scaffold: generator is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := g.catalog.Entry(req.Template)
	if !ok {
		return nil, fmt.Errorf("scaffold: unknown template %q", req.Template)
	}

	data, err := g.buildContext(entry, req)
	if err != nil {
		return nil, err
	}

	rendered, err := g.engine.RenderTemplate(entry.Template, data)
	if err != nil {
		return nil, fmt.Errorf("scaffold: render %q: %w", entry.ID, err)
	}
	return []byte(rendered), nil
}

// Emit renders the requested entry and writes it to the resolved output path:
// the request output when set, otherwise the entry's default output filename.
// It returns the path that was written.
func (g *Generator) Emit(ctx context.Context, req Request) (string, error) {
	rendered, err := g.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	output := req.Output
	if strings.TrimSpace(output) == "" {
		entry, _ := g.catalog.Entry(req.Template)
		output = entry.Output
	}
	if output == "" {
		return "", fmt.Errorf("scaffold: entry %q has no default output and no output was requested", req.Template)
	}

	if err := g.emitter.Write(output, rendered); err != nil {
		return "", err
	}
	return output, nil
}

func (g *Generator) buildContext(entry catalog.Entry, req Request) (map[string]any, error) {
	data := make(map[string]any, len(entry.Variables)+len(req.Values)+1)

	for _, variable := range entry.Variables {
		value, supplied := req.Values[variable.Name]
		switch {
		case supplied:
			data[variable.Name] = value
		case variable.Default != "":
			data[variable.Name] = variable.Default
		case variable.Required:
			return nil, fmt.Errorf("scaffold: entry %q requires variable %q", entry.ID, variable.Name)
		}
	}

	// Undeclared values pass through so callers can feed bespoke templates.
	for key, value := range req.Values {
		if _, exists := data[key]; !exists {
			data[key] = value
		}
	}

	themeCtx, err := g.resolveTheme(req)
	if err != nil {
		return nil, err
	}
	data["theme"] = themeCtx

	return data, nil
}
