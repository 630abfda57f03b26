package scaffold_test

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-stencil/pkg/scaffold"
)

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

func TestGenerate_ThemeTokensReachTemplates(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"accent": "#123456",
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "light",
		Manifest: manifest,
	}}

	gen := newGenerator(t, scaffold.WithThemeSelector(selector))

	out, err := gen.Generate(context.Background(), scaffold.Request{
		Template:  "folder-card",
		ThemeName: "acme",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "acme" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	if !strings.Contains(string(out), `const accentColor = "#123456"`) {
		t.Fatalf("theme token not interpolated:\n%s", string(out))
	}
}

func TestGenerate_VariantTokensOverlayBase(t *testing.T) {
	manifest := &theme.Manifest{
		Name: "acme",
		Tokens: map[string]string{
			"accent": "#123456",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"accent": "#654321",
				},
			},
		},
	}
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: manifest,
	}}

	gen := newGenerator(t,
		scaffold.WithThemeSelector(selector),
		scaffold.WithThemeDefaults("acme", "dark"),
	)

	out, err := gen.Generate(context.Background(), scaffold.Request{Template: "folder-card"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if selector.calls[0].variant != "dark" {
		t.Fatalf("default variant not forwarded: %+v", selector.calls[0])
	}
	if !strings.Contains(string(out), `const accentColor = "#654321"`) {
		t.Fatalf("variant token did not overlay base:\n%s", string(out))
	}
}

func TestGenerate_NoThemeFallsBackToTemplateDefault(t *testing.T) {
	gen := newGenerator(t)

	out, err := gen.Generate(context.Background(), scaffold.Request{Template: "folder-card"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.Contains(string(out), `const accentColor = "#4f46e5"`) {
		t.Fatalf("expected template default accent:\n%s", string(out))
	}
}

func TestGenerate_ThemeSelectorError(t *testing.T) {
	selector := &stubThemeSelector{err: errSelect}

	gen := newGenerator(t, scaffold.WithThemeSelector(selector))

	_, err := gen.Generate(context.Background(), scaffold.Request{
		Template:  "folder-card",
		ThemeName: "acme",
	})
	if err == nil || !strings.Contains(err.Error(), "select theme") {
		t.Fatalf("expected theme selection error, got %v", err)
	}
}

var errSelect = &selectError{}

type selectError struct{}

func (*selectError) Error() string { return "boom" }
