package scaffold

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeSelector aliases the go-theme selector contract so callers do not need
// to import go-theme directly for the common wiring.
type ThemeSelector = theme.ThemeSelector

// resolveTheme turns the request's theme choice into the context map exposed
// to templates as `theme`. Without a selector or a theme name the map is
// present but empty, so templates can reference theme keys unconditionally.
func (g *Generator) resolveTheme(req Request) (map[string]any, error) {
	empty := map[string]any{
		"tokens":  map[string]string{},
		"cssVars": map[string]string{},
	}

	if g.themeSelector == nil {
		return empty, nil
	}

	name := strings.TrimSpace(req.ThemeName)
	if name == "" {
		name = g.defaultTheme
	}
	if name == "" {
		return empty, nil
	}

	variant := strings.TrimSpace(req.ThemeVariant)
	if variant == "" {
		variant = g.defaultVariant
	}

	selection, err := g.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("scaffold: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return empty, nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if v, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return map[string]any{
		"name":    selection.Theme,
		"variant": selection.Variant,
		"tokens":  tokens,
		"cssVars": cssVars,
	}, nil
}
