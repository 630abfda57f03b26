package catalog

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Catalog icons are small stroke-drawn inline SVGs. The policy admits only
// the shape elements the bundled manifests draw with; anything else in a
// manifest icon (scripts, event handlers, references) is stripped.
var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

var iconShapeElements = []string{"path", "circle", "rect", "line", "polyline"}

var iconShapeAttrs = []string{
	"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
	"points", "rx", "ry", "width", "height",
	"fill", "stroke", "stroke-width", "stroke-linecap", "stroke-linejoin",
	"class",
}

func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()

		policy.AllowElements("svg", "g", "title")
		policy.AllowElements(iconShapeElements...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin",
			"aria-hidden", "role", "focusable", "class",
		).OnElements("svg")

		for _, el := range iconShapeElements {
			policy.AllowAttrs(iconShapeAttrs...).OnElements(el)
		}
		policy.AllowAttrs("id").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
