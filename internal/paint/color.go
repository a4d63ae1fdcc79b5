package paint

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBackdrop is the color pulsing blocks fade into at zero opacity.
const DefaultBackdrop = "#1F2937"

var namedColors = map[string]string{
	"black":       "#000000",
	"white":       "#FFFFFF",
	"red":         "#FF0000",
	"green":       "#008000",
	"blue":        "#0000FF",
	"yellow":      "#FFFF00",
	"orange":      "#FFA500",
	"purple":      "#800080",
	"gray":        "#808080",
	"grey":        "#808080",
	"lightgray":   "#D3D3D3",
	"lightgrey":   "#D3D3D3",
	"darkgray":    "#A9A9A9",
	"darkgrey":    "#A9A9A9",
	"transparent": "",
}

// parseColor accepts "#rgb", "#rrggbb" and a small set of CSS color names.
func parseColor(s string) (colorful.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		if hex == "" {
			return colorful.Color{}, false
		}
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// blend returns the color seen when fill is drawn over backdrop at opacity.
func blend(backdrop colorful.Color, fill string, opacity float64) lipgloss.Color {
	c, ok := parseColor(fill)
	if !ok {
		return lipgloss.Color(backdrop.Hex())
	}
	opacity = max(0, min(1, opacity))
	return lipgloss.Color(backdrop.BlendRgb(c, opacity).Clamped().Hex())
}

// background returns a lipgloss color for a declared background, or false
// when the declaration is empty or not understood.
func background(decl string) (lipgloss.Color, bool) {
	c, ok := parseColor(decl)
	if !ok {
		return "", false
	}
	return lipgloss.Color(c.Hex()), true
}
