package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the CSS colour names accepted in theme files to hex.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"gray":      "#808080",
	"grey":      "#808080",
	"lightgray": "#d3d3d3",
	"lightgrey": "#d3d3d3",
	"darkgray":  "#a9a9a9",
	"darkgrey":  "#a9a9a9",
	"dimgray":   "#696969",
	"silver":    "#c0c0c0",
	"red":       "#ff0000",
	"darkred":   "#8b0000",
	"maroon":    "#800000",
	"orange":    "#ffa500",
	"yellow":    "#ffff00",
	"gold":      "#ffd700",
	"green":     "#008000",
	"lime":      "#00ff00",
	"darkgreen": "#006400",
	"seagreen":  "#2e8b57",
	"olive":     "#808000",
	"teal":      "#008080",
	"cyan":      "#00ffff",
	"aqua":      "#00ffff",
	"blue":      "#0000ff",
	"navy":      "#000080",
	"darkblue":  "#00008b",
	"skyblue":   "#87ceeb",
	"purple":    "#800080",
	"magenta":   "#ff00ff",
	"fuchsia":   "#ff00ff",
	"pink":      "#ffc0cb",
	"brown":     "#a52a2a",
}

// ParseColor accepts "#rgb", "#rrggbb" or a CSS colour name.
func ParseColor(s string) (colorful.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return colorful.Color{}, fmt.Errorf("empty colour")
	}
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	if !strings.HasPrefix(v, "#") {
		return colorful.Color{}, fmt.Errorf("unknown colour %q", s)
	}
	if len(v) == 4 {
		v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// ValidColor reports whether s parses as a colour.
func ValidColor(s string) bool {
	_, err := ParseColor(s)
	return err == nil
}

// lipglossColor converts s for lipgloss, using fallback when s does not parse.
func lipglossColor(s, fallback string) lipgloss.Color {
	c, err := ParseColor(s)
	if err != nil {
		c, _ = ParseColor(fallback)
	}
	return lipgloss.Color(c.Hex())
}

// selectionColor returns a colour halfway between the background and text,
// used to highlight selected text.
func selectionColor(bg, fg string) lipgloss.Color {
	b, errB := ParseColor(bg)
	f, errF := ParseColor(fg)
	if errB != nil || errF != nil {
		return lipgloss.Color("#555555")
	}
	return lipgloss.Color(b.BlendLab(f, 0.35).Clamped().Hex())
}
