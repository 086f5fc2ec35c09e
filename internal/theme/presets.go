package theme

import "strings"

var presets = map[string]Theme{
	"white": {BackgroundColor: "white", TextColor: "black", BorderColor: "gray", TabBgColor: "lightgray"},
	"dark":  {BackgroundColor: "black", TextColor: "white", BorderColor: "white", TabBgColor: "#333"},
	"blue":  {BackgroundColor: "#001f3f", TextColor: "white", BorderColor: "white", TabBgColor: "#0074D9"},
	"green": {BackgroundColor: "#2E8B57", TextColor: "white", BorderColor: "white", TabBgColor: "#3CB371"},
}

// presetOrder is the order presets appear in menus and listings.
var presetOrder = []string{"white", "dark", "blue", "green"}

// PresetNames returns the built-in theme names in menu order.
func PresetNames() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// Preset looks up a built-in theme by name, ignoring case.
func Preset(name string) (Theme, bool) {
	t, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
