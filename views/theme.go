package views

import "sort"

// DefaultColor is the theme used for empty or unknown color names.
const DefaultColor = "blue"

var palette = map[string]Theme{
	"blue":   themeFor("blue"),
	"purple": themeFor("purple"),
	"green":  themeFor("green"),
	"orange": themeFor("orange"),
	"indigo": themeFor("indigo"),
	"pink":   themeFor("pink"),
	"cyan":   themeFor("cyan"),
}

func themeFor(c string) Theme {
	return Theme{
		From:   "from-" + c + "-600",
		To:     "to-" + c + "-700",
		Text:   "text-" + c + "-600",
		Bg:     "bg-" + c + "-100",
		Border: "border-" + c + "-200",
	}
}

// ThemeFor resolves a color name against the palette. Unknown names silently
// resolve to the DefaultColor theme.
func ThemeFor(color string) Theme {
	if t, ok := palette[color]; ok {
		return t
	}
	return palette[DefaultColor]
}

// KnownColor reports whether color has its own palette entry.
func KnownColor(color string) bool {
	_, ok := palette[color]
	return ok
}

// Colors returns the palette's color names in sorted order.
func Colors() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
