// Package theme defines the colour schemes shared by the window and
// terminal frontends.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours used to draw a board and its status panel.
type Theme struct {
	Name   string
	Live   lipgloss.Color
	Dead   lipgloss.Color
	Border lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

// Available themes
var (
	// Minimal matches the classic look: black cells on white with black
	// borders.
	Minimal = Theme{
		Name:   "minimal",
		Live:   lipgloss.Color("#000000"),
		Dead:   lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#000000"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#222222"),
		Muted:  lipgloss.Color("#888888"),
	}

	RetroGreen = Theme{
		Name:   "retro",
		Live:   lipgloss.Color("#00ff00"), // Green phosphor
		Dead:   lipgloss.Color("#001100"),
		Border: lipgloss.Color("#005500"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	Ocean = Theme{
		Name:   "ocean",
		Live:   lipgloss.Color("#3b82f6"),
		Dead:   lipgloss.Color("#001a33"),
		Border: lipgloss.Color("#4488aa"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	Sunset = Theme{
		Name:   "sunset",
		Live:   lipgloss.Color("#ff6b6b"), // Coral
		Dead:   lipgloss.Color("#2d1b2e"),
		Border: lipgloss.Color("#8b6b8c"),
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	Cyberpunk = Theme{
		Name:   "cyberpunk",
		Live:   lipgloss.Color("#ff00ff"), // Magenta
		Dead:   lipgloss.Color("#0a0a0a"),
		Border: lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ffff00"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
	}

	// All available themes, in cycling order
	Themes = []Theme{Minimal, RetroGreen, Ocean, Sunset, Cyberpunk}
)

// Get returns a theme by name, falling back to Minimal.
func Get(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Minimal
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Names returns the list of available theme names.
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after name in cycling order.
func Next(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// Light reports whether the theme is drawn on a light background.
func (t Theme) Light() bool {
	return luminance(t.Dead) > 0.5
}

// Term returns c for terminal output. Terminals paint their own background,
// so on a light theme a dark colour gets the theme's background colour as its
// dark-terminal variant and stays visible either way.
func (t Theme) Term(c lipgloss.Color) lipgloss.TerminalColor {
	if t.Light() && luminance(c) < 0.5 {
		return lipgloss.AdaptiveColor{Light: string(c), Dark: string(t.Dead)}
	}
	return c
}

func luminance(c lipgloss.Color) float64 {
	r, g, b := RGB(c)
	return (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
}

// RGB splits a "#rrggbb" colour into components. Anything else is white.
func RGB(c lipgloss.Color) (r, g, b uint8) {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) uint8 {
	var val uint8
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += uint8(c - '0')
		case c >= 'a' && c <= 'f':
			val += uint8(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += uint8(c - 'A' + 10)
		}
	}
	return val
}
