// Package theme defines color themes for the fete dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected cell)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (active tab, selection)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = LanternDark

// LanternDark is the default theme - warm amber tones for evening planning.
var LanternDark = Theme{
	Name:          "lantern-dark",
	Background:    lipgloss.Color("#1C1410"),
	Surface:       lipgloss.Color("#2A1F18"),
	SurfaceHover:  lipgloss.Color("#3A2D22"),
	SurfaceBright: lipgloss.Color("#4A3A2C"),
	Border:        lipgloss.Color("#4A3A2C"),
	BorderBright:  lipgloss.Color("#6B5D4F"),
	BorderAccent:  lipgloss.Color("#E8A33D"),
	TextDim:       lipgloss.Color("#6B5D4F"),
	TextMuted:     lipgloss.Color("#8A7A68"),
	TextPrimary:   lipgloss.Color("#F5EBDD"),
	Accent:        lipgloss.Color("#E8A33D"),
	AccentBright:  lipgloss.Color("#F5C06A"),
	AccentDim:     lipgloss.Color("#3D2E1A"),
	Green:         lipgloss.Color("#8CA65C"),
	GreenBright:   lipgloss.Color("#AAC47A"),
	Orange:        lipgloss.Color("#D97C3D"),
	Red:           lipgloss.Color("#C9524A"),
	Blue:          lipgloss.Color("#5C8CA6"),
	BlueBright:    lipgloss.Color("#7DAEC8"),
	Yellow:        lipgloss.Color("#D9B23D"),
	Magenta:       lipgloss.Color("#B8739A"),
	Cyan:          lipgloss.Color("#5CA69A"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	BlueBright:    lipgloss.Color("#6BA3D6"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
}

// Festive is a saturated celebration theme with confetti colors.
var Festive = Theme{
	Name:          "festive",
	Background:    lipgloss.Color("#14121F"),
	Surface:       lipgloss.Color("#221F33"),
	SurfaceHover:  lipgloss.Color("#322D4A"),
	SurfaceBright: lipgloss.Color("#423C5E"),
	Border:        lipgloss.Color("#423C5E"),
	BorderBright:  lipgloss.Color("#6A6190"),
	BorderAccent:  lipgloss.Color("#F25CA2"),
	TextDim:       lipgloss.Color("#6A6190"),
	TextMuted:     lipgloss.Color("#9C93BF"),
	TextPrimary:   lipgloss.Color("#F2EEFF"),
	Accent:        lipgloss.Color("#F25CA2"),
	AccentBright:  lipgloss.Color("#FF85BC"),
	AccentDim:     lipgloss.Color("#3D2138"),
	Green:         lipgloss.Color("#6FD08C"),
	GreenBright:   lipgloss.Color("#8FECAA"),
	Orange:        lipgloss.Color("#FF9F45"),
	Red:           lipgloss.Color("#F2545B"),
	Blue:          lipgloss.Color("#5CA4F2"),
	BlueBright:    lipgloss.Color("#82BEFF"),
	Yellow:        lipgloss.Color("#F2D45C"),
	Magenta:       lipgloss.Color("#C77CF2"),
	Cyan:          lipgloss.Color("#5CE0D8"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("3"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("3"),
	AccentBright:  lipgloss.Color("11"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{LanternDark, FlexokiDark, Festive, Terminal}

// ByName returns a theme by its name, defaulting to LanternDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return LanternDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
