// Package theme defines color themes for the horizon dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
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
var Active = Dusk

// Dusk is the default theme: deep indigo night sky with an amber accent.
var Dusk = Theme{
	Name:          "dusk",
	Background:    lipgloss.Color("#0D1020"),
	Surface:       lipgloss.Color("#161A2E"),
	SurfaceHover:  lipgloss.Color("#222741"),
	SurfaceBright: lipgloss.Color("#2D3352"),
	Border:        lipgloss.Color("#3A4063"),
	BorderBright:  lipgloss.Color("#545B85"),
	BorderAccent:  lipgloss.Color("#E8A33D"),
	TextDim:       lipgloss.Color("#4D5478"),
	TextMuted:     lipgloss.Color("#8A91B4"),
	TextPrimary:   lipgloss.Color("#E6E9F5"),
	Accent:        lipgloss.Color("#E8A33D"),
	AccentBright:  lipgloss.Color("#F5BE66"),
	AccentDim:     lipgloss.Color("#3A2E14"),
	Green:         lipgloss.Color("#7FB069"),
	GreenBright:   lipgloss.Color("#9ED08A"),
	Orange:        lipgloss.Color("#E07A3F"),
	Red:           lipgloss.Color("#E35D6A"),
	Blue:          lipgloss.Color("#5E81F4"),
	BlueBright:    lipgloss.Color("#86A3FF"),
	Yellow:        lipgloss.Color("#E3C567"),
	Magenta:       lipgloss.Color("#B06AC9"),
	Cyan:          lipgloss.Color("#53C2C2"),
}

// Gala is a violet/rose evening-event theme.
var Gala = Theme{
	Name:          "gala",
	Background:    lipgloss.Color("#16101E"),
	Surface:       lipgloss.Color("#221831"),
	SurfaceHover:  lipgloss.Color("#2F2244"),
	SurfaceBright: lipgloss.Color("#3C2C57"),
	Border:        lipgloss.Color("#4A3A68"),
	BorderBright:  lipgloss.Color("#66548A"),
	BorderAccent:  lipgloss.Color("#D774AD"),
	TextDim:       lipgloss.Color("#5C4F76"),
	TextMuted:     lipgloss.Color("#A393C2"),
	TextPrimary:   lipgloss.Color("#F0E9F8"),
	Accent:        lipgloss.Color("#D774AD"),
	AccentBright:  lipgloss.Color("#EE9BC8"),
	AccentDim:     lipgloss.Color("#3B1F30"),
	Green:         lipgloss.Color("#8BC77E"),
	GreenBright:   lipgloss.Color("#ABE09C"),
	Orange:        lipgloss.Color("#EF8F5A"),
	Red:           lipgloss.Color("#E8596B"),
	Blue:          lipgloss.Color("#7E8CE8"),
	BlueBright:    lipgloss.Color("#A2ADF5"),
	Yellow:        lipgloss.Color("#E9C46A"),
	Magenta:       lipgloss.Color("#C77DFF"),
	Cyan:          lipgloss.Color("#6BD1CE"),
}

// Daybreak is a light theme for bright rooms and projector demos.
var Daybreak = Theme{
	Name:          "daybreak",
	Background:    lipgloss.Color("#F6F4EF"),
	Surface:       lipgloss.Color("#ECE9E1"),
	SurfaceHover:  lipgloss.Color("#DFDBD0"),
	SurfaceBright: lipgloss.Color("#D2CDC0"),
	Border:        lipgloss.Color("#C4BEB0"),
	BorderBright:  lipgloss.Color("#A39C8B"),
	BorderAccent:  lipgloss.Color("#1F6F8B"),
	TextDim:       lipgloss.Color("#A39C8B"),
	TextMuted:     lipgloss.Color("#6E6857"),
	TextPrimary:   lipgloss.Color("#2B2A26"),
	Accent:        lipgloss.Color("#1F6F8B"),
	AccentBright:  lipgloss.Color("#2D8FB0"),
	AccentDim:     lipgloss.Color("#D7E6EC"),
	Green:         lipgloss.Color("#4F7942"),
	GreenBright:   lipgloss.Color("#699B59"),
	Orange:        lipgloss.Color("#C05621"),
	Red:           lipgloss.Color("#B3353F"),
	Blue:          lipgloss.Color("#2B6CB0"),
	BlueBright:    lipgloss.Color("#4884C4"),
	Yellow:        lipgloss.Color("#9C7C1C"),
	Magenta:       lipgloss.Color("#97446F"),
	Cyan:          lipgloss.Color("#1D7A74"),
}

// Mono uses ANSI 16 colors only - maximum compatibility.
var Mono = Theme{
	Name:          "mono",
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
var All = []Theme{Dusk, Gala, Daybreak, Mono}

// ByName returns a theme by its name, defaulting to Dusk.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Dusk
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
