// Package theme holds the persisted dark/light preference and the colors
// used for each theme.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Theme is the color theme of the presentation.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Parse maps a stored value to a Theme. Only "light" selects the light
// theme; anything else, including an empty value, is dark.
func Parse(s string) Theme {
	if s == string(Light) {
		return Light
	}
	return Dark
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Store persists the preference. Errors are tolerated by Preference.
type Store interface {
	LoadTheme() (string, error)
	SaveTheme(name string) error
}

// Renderer is anything that must be recolored on a theme change.
type Renderer interface {
	SetTheme(t Theme)
}

// Preference is the process-wide theme preference.
type Preference struct {
	store     Store
	current   Theme
	renderers []Renderer
}

// Load reads the preference once. A nil or failing store yields Dark.
func Load(store Store, renderers ...Renderer) *Preference {
	p := &Preference{store: store, current: Dark, renderers: renderers}
	if store == nil {
		return p
	}
	name, err := store.LoadTheme()
	if err != nil {
		logrus.Warnf("theme preference unavailable, using dark: %v", err)
		return p
	}
	p.current = Parse(name)
	return p
}

// Current returns the active theme.
func (p *Preference) Current() Theme { return p.current }

// Toggle switches theme, writes it back and recolors every renderer once.
func (p *Preference) Toggle() Theme {
	p.Set(p.current.Other())
	return p.current
}

// Set applies t. Setting the active theme again is a no-op.
func (p *Preference) Set(t Theme) {
	if t == p.current {
		return
	}
	p.current = t
	if p.store != nil {
		if err := p.store.SaveTheme(string(t)); err != nil {
			logrus.Warnf("could not persist theme preference: %v", err)
		}
	}
	for _, r := range p.renderers {
		r.SetTheme(t)
	}
}

// Palette is the set of colors a theme renders with.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Teal       lipgloss.Color
	Faint      lipgloss.Color
	Alert      lipgloss.Color
	// Backdrop is the base color of the decorative field.
	Backdrop lipgloss.Color
	// GlamourStyle names the glamour standard style for slide bodies.
	GlamourStyle string
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return Palette{
			Background:   lipgloss.Color("#fafaf9"),
			Foreground:   lipgloss.Color("#18181b"),
			Muted:        lipgloss.Color("#52525b"),
			Accent:       lipgloss.Color("#4f46e5"),
			Teal:         lipgloss.Color("#0d9488"),
			Faint:        lipgloss.Color("#d4d4d8"),
			Alert:        lipgloss.Color("#dc2626"),
			Backdrop:     lipgloss.Color("#4f46e5"),
			GlamourStyle: "light",
		}
	}
	return Palette{
		Background:   lipgloss.Color("#050505"),
		Foreground:   lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#a1a1aa"),
		Accent:       lipgloss.Color("#6366f1"),
		Teal:         lipgloss.Color("#2dd4bf"),
		Faint:        lipgloss.Color("#27272a"),
		Alert:        lipgloss.Color("#f87171"),
		Backdrop:     lipgloss.Color("#6366f1"),
		GlamourStyle: "dark",
	}
}
