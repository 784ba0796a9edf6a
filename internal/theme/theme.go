// Package theme resolves the window colours from a named chroma style. The
// Theme is built once at startup and handed to the UI read-only.
package theme

import (
	"image/color"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/Akaiko1/code-reader/internal/log"
)

// DefaultName is used when the requested style does not exist.
const DefaultName = "monokai"

// Theme holds the display colours of the application.
type Theme struct {
	Name              string
	Background        color.NRGBA
	Text              color.NRGBA
	Accent            color.NRGBA
	SidebarBackground color.NRGBA
	EditorBackground  color.NRGBA
}

var (
	fallbackBackground = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	fallbackText       = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	fallbackAccent     = color.NRGBA{R: 75, G: 135, B: 220, A: 255}
	fallbackSidebar    = color.NRGBA{R: 37, G: 37, B: 38, A: 255}
)

// Resolve builds the Theme for the chroma style called name, falling back to
// DefaultName when no such style is registered.
func Resolve(name string) *Theme {
	style, ok := styles.Registry[name]
	if !ok {
		if name != "" {
			log.Warnf("theme %q not found, using %s (available: %s)", name, DefaultName, strings.Join(Names(), ", "))
		}
		name = DefaultName
		style = styles.Get(DefaultName)
	}

	bg := style.Get(chroma.Background)
	background := toNRGBA(bg.Background, fallbackBackground)
	sidebar := fallbackSidebar
	if bg.Background.IsSet() {
		sidebar = toNRGBA(bg.Background.Brighten(0.08), fallbackSidebar)
	}

	return &Theme{
		Name:              name,
		Background:        background,
		Text:              toNRGBA(style.Get(chroma.Text).Colour, fallbackText),
		Accent:            toNRGBA(style.Get(chroma.Keyword).Colour, fallbackAccent),
		SidebarBackground: sidebar,
		EditorBackground:  background,
	}
}

// Names lists the available theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toNRGBA(c chroma.Colour, fallback color.NRGBA) color.NRGBA {
	if !c.IsSet() {
		return fallback
	}
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: 255}
}
