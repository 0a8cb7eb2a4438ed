package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/fadedpez/tucoblackjack/pkg/storage"
)

// Styles contains styling for the table display
type Styles struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Money     lipgloss.Style
	Win       lipgloss.Style
	Loss      lipgloss.Style
	Info      lipgloss.Style
	Table     lipgloss.Style
}

// NewStyles builds the styles for out, taking the palette from the store's colors
// section when present
func NewStyles(out io.Writer, store storage.Store) *Styles {
	r := lipgloss.NewRenderer(out)

	gold := paletteColor(store, "text_gold", "#FFD700")
	red := paletteColor(store, "text_red", "#FF0000")
	green := paletteColor(store, "text_green", "#00FF00")
	white := paletteColor(store, "text_white", "#FFFFFF")
	felt := paletteColor(store, "background", "#005000")
	border := paletteColor(store, "table_border", "#8B4513")

	return &Styles{
		Header: r.NewStyle().
			Foreground(white).
			Background(felt).
			Padding(0, 2).
			Bold(true),
		Label: r.NewStyle().
			Foreground(white).
			Bold(true),
		CardRed: r.NewStyle().
			Foreground(red).
			Bold(true),
		CardBlack: r.NewStyle().
			Foreground(white).
			Bold(true),
		Hidden: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Money: r.NewStyle().
			Foreground(gold).
			Bold(true),
		Win: r.NewStyle().
			Foreground(green).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(red).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Table: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}

// paletteColor converts an [r, g, b] entry of colors.<name> to a lipgloss color
func paletteColor(store storage.Store, name, fallback string) lipgloss.Color {
	if store == nil {
		return lipgloss.Color(fallback)
	}
	value, ok := store.Get("colors", name)
	if !ok {
		return lipgloss.Color(fallback)
	}
	rgb, ok := value.([]interface{})
	if !ok || len(rgb) != 3 {
		return lipgloss.Color(fallback)
	}

	var channels [3]int
	for i, v := range rgb {
		switch n := v.(type) {
		case float64:
			channels[i] = int(n)
		case int:
			channels[i] = n
		default:
			return lipgloss.Color(fallback)
		}
		if channels[i] < 0 || channels[i] > 255 {
			return lipgloss.Color(fallback)
		}
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", channels[0], channels[1], channels[2]))
}
