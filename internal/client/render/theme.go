// Package render turns journal data into colored terminal text for the
// CLI. Nothing here reads storage; callers pass snapshots in.
package render

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ratingColors is the "genki" palette, indexed by rating-1.
var ratingColors = [5]lipgloss.Color{"#737873", "#3399B2", "#8FCC75", "#FFCC70", "#FFB233"}

var ratingEmoji = [5]string{"😞", "😕", "😑", "😊", "😆"}

var (
	cMuted  = lipgloss.Color("244")
	cAccent = lipgloss.Color("205")
	cTitle  = lipgloss.Color("63")
	cGood   = lipgloss.Color("42")

	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cTitle)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cTitle)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

// terminalSize is a seam for term.GetSize.
var terminalSize = term.GetSize

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 60

// TerminalWidth returns the usable width of stdout.
func TerminalWidth() int {
	w, _, err := terminalSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	if w > 4 {
		w -= 4
	}
	return w
}

// RatingEmoji returns the face for rating, or "?" outside 1..5.
func RatingEmoji(rating int) string {
	if rating < 1 || rating > 5 {
		return "?"
	}
	return ratingEmoji[rating-1]
}

// RatingStyle returns the background style for a rating cell. Ratings
// outside 1..5 get no color.
func RatingStyle(rating int) lipgloss.Style {
	s := lipgloss.NewStyle()
	if rating < 1 || rating > 5 {
		return s
	}
	return s.Background(ratingColors[rating-1]).Foreground(lipgloss.Color("#1C1C1C"))
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Swatch renders text on the given #RRGGBB background.
func Swatch(text, hex string) string {
	if hex == "" {
		return text
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("#1C1C1C")).Render(text)
}
