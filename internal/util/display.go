package util

import (
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// GetDisplayWidth calculates the actual display width of a string, accounting
// for wide runes in free-text remarks.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth shortens text so its display width does not exceed width,
// appending an ellipsis when truncation happens.
func TruncateToWidth(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.Truncate(text, width, "…")
}

// TerminalWidth returns the current terminal width, or fallback when stdout is
// not a terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
