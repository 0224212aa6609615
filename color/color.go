// Package color provides the terminal color palette shared by the CLI and the table renderer.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
)

// High-intensity ANSI colors.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Release state colors used in the pretty table.
var (
	Upcoming = Green
	Aired    = Cyan
	Failed   = HiRed
)
