package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// IBM Carbon palette, matching the console theme the rest of this demo's
// ecosystem uses for structured log output.
const (
	colorTeal40   = "#3ddbd9"
	colorBlue60   = "#4589ff"
	colorOrange40 = "#ff832b"
	colorRed60    = "#da1e28"
	colorGray60   = "#8d8d8d"
	colorGray10   = "#f4f4f4"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorBlue60))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray60))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray10)).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(colorTeal40))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed60))
)

// newConsoleLogger builds a zerolog.Logger writing through a styled
// ConsoleWriter, the same level-coloring/field-coloring scheme used for
// structured log output elsewhere in this stack.
func newConsoleLogger() zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			color := colorGray60
			switch lvl {
			case "debug":
				color = colorTeal40
			case "info":
				color = colorBlue60
			case "warn":
				color = colorOrange40
			case "error", "fatal":
				color = colorRed60
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(color)).
				Padding(0, 1).
				Render(strings.ToUpper(lvl[:3]))
		},

		FormatTimestamp: func(i any) string {
			return labelStyle.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			return labelStyle.Render(fmt.Sprint(i)) + labelStyle.Render("=")
		},

		FormatMessage: func(i any) string {
			return valueStyle.Render(fmt.Sprint(i))
		},
	}
	return zerolog.New(cw).With().Timestamp().Logger()
}

// printRow renders one aligned "label: value" line for the bench/walk
// summaries.
func printRow(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func printHeading(s string) {
	fmt.Println(headingStyle.Render(s))
}
