package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)

	// headerBoxStyle for the scan header
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)
)

// FormatScanHeader renders the scan header with session configuration
func FormatScanHeader(w io.Writer, doctreeDir, outDir string, docs int) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %d documents",
		dimStyle.Render("Doctrees:"), titleStyle.Render(doctreeDir),
		dimStyle.Render("Output:"), titleStyle.Render(outDir),
		dimStyle.Render("Queued:"), docs,
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatDocLine renders one processed-document progress line
func FormatDocLine(w io.Writer, docname string, anchors int) {
	indicator := successStyle.Render("✓")
	if anchors == 0 {
		indicator = dimStyle.Render("·")
	}
	fmt.Fprintf(w, "%s %s %s\n", indicator, docname, dimStyle.Render(fmt.Sprintf("(%d anchors)", anchors)))
}

// FormatScanSummary renders the end-of-session summary box
func FormatScanSummary(w io.Writer, entries int, outputPath string) {
	line := fmt.Sprintf("%s %d  %s %s",
		dimStyle.Render("Entries:"), entries,
		dimStyle.Render("File:"), successStyle.Render(outputPath),
	)
	content := titleStyle.Render("Index Written") + "\n" + line
	fmt.Fprintln(w, boxStyle.Render(content))
}
