// File: cmd/summary.go
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"collate/pkg/collate"
)

var (
	summaryPathStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#5B8DEF"))
	summaryMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))
)

// printSummary reports the finished run on stdout. Styling is applied only
// when the writer is a terminal, so redirected output stays plain.
func printSummary(w io.Writer, result *collate.Result) {
	wrote := fmt.Sprintf("Wrote %s", result.Output)
	detail := fmt.Sprintf("%d files, %s; skipped %d oversized, %d binary",
		result.Stats.Included,
		humanize.IBytes(uint64(result.Bytes)),
		result.Stats.TooLarge,
		result.Stats.Binary)

	if isTerminal(w) {
		wrote = summaryPathStyle.Render(wrote)
		detail = summaryMutedStyle.Render(detail)
	}

	fmt.Fprintf(w, "%s (%s)\n", wrote, detail)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
