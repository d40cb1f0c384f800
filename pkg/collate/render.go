// File: pkg/collate/render.go
package collate

import (
	"fmt"
	"strings"
)

// Document gathers everything RenderMarkdown needs. Rendering is pure string
// construction; no I/O happens here.
type Document struct {
	Root    string // Absolute root, shown in the preamble
	MaxKB   int    // Size limit, shown in the preamble
	Tree    string // Optional directory-tree block; empty omits the section
	Entries []FileEntry
	Stats   Stats
}

// RenderMarkdown produces the full collation document: preamble, table of
// contents, optional tree section, one fenced block per file, and the
// trailing skip summary. The table of contents lists only files that passed
// every filter, so a skipped file is never mentioned anywhere.
func RenderMarkdown(doc Document) string {
	lines := []string{
		"# Project Context Collation",
		"",
		fmt.Sprintf("- Root: `%s`", doc.Root),
		fmt.Sprintf("- Files included: %d", len(doc.Entries)),
		fmt.Sprintf("- Max file size: %d KB", doc.MaxKB),
		"",
		"## Table of Contents",
		"",
	}

	for _, entry := range doc.Entries {
		lines = append(lines, fmt.Sprintf("- `%s` (%s)", entry.Path, formatKB(entry.Size)))
	}

	if doc.Tree != "" {
		lines = append(lines, "", "## Directory Tree", "", "```")
		lines = append(lines, strings.Split(strings.TrimRight(doc.Tree, "\n"), "\n")...)
		lines = append(lines, "```")
	}

	lines = append(lines, "", "---", "")

	for i, entry := range doc.Entries {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, fmt.Sprintf("===== FILE: %s =====", entry.Path))
		lines = append(lines, "```"+entry.Language)
		content := strings.TrimRight(entry.Content, "\n")
		if content != "" {
			lines = append(lines, strings.Split(content, "\n")...)
		}
		lines = append(lines, "```")
	}

	lines = append(lines, "", "---", "")
	lines = append(lines,
		fmt.Sprintf("Included files: %d", doc.Stats.Included),
		fmt.Sprintf("Skipped (too large): %d", doc.Stats.TooLarge),
		fmt.Sprintf("Skipped (binary/non-text): %d", doc.Stats.Binary),
		"",
	)

	return strings.Join(lines, "\n")
}

// formatKB renders a byte count the way the table of contents shows it.
func formatKB(n int64) string {
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
