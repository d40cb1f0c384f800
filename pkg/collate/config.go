// File: pkg/collate/config.go
package collate

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config holds every knob for one collation run.
type Config struct {
	Root          string   // Directory to scan
	Output        string   // Destination path for the rendered Markdown document
	MaxFileSizeKB int      // Maximum size (in KB) of files to include; larger files are skipped
	IncludeHidden bool     // Include dotfiles and dot-directories
	ExtraDirs     []string // Directory names to exclude on top of the defaults
	OnlyExts      []string // Extension allow-list; empty permits every extension
	IgnoreFile    string   // Optional global ignore-pattern file
	Tree          bool     // Add a directory-tree section to the document
	Verbose       bool     // Enable debug logging
}

// DefaultConfig returns the flag defaults: scan the working directory into
// project_context.md with a 1024 KB size cap.
func DefaultConfig() Config {
	return Config{
		Root:          ".",
		Output:        "project_context.md",
		MaxFileSizeKB: 1024,
	}
}

// Normalize canonicalizes the list fields in place. Extensions are trimmed,
// lower-cased, and dotted; directory names are trimmed; empty entries drop
// out.
func (c *Config) Normalize() {
	c.OnlyExts = normalizeExtensions(c.OnlyExts)
	c.ExtraDirs = normalizeDirNames(c.ExtraDirs)
}

// Validate rejects configurations that cannot produce a run.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.MaxFileSizeKB, validation.Min(1)),
	)
}

// normalizeExtensions canonicalizes allow-list entries so ".GO", "go", and
// " .go " all compare equal.
func normalizeExtensions(exts []string) []string {
	var out []string
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// normalizeDirNames trims directory names and drops empty entries.
func normalizeDirNames(names []string) []string {
	var out []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
