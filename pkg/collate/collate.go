// Package collate walks a directory tree, filters files by type, size, and
// visibility, and renders the survivors into a single Markdown document with
// one language-tagged code fence per file.
package collate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"collate/pkg/ignore"
)

// ErrInvalidRoot reports a root path that does not exist or is not a
// directory.
var ErrInvalidRoot = errors.New("root is not a directory")

// Run executes one collation: validate the configuration, resolve and check
// the root, load ignore patterns, collect entries, render the document, and
// write it out. Zero matched files is still a successful run with a written
// document.
func Run(cfg Config, logger *zap.Logger) (*Result, error) {
	start := time.Now()

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	absRoot, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", cfg.Root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, absRoot)
	}

	logger.Info("Starting collation",
		zap.String("root", absRoot),
		zap.String("output", cfg.Output))

	ign, err := ignore.Load(absRoot, cfg.IgnoreFile, logger)
	if err != nil {
		return nil, fmt.Errorf("load ignore patterns: %w", err)
	}

	entries, stats, err := Collect(absRoot, cfg, ign, logger)
	if err != nil {
		return nil, fmt.Errorf("collect files: %w", err)
	}

	doc := Document{
		Root:    absRoot,
		MaxKB:   cfg.MaxFileSizeKB,
		Entries: entries,
		Stats:   stats,
	}
	if cfg.Tree {
		doc.Tree = RenderTree(absRoot, entries)
	}

	markdown := RenderMarkdown(doc)
	if err := WriteOutput(cfg.Output, []byte(markdown), logger); err != nil {
		return nil, err
	}

	absOutput, err := filepath.Abs(cfg.Output)
	if err != nil {
		absOutput = cfg.Output
	}

	result := &Result{
		Root:    absRoot,
		Output:  absOutput,
		Bytes:   len(markdown),
		Stats:   stats,
		Elapsed: time.Since(start),
	}

	logger.Info("Collation complete",
		zap.Int("included", stats.Included),
		zap.Int("skippedTooLarge", stats.TooLarge),
		zap.Int("skippedBinary", stats.Binary),
		zap.Int("bytes", result.Bytes),
		zap.Duration("elapsed", result.Elapsed))
	return result, nil
}
