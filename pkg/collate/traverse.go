// File: pkg/collate/traverse.go
package collate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"collate/pkg/ignore"
)

// Collect walks the tree under absRoot and returns every file that passes
// the filters, sorted case-insensitively by relative path, together with the
// skip counts. Unreadable directories are logged and their subtrees skipped;
// per-file problems never abort the walk.
func Collect(absRoot string, cfg Config, ign *ignore.Ignore, logger *zap.Logger) ([]FileEntry, Stats, error) {
	excluded := excludedDirSet(cfg.ExtraDirs)
	allowed := allowedExtSet(cfg.OnlyExts)
	maxBytes := int64(cfg.MaxFileSizeKB) * 1024

	// The document must never collate its own previous output.
	absOutput, err := filepath.Abs(cfg.Output)
	if err != nil {
		absOutput = ""
	}

	var entries []FileEntry
	var stats Stats

	logger.Debug("Starting file collection",
		zap.String("root", absRoot),
		zap.Int("maxFileSizeKB", cfg.MaxFileSizeKB))

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A nil entry means the root itself could not be statted.
			if d == nil {
				return fmt.Errorf("walk root %s: %w", absRoot, err)
			}
			logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == absRoot {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			logger.Warn("Cannot relativize path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if d.IsDir() {
			if excluded[name] {
				logger.Debug("Skipping excluded directory", zap.String("dir", rel))
				return filepath.SkipDir
			}
			if isHiddenName(name) && !cfg.IncludeHidden {
				logger.Debug("Skipping hidden directory", zap.String("dir", rel))
				return filepath.SkipDir
			}
			if ignored, pattern := ign.MatchesPathWithPattern(rel); ignored {
				logger.Debug("Skipping ignored directory",
					zap.String("dir", rel),
					zap.String("pattern", pattern.Line))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if isHiddenName(name) && !cfg.IncludeHidden {
			return nil
		}
		if path == absOutput {
			return nil
		}
		if ignored, pattern := ign.MatchesPathWithPattern(rel); ignored {
			logger.Debug("Skipping ignored file",
				zap.String("file", rel),
				zap.String("pattern", pattern.Line))
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		if len(allowed) > 0 && !allowed[ext] {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			logger.Warn("Failed to stat file", zap.String("file", rel), zap.Error(infoErr))
			return nil
		}
		if info.Size() > maxBytes {
			stats.TooLarge++
			logger.Debug("Skipping oversized file",
				zap.String("file", rel),
				zap.Int64("sizeBytes", info.Size()))
			return nil
		}

		if isCommonBinaryExtension(name) {
			stats.Binary++
			logger.Debug("Skipping file with binary extension", zap.String("file", rel))
			return nil
		}
		binary, binErr := isBinaryFile(path)
		if binErr != nil {
			stats.Binary++
			logger.Warn("Failed to sniff file", zap.String("file", rel), zap.Error(binErr))
			return nil
		}
		if binary {
			stats.Binary++
			logger.Debug("Skipping binary file", zap.String("file", rel))
			return nil
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			stats.Binary++
			logger.Warn("Failed to read file", zap.String("file", rel), zap.Error(readErr))
			return nil
		}

		entries = append(entries, FileEntry{
			Path:     rel,
			Content:  decodeText(raw),
			Language: InferLanguage(name),
			Size:     info.Size(),
		})
		return nil
	})
	if walkErr != nil {
		return nil, stats, walkErr
	}

	sortEntries(entries)
	stats.Included = len(entries)

	logger.Debug("Completed file collection",
		zap.Int("included", stats.Included),
		zap.Int("skippedTooLarge", stats.TooLarge),
		zap.Int("skippedBinary", stats.Binary))
	return entries, stats, nil
}

// sortEntries orders entries case-insensitively by relative path, ties broken
// by raw byte order, so every run enumerates an unchanged tree identically.
func sortEntries(entries []FileEntry) {
	sort.Slice(entries, func(i, j int) bool {
		pi := strings.ToLower(entries[i].Path)
		pj := strings.ToLower(entries[j].Path)
		if pi == pj {
			return entries[i].Path < entries[j].Path
		}
		return pi < pj
	})
}

// isHiddenName reports names carrying the Unix hidden-file marker.
func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}
