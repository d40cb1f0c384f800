// Package ignore matches root-relative paths against gitignore-style
// pattern files.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-project pattern file read from the scan root.
const FileName = ".collateignore"

// Ignore is a compiled set of ignore patterns. Patterns are evaluated in
// order and the last match wins, so a later negation can re-include a path.
type Ignore struct {
	Patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty pattern set. A nil logger disables logging.
func New(logger *zap.Logger) *Ignore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ignore{
		Patterns: []*Pattern{},
		logger:   logger,
	}
}

// Load builds a pattern set from the root's ignore file plus an optional
// global file. The global file is compiled first so project patterns can
// negate it. Missing files contribute no patterns.
func Load(rootDir, globalPath string, logger *zap.Logger) (*Ignore, error) {
	ig := New(logger)

	if globalPath != "" {
		if err := ig.CompileFile(globalPath); err != nil {
			return nil, err
		}
	}

	if rootDir != "" {
		if err := ig.CompileFile(filepath.Join(rootDir, FileName)); err != nil {
			return nil, err
		}
	}

	return ig, nil
}

// CompileLines parses pattern lines and appends the valid ones.
func (ig *Ignore) CompileLines(lines ...string) {
	for i, line := range lines {
		pattern, negate := parsePatternLine(line)
		if pattern == nil {
			continue
		}
		ig.Patterns = append(ig.Patterns, &Pattern{
			Pattern: pattern,
			Negate:  negate,
			Line:    strings.TrimSpace(line),
			LineNo:  i + 1,
		})
	}
}

// CompileFile reads a pattern file and appends its patterns. A missing file
// is not an error.
func (ig *Ignore) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		ig.logger.Error("Failed to read ignore file", zap.String("file", path), zap.Error(err))
		return err
	}

	lines := strings.Split(string(content), "\n")
	ig.CompileLines(lines...)
	ig.logger.Debug("Compiled ignore patterns",
		zap.String("file", path),
		zap.Int("patterns", len(ig.Patterns)))
	return nil
}

// MatchesPath reports whether a root-relative path is ignored.
func (ig *Ignore) MatchesPath(path string) bool {
	matches, _ := ig.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern reports whether a root-relative path is ignored and
// returns the deciding pattern. Paths may use OS separators.
func (ig *Ignore) MatchesPathWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	var matched *Pattern
	ignored := false

	for _, pattern := range ig.Patterns {
		if pattern.Pattern.MatchString(normalized) {
			matched = pattern
			ignored = !pattern.Negate
		}
	}

	return ignored, matched
}
