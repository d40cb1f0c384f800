// File: pkg/ignore/ignore_test.go
package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesPathPatternForms(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"star matches at root", []string{"*.log"}, "app.log", true},
		{"star matches nested", []string{"*.log"}, "logs/app.log", true},
		{"star does not cross extension", []string{"*.log"}, "app.log.txt", false},
		{"directory pattern bare name", []string{"node_modules/"}, "node_modules", true},
		{"directory pattern covers contents", []string{"node_modules/"}, "src/node_modules/pkg/index.js", true},
		{"directory pattern needs full segment", []string{"node_modules/"}, "node_modules_backup", false},
		{"rooted pattern at root", []string{"/dist"}, "dist", true},
		{"rooted pattern covers contents", []string{"/dist"}, "dist/bundle.js", true},
		{"rooted pattern not nested", []string{"/dist"}, "packages/dist", false},
		{"leading double star at root", []string{"**/build"}, "build", true},
		{"leading double star one level", []string{"**/build"}, "a/build", true},
		{"leading double star deep", []string{"**/build"}, "a/b/build/out.txt", true},
		{"trailing double star", []string{"docs/**"}, "docs/guide/index.md", true},
		{"middle double star zero dirs", []string{"a/**/b"}, "a/b", true},
		{"middle double star one dir", []string{"a/**/b"}, "a/x/b", true},
		{"middle double star many dirs", []string{"a/**/b"}, "a/x/y/b", true},
		{"middle double star no merge", []string{"a/**/b"}, "ab", false},
		{"question mark single char", []string{"?.txt"}, "a.txt", true},
		{"question mark not two chars", []string{"?.txt"}, "ab.txt", false},
		{"question mark not slash", []string{"a?b"}, "a/b", false},
		{"escaped hash is literal", []string{`\#notes`}, "#notes", true},
		{"dots are literal", []string{"v1.2"}, "v1x2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ig := New(nil)
			ig.CompileLines(tt.patterns...)
			assert.Equal(t, tt.want, ig.MatchesPath(tt.path))
		})
	}
}

func TestCompileLinesSkipsCommentsAndBlanks(t *testing.T) {
	ig := New(nil)
	ig.CompileLines("# a comment", "", "   ", "real.txt")

	require.Len(t, ig.Patterns, 1)
	assert.Equal(t, "real.txt", ig.Patterns[0].Line)
}

func TestNegationLastMatchWins(t *testing.T) {
	ig := New(nil)
	ig.CompileLines("*.log", "!keep.log")

	assert.True(t, ig.MatchesPath("debug.log"))
	assert.False(t, ig.MatchesPath("keep.log"))
	assert.False(t, ig.MatchesPath("sub/keep.log"))
}

func TestMatchesPathWithPatternReportsRule(t *testing.T) {
	ig := New(nil)
	ig.CompileLines("*.tmp", "cache/")

	ignored, pattern := ig.MatchesPathWithPattern("work/scratch.tmp")
	require.True(t, ignored)
	require.NotNil(t, pattern)
	assert.Equal(t, "*.tmp", pattern.Line)

	ignored, pattern = ig.MatchesPathWithPattern("src/main.go")
	assert.False(t, ignored)
	assert.Nil(t, pattern)
}

func TestMatchesPathNormalizesSeparators(t *testing.T) {
	ig := New(nil)
	ig.CompileLines("build/")

	assert.True(t, ig.MatchesPath(filepath.Join("build", "out.txt")))
}

func TestCompileFileMissingIsNoOp(t *testing.T) {
	ig := New(nil)
	err := ig.CompileFile(filepath.Join(t.TempDir(), "absent"))

	require.NoError(t, err)
	assert.Empty(t, ig.Patterns)
}

func TestCompileFileReadsPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns")
	require.NoError(t, os.WriteFile(path, []byte("*.bak\n# noise\ntmp/\n"), 0o644))

	ig := New(nil)
	require.NoError(t, ig.CompileFile(path))

	assert.Len(t, ig.Patterns, 2)
	assert.True(t, ig.MatchesPath("old/file.bak"))
	assert.True(t, ig.MatchesPath("tmp/x"))
	assert.False(t, ig.MatchesPath("file.txt"))
}

func TestLoadCombinesGlobalAndProjectFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("!README.md\n"), 0o644))

	globalPath := filepath.Join(t.TempDir(), "global_ignore")
	require.NoError(t, os.WriteFile(globalPath, []byte("*.md\n"), 0o644))

	ig, err := Load(root, globalPath, nil)
	require.NoError(t, err)

	// Project patterns compile after global ones, so the negation wins.
	assert.True(t, ig.MatchesPath("docs/guide.md"))
	assert.False(t, ig.MatchesPath("README.md"))
}

func TestLoadWithoutAnyFiles(t *testing.T) {
	ig, err := Load(t.TempDir(), "", nil)
	require.NoError(t, err)
	assert.Empty(t, ig.Patterns)
	assert.False(t, ig.MatchesPath("anything"))
}
