// File: cmd/root_test.go
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"collate/pkg/version"
)

// resetRootFlags returns the root command's flags to their pristine state.
// Values and change marks persist across Execute calls in one process, and a
// stale change mark would shadow the config-file and environment layers.
func resetRootFlags() {
	RootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	flagRoot = "."
	flagOutput = "project_context.md"
	flagMaxKB = 1024
	flagIncludeHidden = false
	flagExtraDirs = nil
	flagOnlyExts = nil
	flagIgnoreFile = ""
	flagTree = false
	flagConfig = ""
	flagVerbose = false
}

func TestRootCommandEndToEnd(t *testing.T) {
	resetRootFlags()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "skipme"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("# notes\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.txt"), []byte("excluded by only-exts\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skipme", "x.go"), []byte("package x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.go"), bytes.Repeat([]byte("b"), 2048), 0o644))

	output := filepath.Join(t.TempDir(), "out.md")
	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetArgs([]string{
		"--root", root,
		"--output", output,
		"--max-kb", "1",
		"--only-exts", ".go,.md",
		"--extra-dirs", "skipme",
		"--tree",
	})

	require.NoError(t, Execute(zap.NewNop()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "===== FILE: main.go =====\n```go\n")
	assert.Contains(t, doc, "===== FILE: notes.md =====\n```md\n")
	assert.Contains(t, doc, "## Directory Tree")
	assert.NotContains(t, doc, "data.txt")
	assert.NotContains(t, doc, "skipme")
	assert.NotContains(t, doc, "===== FILE: big.go =====")

	summary := stdout.String()
	assert.Contains(t, summary, "Wrote "+output)
	assert.Contains(t, summary, "2 files")
	assert.Contains(t, summary, "skipped 1 oversized")
}

func TestRootCommandLayeredPrecedence(t *testing.T) {
	resetRootFlags()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep.md"), []byte("# keep\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "skip.go"), []byte("package skip\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.md"), bytes.Repeat([]byte("m"), 2048), 0o644))

	scratch := t.TempDir()
	fileOut := filepath.Join(scratch, "file_out.md")
	envOut := filepath.Join(scratch, "env_out.md")
	flagOut := filepath.Join(scratch, "flag_out.md")

	// Every layer claims output. The file and the environment both claim
	// max_kb, and only the file sets only_exts.
	cfgPath := filepath.Join(scratch, "config.yaml")
	cfgYAML := "output: " + fileOut + "\nmax_kb: 9999\nonly_exts:\n  - .md\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))
	t.Setenv("COLLATE_OUTPUT", envOut)
	t.Setenv("COLLATE_MAX_KB", "1")

	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetArgs([]string{
		"--config", cfgPath,
		"--root", root,
		"--output", flagOut,
	})

	require.NoError(t, Execute(zap.NewNop()))

	// The flag decides the output path. With no max-kb flag the environment's
	// 1 KB cap applies, and the extension list comes from the file alone.
	data, err := os.ReadFile(flagOut)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "===== FILE: keep.md =====")
	assert.NotContains(t, doc, "big.md")
	assert.NotContains(t, doc, "skip.go")
	assert.NoFileExists(t, envOut)
	assert.NoFileExists(t, fileOut)

	summary := stdout.String()
	assert.Contains(t, summary, "1 files")
	assert.Contains(t, summary, "skipped 1 oversized")
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetArgs([]string{"version"})

	require.NoError(t, Execute(zap.NewNop()))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "collate version "))
	assert.Contains(t, out, version.Get().GoVersion)
}

func TestVersionCommandShort(t *testing.T) {
	var stdout bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetArgs([]string{"version", "--short"})

	require.NoError(t, Execute(zap.NewNop()))

	assert.Equal(t, version.Version+"\n", stdout.String())
}
