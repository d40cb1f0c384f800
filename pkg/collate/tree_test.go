// File: pkg/collate/tree_test.go
package collate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTree(t *testing.T) {
	entries := []FileEntry{
		{Path: "cmd/root.go"},
		{Path: "cmd/version.go"},
		{Path: "main.go"},
		{Path: "pkg/collate/render.go"},
		{Path: "README.md"},
	}

	want := strings.Join([]string{
		"/proj/",
		"├── cmd/",
		"│   ├── root.go",
		"│   └── version.go",
		"├── pkg/",
		"│   └── collate/",
		"│       └── render.go",
		"├── main.go",
		"└── README.md",
		"",
	}, "\n")

	assert.Equal(t, want, RenderTree("/proj", entries))
}

func TestRenderTreeDirsBeforeFiles(t *testing.T) {
	entries := []FileEntry{
		{Path: "zebra.txt"},
		{Path: "alpha/inner.txt"},
	}

	out := RenderTree("/r", entries)
	dirLine := strings.Index(out, "alpha/")
	fileLine := strings.Index(out, "zebra.txt")

	assert.Greater(t, fileLine, dirLine)
}

func TestRenderTreeEmpty(t *testing.T) {
	assert.Equal(t, "/r/\n", RenderTree("/r", nil))
}
