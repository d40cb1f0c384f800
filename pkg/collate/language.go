// File: pkg/collate/language.go
package collate

import (
	"path/filepath"
	"strings"
)

// languageByExt maps a lower-cased extension to its Markdown fence tag.
// Entries with an empty tag are known text formats with no useful
// highlighting; unknown extensions fall back to an untagged fence too.
var languageByExt = map[string]string{
	".go":            "go",
	".gd":            "gdscript",
	".rs":            "rust",
	".toml":          "toml",
	".lock":          "",
	".md":            "md",
	".h":             "cpp",
	".hpp":           "cpp",
	".c":             "c",
	".cpp":           "cpp",
	".cc":            "cpp",
	".cxx":           "cpp",
	".json":          "json",
	".yml":           "yaml",
	".yaml":          "yaml",
	".js":            "javascript",
	".ts":            "typescript",
	".html":          "html",
	".css":           "css",
	".py":            "python",
	".ps1":           "powershell",
	".bat":           "bat",
	".sh":            "bash",
	".zsh":           "bash",
	".tscn":          "",
	".tres":          "",
	".cfg":           "",
	".ini":           "",
	".shader":        "glsl",
	".gdshader":      "glsl",
	".import":        "",
	".txt":           "",
	".csv":           "",
	".gitattributes": "",
	".gitignore":     "",
	".editorconfig":  "",
}

// InferLanguage returns the fence language tag for a path, or "" when the
// extension is unknown. Lookup only; content is never inspected.
func InferLanguage(path string) string {
	return languageByExt[strings.ToLower(filepath.Ext(path))]
}
