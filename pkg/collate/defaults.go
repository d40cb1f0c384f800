// File: pkg/collate/defaults.go
package collate

// defaultExcludedDirs are directory names pruned on every run: VCS metadata,
// editor state, caches, dependency trees, and build output. The --extra-dirs
// flag extends this set.
var defaultExcludedDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	".idea":        true,
	".vs":          true,
	".vscode":      true,
	".godot":       true,
	".import":      true,
	".cache":       true,
	"target":       true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"__pycache__":  true,
}

// binaryExtensions marks extensions that are never text. Files carrying one
// are skipped without being opened.
var binaryExtensions = map[string]bool{
	".png":    true,
	".jpg":    true,
	".jpeg":   true,
	".gif":    true,
	".bmp":    true,
	".ico":    true,
	".icns":   true,
	".webp":   true,
	".pdf":    true,
	".zip":    true,
	".gz":     true,
	".bz2":    true,
	".xz":     true,
	".tar":    true,
	".7z":     true,
	".rar":    true,
	".exe":    true,
	".dll":    true,
	".so":     true,
	".dylib":  true,
	".bin":    true,
	".dat":    true,
	".o":      true,
	".a":      true,
	".jar":    true,
	".class":  true,
	".pyc":    true,
	".wasm":   true,
	".woff":   true,
	".woff2":  true,
	".ttf":    true,
	".otf":    true,
	".eot":    true,
	".mp3":    true,
	".mp4":    true,
	".avi":    true,
	".mov":    true,
	".ogg":    true,
	".wav":    true,
	".flac":   true,
	".sqlite": true,
	".db":     true,
}

// excludedDirSet merges the default exclusions with user-supplied names.
func excludedDirSet(extra []string) map[string]bool {
	set := make(map[string]bool, len(defaultExcludedDirs)+len(extra))
	for name := range defaultExcludedDirs {
		set[name] = true
	}
	for _, name := range extra {
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// allowedExtSet builds the extension allow-list. An empty list means no
// restriction, so callers must check the set's size before consulting it.
func allowedExtSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}
