// File: pkg/collate/types.go
package collate

import "time"

// FileEntry is one file that passed every filter, ready for rendering.
type FileEntry struct {
	Path     string // Root-relative path using forward slashes
	Content  string // Decoded text content
	Language string // Fence language tag; empty for unknown extensions
	Size     int64  // Size in bytes
}

// Stats counts the outcomes of one traversal.
type Stats struct {
	Included int // Files that passed every filter
	TooLarge int // Files rejected by the size limit
	Binary   int // Files rejected as binary or unreadable
}

// Result summarizes a completed run.
type Result struct {
	Root    string // Absolute root that was scanned
	Output  string // Absolute path of the written document
	Bytes   int    // Length of the written document
	Stats   Stats
	Elapsed time.Duration
}

// Constants
const (
	binarySampleSize   = 8192 // Leading bytes sniffed per file for binary detection
	binaryControlRatio = 0.30 // Control-byte density above which a sample counts as binary
)
