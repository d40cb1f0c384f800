// File: pkg/collate/binary.go
package collate

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// isBinaryFile checks if a file is likely to be binary by reading its first
// few kilobytes and looking for null bytes or a high density of control
// characters
func isBinaryFile(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, binarySampleSize)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	// Empty files are considered text
	if len(buffer) == 0 {
		return false, nil
	}

	// Null bytes decide immediately
	if bytes.Contains(buffer, []byte{0}) {
		return true, nil
	}

	control := 0
	for _, b := range buffer {
		if isControlByte(b) {
			control++
		}
	}
	return float64(control)/float64(len(buffer)) > binaryControlRatio, nil
}

// isControlByte reports bytes below the printable range, with tab, LF, VT,
// FF, and CR allowed. Bytes >= 0x80 are left alone so multibyte UTF-8 text
// never trips the ratio.
func isControlByte(b byte) bool {
	return b < 9 || (b > 13 && b < 32)
}

// isCommonBinaryExtension checks if the file has a known binary extension
func isCommonBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return binaryExtensions[ext]
}

// decodeText converts raw bytes to a string, replacing invalid UTF-8
// sequences instead of failing. Binary content has been screened out by the
// time this runs; it only guards stray bytes in otherwise-text files.
func decodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "�")
}
