// File: pkg/collate/write.go
package collate

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// WriteOutput writes the rendered document in one create-write-flush-close
// cycle, overwriting any existing file. Missing parent directories are not
// created; a bad output path surfaces as an error.
func WriteOutput(path string, data []byte, logger *zap.Logger) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Warn("Failed to close output file", zap.String("file", path), zap.Error(cerr))
		}
	}()

	writer := bufio.NewWriter(out)
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("write output file %s: %w", path, err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output file %s: %w", path, err)
	}

	logger.Debug("Wrote output file", zap.String("file", path), zap.Int("bytes", len(data)))
	return nil
}
