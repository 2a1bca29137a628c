package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is one rendered artifact. Name is the path it is written to.
type File struct {
	Name    string
	Content []byte
}

// WriteFiles writes files in order, each as a whole. A failure stops the
// sequence; files already written are left in place.
func WriteFiles(logger *slog.Logger, files []File) error {
	for _, f := range files {
		if dir := filepath.Dir(f.Name); dir != "." {
			if err := os.MkdirAll(dir, dirPerm); err != nil {
				return fmt.Errorf("create directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(f.Name, f.Content, filePerm); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
		logger.Info("Generated file", "file", f.Name, "bytes", len(f.Content))
	}
	return nil
}
