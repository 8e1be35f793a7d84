package utils

import (
	"fmt"
	"os"
)

// CreateFolder creates a directory (and any missing parents) if it does not
// already exist.
func CreateFolder(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
