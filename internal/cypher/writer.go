package cypher

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a rendered script to path, creating the parent directory
// if it doesn't exist.
func WriteFile(path, script string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(path, []byte(script), filePerm)
	if err != nil {
		return fmt.Errorf("writing script %s: %w", path, err)
	}

	return nil
}
