package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxRunFileSize bounds `paper run`'s input file to 1MB.
const maxRunFileSize = 1 * 1024 * 1024

// validateFilePath guards against path traversal and oversized input
// before `paper run` reads a file. It doesn't require a specific file
// extension: there's no canonical one for notepad documents.
func validateFilePath(path string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("invalid path: path traversal detected")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	relPath, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return fmt.Errorf("invalid path: file must be within current directory")
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("invalid path: expected file, got directory")
	}
	if info.Size() > maxRunFileSize {
		return fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxRunFileSize)
	}

	return nil
}
