package utils

import (
	"os"
	"path/filepath"
)

// FindNearest walks up from path (a file or a directory) and returns the first
// existing file whose base name is one of names, or "" if none is found
func FindNearest(path string, names ...string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	iterations := 0
	maxIterations := 64 // Prevent infinite loop

	for iterations < maxIterations {
		iterations++

		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
