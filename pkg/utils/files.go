package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// SourceExtensions are the file extensions whose imports can be organized
var SourceExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts", ".vue", ".svelte"}

// IsSourceFile checks if a file is a JavaScript, TypeScript or component template source file
func IsSourceFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, known := range SourceExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// SkipDir reports whether a directory below the walk root should not be descended into
func SkipDir(name string) bool {
	return name == "node_modules" || name == "vendor" || strings.HasPrefix(name, ".")
}

// FindSourceFiles recursively finds all source files in a directory
func FindSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency and hidden directories (but not the root directory)
		if info.IsDir() {
			if path != root && SkipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(filepath.Base(path)) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// FindSourceDirs recursively lists root and every directory below it that FindSourceFiles would visit
func FindSourceDirs(root string) ([]string, error) {
	var dirs []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && SkipDir(filepath.Base(path)) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})

	return dirs, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
