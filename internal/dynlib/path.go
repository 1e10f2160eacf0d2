package dynlib

import (
	"os"
	"path/filepath"
)

// Locate returns the path to load for the library called name.
//
// The environment variable envVar wins when set. Otherwise the working
// directory, each of dirs, the executable's directory and ../lib next to the
// executable are checked in that order. When nothing exists on disk the bare
// name is returned so the system loader can search its own paths.
func Locate(envVar, name string, dirs []string) string {
	if envVar != "" {
		if path := os.Getenv(envVar); path != "" {
			return path
		}
	}
	if filepath.IsAbs(name) {
		return name
	}

	searchPaths := []string{
		filepath.Join(".", name),
	}
	for _, dir := range dirs {
		searchPaths = append(searchPaths, filepath.Join(dir, name))
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, name),
			filepath.Join(execDir, "..", "lib", name),
		)
	}

	for _, path := range searchPaths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}

	return name
}
