// Package dropin finds drop-in files: the files of a directory that are
// applied on top of a main file, in lexicographic order.
package dropin

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Find returns sorted paths to the files of dir whose extension is one of
// extensions, compared case-insensitively. Directories are skipped.
// Returns nil if dir doesn't exist (not an error).
func Find(dir string, extensions ...string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read drop-in directory %s: %w", dir, err)
	}

	var filenames []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExtension(entry.Name(), extensions) {
			filenames = append(filenames, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(filenames)

	return filenames, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, allowed := range extensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}
