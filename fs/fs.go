// Package fs implements chapter tree generation against the local
// filesystem.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ElektraInitiative/booktoc"
)

// FilterEntries lists dir and returns only the entries relevant to
// chapter generation: subdirectories and regular files with the ext
// extension. Everything else (wrong extension, symlinks, special files)
// is excluded silently. Symlinks are classified by their own type, not
// their target, so the traversal never follows them.
//
// Ordering of the result is not guaranteed; callers must sort.
func FilterEntries(dir, ext string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, booktoc.Errorf(booktoc.EINTERNAL, "cannot list directory %s: %v", dir, err)
	}

	filtered := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() {
			filtered = append(filtered, entry)
			continue
		}
		if entry.Type().IsRegular() && filepath.Ext(entry.Name()) == ext {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

// stem returns name without its extension, e.g. "intro.md" -> "intro".
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
