package completion

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const maxSuggestions = 50

// nameFileExts are the extensions offered for import.
var nameFileExts = map[string]bool{
	".txt":  true,
	".csv":  true,
	".list": true,
}

// NameFiles walks root for files that look like name lists and ranks them
// against query. Hidden directories are skipped.
func NameFiles(root, query string) []Suggestion {
	var items []Suggestion

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !nameFileExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		items = append(items, Suggestion{Path: rel})
		if len(items) >= maxSuggestions {
			return filepath.SkipAll
		}
		return nil
	})

	return Rank(query, items)
}
