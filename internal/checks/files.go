package checks

import (
	"io/fs"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
)

// CollectFiles returns every file under root whose name ends in one of the
// given suffixes, skipping anything inside .venv or a dot-prefixed top-level
// directory. Paths are relative to root and sorted.
func CollectFiles(root string, suffixes ...string) ([]string, error) {
	fsys := os.DirFS(root)
	var files []string

	for _, suffix := range suffixes {
		pattern := "**/*" + suffix

		err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
			if d.IsDir() || skipPath(path) {
				return nil
			}

			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, oops.
				With("root", root).
				With("pattern", pattern).
				Wrapf(err, "collecting %s files", suffix)
		}
	}

	sort.Strings(files)

	return files, nil
}

func skipPath(path string) bool {
	parts := strings.Split(path, "/")
	if slices.Contains(parts, ".venv") {
		return true
	}

	return strings.HasPrefix(parts[0], ".")
}
