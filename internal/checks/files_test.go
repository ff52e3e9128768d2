package checks_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/chrimaho/mdtk/internal/checks"
)

func TestCollectFilesFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"README.md":              "# readme",
		"docs/guide.md":          "# guide",
		"src/pkg/main.py":        "print(1)",
		"notebooks/demo.ipynb":   "{}",
		".venv/lib/ignored.py":   "nope",
		"src/.venv/ignored.md":   "nope",
		".github/workflow.md":    "nope",
		"docs/image.png":         "binary",
		"docs/nested/deep.md":    "# deep",
		"scripts/helper.sh":      "echo",
	})

	files, err := checks.CollectFiles(root, ".md", ".py")
	if err != nil {
		t.Fatalf("CollectFiles() error = %v", err)
	}

	want := []string{
		"README.md",
		"docs/guide.md",
		"docs/nested/deep.md",
		"src/pkg/main.py",
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("CollectFiles() = %v, want %v", files, want)
	}
}

func TestCollectFilesEmptyTree(t *testing.T) {
	files, err := checks.CollectFiles(t.TempDir(), ".md")
	if err != nil {
		t.Fatalf("CollectFiles() error = %v", err)
	}

	if len(files) != 0 {
		t.Errorf("CollectFiles() = %v, want empty", files)
	}
}

func TestCollectFilesMultipleSuffixes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md":    "x",
		"b.py":    "x",
		"c.ipynb": "x",
	})

	files, err := checks.CollectFiles(root, ".md", ".py", ".ipynb")
	if err != nil {
		t.Fatalf("CollectFiles() error = %v", err)
	}

	want := []string{"a.md", "b.py", "c.ipynb"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("CollectFiles() = %v, want %v", files, want)
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll() error = %v", err)
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%q) error = %v", path, err)
		}
	}
}
