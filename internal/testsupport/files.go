package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path with the given contents, creating parent
// directories as needed.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// MkDir creates a directory (and parents) under the test tree.
func MkDir(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

// SeedDir populates dir with the named files, each holding a short marker
// body. Names ending in a separator are created as subdirectories.
func SeedDir(t testing.TB, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		if len(name) > 0 && name[len(name)-1] == '/' {
			MkDir(t, filepath.Join(dir, name[:len(name)-1]))
			continue
		}
		WriteFile(t, filepath.Join(dir, name), "fixture: "+name)
	}
}
