package treesync

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixtureTime is an mtime far enough in the past to notice a copy that did
// not preserve it
var fixtureTime = time.Date(2020, time.January, 2, 3, 4, 5, 600000000, time.UTC)

// writeFixture creates the tree
//
//	one/
//	one/bar/
//	one/bar/bar.txt
//	one/foo.txt
func writeFixture(t *testing.T, root string) {
	t.Helper()

	mkdir(t, filepath.Join(root, "one"))
	mkdir(t, filepath.Join(root, "one", "bar"))
	writeFile(t, filepath.Join(root, "one", "bar", "bar.txt"), "bar\n", 0644)
	writeFile(t, filepath.Join(root, "one", "foo.txt"), "foo\n", 0644)
}

func mkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("Failed to chmod directory %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("Failed to chmod %s: %v", path, err)
	}
	if err := os.Chtimes(path, fixtureTime, fixtureTime); err != nil {
		t.Fatalf("Failed to set times on %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}

	return string(data)
}

func walkPaths(t *testing.T, root string) []string {
	t.Helper()

	return walkOS(t, root).Paths()
}

func walkOS(t *testing.T, root string) Snapshot {
	t.Helper()

	snapshot, err := Walk(NewOSTree(root), nil)
	if err != nil {
		t.Fatalf("Failed to walk %s: %v", root, err)
	}

	return snapshot
}
