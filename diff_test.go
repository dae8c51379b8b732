package treesync

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func dirEntry(path string) Entry {
	return Entry{RelativePath: path, IsDir: true, Mode: os.ModeDir | 0755}
}

func fileEntry(path string, size int64, mtime time.Time) Entry {
	return Entry{RelativePath: path, Size: size, Mode: 0644, ModTime: mtime}
}

func fixtureSnapshot() Snapshot {
	return Snapshot{
		dirEntry("one/"),
		dirEntry("one/bar/"),
		fileEntry("one/bar/bar.txt", 4, fixtureTime),
		fileEntry("one/foo.txt", 4, fixtureTime),
	}
}

func assertPairs(t *testing.T, operations []Operation, want [][2]string) {
	t.Helper()

	got := Pairs(operations)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Operations mismatch:\n got: %v\nwant: %v", got, want)
	}
}

func TestDiff(t *testing.T) {
	t.Run("EmptyToPopulated", func(t *testing.T) {
		operations := Diff(nil, fixtureSnapshot())

		assertPairs(t, operations, [][2]string{
			{"mkdir", "one/"},
			{"mkdir", "one/bar/"},
			{"create", "one/bar/bar.txt"},
			{"create", "one/foo.txt"},
		})
	})

	t.Run("SameToSame", func(t *testing.T) {
		operations := Diff(fixtureSnapshot(), fixtureSnapshot())

		if len(operations) != 0 {
			t.Errorf("Expected no operations, got %v", operations)
		}
	})

	t.Run("PopulatedToEmpty", func(t *testing.T) {
		operations := Diff(fixtureSnapshot(), Snapshot{})

		// children are removed before their parents
		assertPairs(t, operations, [][2]string{
			{"unlink", "one/foo.txt"},
			{"unlink", "one/bar/bar.txt"},
			{"rmdir", "one/bar/"},
			{"rmdir", "one/"},
		})
	})

	t.Run("ChangedFile", func(t *testing.T) {
		current := fixtureSnapshot()
		current[3].Size = 3

		operations := Diff(fixtureSnapshot(), current)

		assertPairs(t, operations, [][2]string{
			{"change", "one/foo.txt"},
		})
		if operations[0].Entry.Size != 3 {
			t.Error("Change should carry the current entry")
		}
	})

	t.Run("ChangedMode", func(t *testing.T) {
		current := fixtureSnapshot()
		current[2].Mode = 0600

		assertPairs(t, Diff(fixtureSnapshot(), current), [][2]string{
			{"change", "one/bar/bar.txt"},
		})
	})

	t.Run("ChangedModTime", func(t *testing.T) {
		current := fixtureSnapshot()
		current[3].ModTime = fixtureTime.Add(time.Second)

		assertPairs(t, Diff(fixtureSnapshot(), current), [][2]string{
			{"change", "one/foo.txt"},
		})
	})

	t.Run("ModTimeWithinResolution", func(t *testing.T) {
		base := time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC)
		baseline := Snapshot{fileEntry("a.txt", 1, base.Add(100*time.Microsecond))}
		current := Snapshot{fileEntry("a.txt", 1, base.Add(900*time.Microsecond))}

		if operations := Diff(baseline, current); len(operations) != 0 {
			t.Errorf("Sub-millisecond difference should be ignored by default, got %v", operations)
		}

		operations := Diff(baseline, current, WithModTimeResolution(0))
		assertPairs(t, operations, [][2]string{{"change", "a.txt"}})
	})

	t.Run("DirectoryModTimeIgnored", func(t *testing.T) {
		baseline := Snapshot{dirEntry("one/")}
		current := Snapshot{dirEntry("one/")}
		current[0].ModTime = time.Now()

		if operations := Diff(baseline, current); len(operations) != 0 {
			t.Errorf("Directories should never change, got %v", operations)
		}
	})

	t.Run("AddedAndRemovedSiblings", func(t *testing.T) {
		baseline := fixtureSnapshot()
		current := Snapshot{
			dirEntry("one/"),
			dirEntry("one/bar/"),
			fileEntry("one/bar/bar.txt", 4, fixtureTime),
			fileEntry("one/added-file.js", 3, fixtureTime),
			dirEntry("two/"),
		}
		current.Sort()

		assertPairs(t, Diff(baseline, current), [][2]string{
			{"unlink", "one/foo.txt"},
			{"create", "one/added-file.js"},
			{"mkdir", "two/"},
		})
	})

	t.Run("FileBecomesDirectory", func(t *testing.T) {
		baseline := Snapshot{
			fileEntry("one", 4, fixtureTime),
			fileEntry("zzz.txt", 4, fixtureTime),
		}
		current := Snapshot{
			dirEntry("one/"),
			fileEntry("one/inner.txt", 4, fixtureTime),
			fileEntry("zzz.txt", 4, fixtureTime),
		}

		assertPairs(t, Diff(baseline, current), [][2]string{
			{"unlink", "one"},
			{"mkdir", "one/"},
			{"create", "one/inner.txt"},
		})
	})

	t.Run("DirectoryBecomesFile", func(t *testing.T) {
		baseline := Snapshot{
			dirEntry("one/"),
			dirEntry("one/bar/"),
			fileEntry("one/bar/bar.txt", 4, fixtureTime),
			fileEntry("one/foo.txt", 4, fixtureTime),
		}
		current := Snapshot{
			fileEntry("one", 4, fixtureTime),
		}

		assertPairs(t, Diff(baseline, current), [][2]string{
			{"unlink", "one/foo.txt"},
			{"unlink", "one/bar/bar.txt"},
			{"rmdir", "one/bar/"},
			{"rmdir", "one/"},
			{"create", "one"},
		})
	})

	t.Run("RenameIsRemoveAndAdd", func(t *testing.T) {
		baseline := Snapshot{fileEntry("a.txt", 4, fixtureTime)}
		current := Snapshot{fileEntry("b.txt", 4, fixtureTime)}

		assertPairs(t, Diff(baseline, current), [][2]string{
			{"unlink", "a.txt"},
			{"create", "b.txt"},
		})
	})
}

func TestDiffRemovalsPrecedeAdditions(t *testing.T) {
	baseline := Snapshot{
		dirEntry("a/"),
		fileEntry("a/old.txt", 1, fixtureTime),
		dirEntry("c/"),
	}
	current := Snapshot{
		dirEntry("a/"),
		fileEntry("a/new.txt", 1, fixtureTime),
		dirEntry("b/"),
	}

	operations := Diff(baseline, current)

	seenAddition := false
	for _, op := range operations {
		if op.Kind.IsRemoval() && seenAddition {
			t.Fatalf("Removal %s after an addition in %v", op, operations)
		}
		if !op.Kind.IsRemoval() {
			seenAddition = true
		}
	}

	assertPairs(t, operations, [][2]string{
		{"rmdir", "c/"},
		{"unlink", "a/old.txt"},
		{"create", "a/new.txt"},
		{"mkdir", "b/"},
	})
}
