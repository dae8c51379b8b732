package treesync

import (
	"os"
	"sort"
	"strings"
	"time"
)

// chmodBits are the mode bits propagated to the destination and compared by the differ
const chmodBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// Entry describes one filesystem object inside a tree
type Entry struct {
	// RelativePath uses forward slashes; directories end with "/"
	RelativePath string
	IsDir        bool
	Size         int64
	Mode         os.FileMode
	ModTime      time.Time
}

// Path returns the relative path without the directory marker
func (e Entry) Path() string {
	return strings.TrimSuffix(e.RelativePath, "/")
}

// Permissions returns the mode bits that are copied to the destination
func (e Entry) Permissions() os.FileMode {
	return e.Mode & chmodBits
}

func newEntry(relPath string, info os.FileInfo) Entry {
	entry := Entry{
		RelativePath: relPath,
		IsDir:        info.IsDir(),
		Size:         info.Size(),
		Mode:         info.Mode(),
		ModTime:      info.ModTime(),
	}

	if entry.IsDir {
		entry.RelativePath += "/"
		entry.Size = 0
	}

	return entry
}

// Snapshot is an ordered listing of one tree. A directory precedes everything
// beneath it and siblings are in lexicographic order.
type Snapshot []Entry

// Sort orders the snapshot by ComparePaths
func (s Snapshot) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return ComparePaths(s[i].RelativePath, s[j].RelativePath) < 0
	})
}

// IsSorted reports whether the snapshot satisfies the tree ordering with unique paths
func (s Snapshot) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if ComparePaths(s[i-1].RelativePath, s[i].RelativePath) >= 0 {
			return false
		}
	}

	return true
}

// Paths returns the relative paths in snapshot order
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for _, entry := range s {
		paths = append(paths, entry.RelativePath)
	}

	return paths
}

// ComparePaths orders relative paths segment by segment, so "a/" and its
// children sort before "a.txt". The trailing directory marker is ignored:
// a file and a directory at the same location compare equal.
func ComparePaths(a, b string) int {
	a = strings.TrimSuffix(a, "/")
	b = strings.TrimSuffix(b, "/")

	for {
		aHead, aRest, aMore := strings.Cut(a, "/")
		bHead, bRest, bMore := strings.Cut(b, "/")

		if c := strings.Compare(aHead, bHead); c != 0 {
			return c
		}

		switch {
		case !aMore && !bMore:
			return 0
		case !aMore:
			return -1
		case !bMore:
			return 1
		}

		a, b = aRest, bRest
	}
}
