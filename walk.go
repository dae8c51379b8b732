package treesync

import (
	"os"
	"path"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// Walk lists every entry beneath the root of fsys in tree order. Symbolic
// links are resolved so that a link to a directory is walked as a directory.
// Entries that are neither directories nor regular files, such as named
// pipes and devices, are skipped. A nil filter reports everything.
func Walk(fsys billy.Filesystem, filter *Filter) (Snapshot, error) {
	w := &walker{
		fsys:   fsys,
		filter: filter,
	}

	snapshot, err := w.walk("")
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// walkIfExists is Walk for a root that may not have been created yet
func walkIfExists(fsys billy.Filesystem, filter *Filter) (Snapshot, error) {
	if _, err := fsys.Stat(""); err != nil {
		if isNotExist(err) {
			return Snapshot{}, nil
		}
		return nil, newWalkDirectoryError(fsys.Root(), err)
	}

	return Walk(fsys, filter)
}

type walker struct {
	fsys   billy.Filesystem
	filter *Filter
	depth  int
}

// maxWalkDepth bounds recursion through cyclic directory links
const maxWalkDepth = 255

func (w *walker) walk(dir string) (Snapshot, error) {
	if w.depth > maxWalkDepth {
		return nil, newWalkDirectoryError(dir, os.ErrInvalid)
	}

	infos, err := w.fsys.ReadDir(dir)
	if err != nil {
		return nil, newWalkDirectoryError(dir, err)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	var result Snapshot
	for _, info := range infos {
		relPath := path.Join(dir, info.Name())

		// Handle symlinks
		if info.Mode()&os.ModeSymlink != 0 {
			info, err = w.fsys.Stat(relPath)
			if err != nil {
				return nil, newStatEntryError(relPath, err)
			}
		}

		// Only directories and regular files can be mirrored
		if !info.IsDir() && !info.Mode().IsRegular() {
			continue
		}

		entry := newEntry(relPath, info)

		if w.filter.Ignored(entry) {
			continue
		}

		if !entry.IsDir {
			if w.filter.Included(entry) {
				result = append(result, entry)
			}
			continue
		}

		w.depth++
		children, err := w.walk(relPath)
		w.depth--
		if err != nil {
			return nil, err
		}

		// Directories stay reachable when something beneath them is included
		if w.filter.Included(entry) || (w.filter.restricts() && len(children) > 0) {
			result = append(result, entry)
			result = append(result, children...)
		}
	}

	return result, nil
}
