package treesync

import (
	"github.com/go-git/go-billy/v5"
)

func directoryExist(fsys billy.Basic, path string) bool {
	stat, _ := fsys.Stat(path)
	if stat == nil {
		return false
	}

	return stat.IsDir()
}

// createDirectory creates the directory for entry with the entry's permissions.
// An existing directory only has its permissions updated.
func createDirectory(tree Tree, entry Entry) error {
	path := entry.Path()

	if err := tree.MkdirAll(path, entry.Permissions()); err != nil {
		return newCreateDirectoryError(path, err)
	}

	// MkdirAll may ignore perm or apply the umask
	if err := tree.Chmod(path, entry.Permissions()); err != nil {
		return newChangeMetadataError(path, entry, err)
	}

	return nil
}

// deleteDirectory removes an empty directory
func deleteDirectory(fsys billy.Filesystem, path string) error {
	stat, err := fsys.Stat(path)
	if err != nil {
		if isNotExist(err) {
			return nil // Already doesn't exist
		}
		return newDeleteDirectoryError(path, err)
	}

	if !stat.IsDir() {
		return ErrNotDirectory.
			SetData(pathErrorContext{
				Path: path,
			})
	}

	if err := fsys.Remove(path); err != nil {
		if isNotExist(err) {
			return nil
		}

		// Check if directory is not empty
		if empty, _ := isEmptyDirectory(fsys, path); !empty {
			return ErrDirectoryNotEmpty.
				SetError(err).
				SetData(pathErrorContext{
					Path:  path,
					Error: err,
				})
		}

		return newDeleteDirectoryError(path, err)
	}

	return nil
}

// isEmptyDirectory checks if directory is empty
func isEmptyDirectory(fsys billy.Dir, path string) (bool, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return false, newWalkDirectoryError(path, err)
	}

	return len(entries) == 0, nil
}
