package treesync

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
)

// copyFile copies the content of entry from source to destination, then sets
// the destination mode and modification time to the entry's.
func copyFile(source billy.Basic, destination Tree, entry Entry, opts *applyOptions) error {
	path := entry.Path()

	stat, err := destination.Stat(path)
	switch {
	case err == nil && stat.IsDir():
		return ErrPathIsDirectory.
			SetData(pathErrorContext{
				Path: path,
			})
	case err == nil:
		if opts.contentHash != HashNone && stat.Size() == entry.Size {
			same, err := sameContent(source, destination, path, opts.contentHash)
			if err != nil {
				return err
			}
			if same {
				return changeFileMetadata(destination, entry)
			}
		}

		// The previous copy may be read-only
		if err := deleteFile(destination, path); err != nil {
			return err
		}
	case !isNotExist(err):
		return newOpenFileError(path, err)
	}

	if err := copyContent(source, destination, path, entry.Permissions(), opts.bufferSize); err != nil {
		return err
	}

	return changeFileMetadata(destination, entry)
}

func copyContent(source billy.Basic, destination billy.Basic, path string, perm os.FileMode, bufferSize int) error {
	sourceFile, err := source.Open(path)
	if err != nil {
		return newOpenFileError(path, err)
	}
	defer sourceFile.Close()

	// Owner write access is needed until the final mode is set
	destFile, err := destination.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm|0200)
	if err != nil {
		return newOpenFileError(path, err)
	}

	// Copy with buffer
	buf := make([]byte, bufferSize)
	if _, err := io.CopyBuffer(destFile, sourceFile, buf); err != nil {
		destFile.Close()
		return newCopyFileError(path, err)
	}

	if err := destFile.Close(); err != nil {
		return newCopyFileError(path, err)
	}

	return nil
}

// changeFileMetadata sets mode and modification time to the entry's. The
// access time is set to the modification time as well.
func changeFileMetadata(tree Tree, entry Entry) error {
	path := entry.Path()

	if err := tree.Chmod(path, entry.Permissions()); err != nil {
		return newChangeMetadataError(path, entry, err)
	}

	if err := tree.Chtimes(path, entry.ModTime, entry.ModTime); err != nil {
		return newChangeMetadataError(path, entry, err)
	}

	return nil
}

// deleteFile removes a file
func deleteFile(fsys billy.Basic, path string) error {
	if err := fsys.Remove(path); err != nil {
		if isNotExist(err) {
			return nil // Already doesn't exist
		}
		return newDeleteFileError(path, err)
	}

	return nil
}

// hashFile returns the hex digest of the file content
func hashFile(fsys billy.Basic, path string, hashType HashType) (string, error) {
	hash, err := hashType.new()
	if err != nil {
		return "", err
	}

	file, err := fsys.Open(path)
	if err != nil {
		return "", newOpenFileError(path, err)
	}
	defer file.Close()

	if _, err := io.Copy(hash, file); err != nil {
		return "", newHashFileError(path, err)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

func sameContent(source, destination billy.Basic, path string, hashType HashType) (bool, error) {
	sourceHash, err := hashFile(source, path, hashType)
	if err != nil {
		return false, err
	}

	destinationHash, err := hashFile(destination, path, hashType)
	if err != nil {
		return false, err
	}

	return sourceHash == destinationHash, nil
}
