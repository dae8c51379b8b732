package treesync

import (
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Tree is a filesystem the applier can fully mutate, metadata included
type Tree interface {
	billy.Filesystem
	billy.Change
}

// osTree is an OS filesystem rooted at a directory. go-billy's osfs does not
// implement billy.Change, so metadata changes go straight to the os package.
type osTree struct {
	billy.Filesystem
}

// NewOSTree creates a Tree for the directory at root. The directory does not
// need to exist yet.
func NewOSTree(root string) Tree {
	return &osTree{
		Filesystem: osfs.New(root),
	}
}

// AsTree returns fsys as a Tree when it supports metadata changes
func AsTree(fsys billy.Filesystem) (Tree, error) {
	if tree, ok := fsys.(Tree); ok {
		return tree, nil
	}

	return nil, ErrTreeUnsupported.
		SetData(pathErrorContext{
			Path: fsys.Root(),
		})
}

// Chmod changes the mode of the named file
func (t *osTree) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(t.underlying(name), mode)
}

// Lchown changes the owner of the named file without following links
func (t *osTree) Lchown(name string, uid, gid int) error {
	return os.Lchown(t.underlying(name), uid, gid)
}

// Chown changes the owner of the named file
func (t *osTree) Chown(name string, uid, gid int) error {
	return os.Chown(t.underlying(name), uid, gid)
}

// Chtimes changes the access and modification times of the named file
func (t *osTree) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return os.Chtimes(t.underlying(name), atime, mtime)
}

func (t *osTree) underlying(name string) string {
	return t.Join(t.Root(), name)
}
