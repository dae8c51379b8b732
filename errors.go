package treesync

import (
	"os"

	"github.com/boostgo/errorx"
)

var (
	ErrWalkDirectory      = errorx.New("treesync.directory.walk")
	ErrStatEntry          = errorx.New("treesync.entry.stat")
	ErrSourceNotDirectory = errorx.New("treesync.directory.source_not_directory")
	ErrInvalidPattern     = errorx.New("treesync.filter.invalid_pattern")

	ErrCreateDirectory   = errorx.New("treesync.directory.create")
	ErrDeleteDirectory   = errorx.New("treesync.directory.delete")
	ErrDirectoryNotEmpty = errorx.New("treesync.directory.delete.not_empty")
	ErrNotDirectory      = errorx.New("treesync.directory.delete.not_directory")
	ErrOpenFile          = errorx.New("treesync.file.open")
	ErrCopyFile          = errorx.New("treesync.file.copy")
	ErrDeleteFile        = errorx.New("treesync.file.delete")
	ErrHashFile          = errorx.New("treesync.file.hash")
	ErrChangeMetadata    = errorx.New("treesync.file.change_metadata")
	ErrPathIsDirectory   = errorx.New("treesync.file.path_is_directory")
	ErrUnknownHashType   = errorx.New("treesync.file.unknown_hash_type")

	ErrApplyOperation  = errorx.New("treesync.apply.operation")
	ErrUnknownKind     = errorx.New("treesync.apply.unknown_kind")
	ErrTreeUnsupported = errorx.New("treesync.tree.unsupported")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

type patternErrorContext struct {
	Pattern string `json:"pattern"`
}

type operationErrorContext struct {
	Kind  OperationKind `json:"kind"`
	Path  string        `json:"path"`
	Error error         `json:"error"`
}

type metadataErrorContext struct {
	Path    string `json:"path"`
	Mode    string `json:"mode"`
	ModTime string `json:"mod_time"`
	Error   error  `json:"error"`
}

func newWalkDirectoryError(path string, err error) error {
	return ErrWalkDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newStatEntryError(path string, err error) error {
	return ErrStatEntry.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newInvalidPatternError(pattern string) error {
	return ErrInvalidPattern.
		SetData(patternErrorContext{
			Pattern: pattern,
		})
}

func newCreateDirectoryError(path string, err error) error {
	return ErrCreateDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newDeleteDirectoryError(path string, err error) error {
	return ErrDeleteDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newOpenFileError(path string, err error) error {
	return ErrOpenFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newCopyFileError(path string, err error) error {
	return ErrCopyFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newDeleteFileError(path string, err error) error {
	return ErrDeleteFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newHashFileError(path string, err error) error {
	return ErrHashFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newChangeMetadataError(path string, entry Entry, err error) error {
	return ErrChangeMetadata.
		SetError(err).
		SetData(metadataErrorContext{
			Path:    path,
			Mode:    entry.Mode.String(),
			ModTime: entry.ModTime.String(),
			Error:   err,
		})
}

func newApplyOperationError(op Operation, err error) error {
	return ErrApplyOperation.
		SetError(err).
		SetData(operationErrorContext{
			Kind:  op.Kind,
			Path:  op.RelativePath,
			Error: err,
		})
}

func isNotExist(err error) bool {
	return os.IsNotExist(err)
}
