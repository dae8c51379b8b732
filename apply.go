package treesync

import (
	"github.com/go-git/go-billy/v5"
)

// Apply executes operations against destination in order, reading file content
// from source. It stops at the first failure and returns the operations that
// were applied before it; nothing is rolled back.
func Apply(source billy.Basic, destination Tree, operations []Operation, options ...ApplyOption) ([]Operation, error) {
	opts := defaultApplyOptions()
	for _, opt := range options {
		opt(opts)
	}

	applied := make([]Operation, 0, len(operations))
	for _, op := range operations {
		if err := applyOperation(source, destination, op, opts); err != nil {
			return applied, newApplyOperationError(op, err)
		}

		applied = append(applied, op)
		if opts.observer != nil {
			opts.observer(op)
		}
	}

	return applied, nil
}

func applyOperation(source billy.Basic, destination Tree, op Operation, opts *applyOptions) error {
	switch op.Kind {
	case OpMkdir:
		return createDirectory(destination, op.Entry)
	case OpRmdir:
		return deleteDirectory(destination, op.Entry.Path())
	case OpCreate, OpChange:
		return copyFile(source, destination, op.Entry, opts)
	case OpUnlink:
		if directoryExist(destination, op.Entry.Path()) {
			return ErrPathIsDirectory.
				SetData(pathErrorContext{
					Path: op.Entry.Path(),
				})
		}
		return deleteFile(destination, op.Entry.Path())
	}

	return ErrUnknownKind.
		SetData(operationErrorContext{
			Kind: op.Kind,
			Path: op.RelativePath,
		})
}
