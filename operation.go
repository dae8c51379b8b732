package treesync

// OperationKind is the type of filesystem edit applied to the destination
type OperationKind string

const (
	OpMkdir  OperationKind = "mkdir"
	OpRmdir  OperationKind = "rmdir"
	OpCreate OperationKind = "create"
	OpUnlink OperationKind = "unlink"
	OpChange OperationKind = "change"
)

// IsRemoval reports whether the kind deletes something from the destination
func (k OperationKind) IsRemoval() bool {
	return k == OpRmdir || k == OpUnlink
}

// Operation is one ordered edit. Entry is the source entry for mkdir, create
// and change, and the baseline entry for rmdir and unlink.
type Operation struct {
	Kind         OperationKind
	RelativePath string
	Entry        Entry
}

// Pair returns the [kind, relativePath] report shape
func (op Operation) Pair() [2]string {
	return [2]string{string(op.Kind), op.RelativePath}
}

func (op Operation) String() string {
	return string(op.Kind) + " " + op.RelativePath
}

// Pairs converts operations to their [kind, relativePath] form
func Pairs(operations []Operation) [][2]string {
	pairs := make([][2]string, 0, len(operations))
	for _, op := range operations {
		pairs = append(pairs, op.Pair())
	}

	return pairs
}

func removeOperation(entry Entry) Operation {
	kind := OpUnlink
	if entry.IsDir {
		kind = OpRmdir
	}

	return Operation{
		Kind:         kind,
		RelativePath: entry.RelativePath,
		Entry:        entry,
	}
}

func addOperation(entry Entry) Operation {
	kind := OpCreate
	if entry.IsDir {
		kind = OpMkdir
	}

	return Operation{
		Kind:         kind,
		RelativePath: entry.RelativePath,
		Entry:        entry,
	}
}

func changeOperation(entry Entry) Operation {
	return Operation{
		Kind:         OpChange,
		RelativePath: entry.RelativePath,
		Entry:        entry,
	}
}
