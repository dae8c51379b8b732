package treesync

import "time"

// Diff merges two tree-ordered snapshots and returns the edits that turn
// baseline into current.
//
// Removals are returned first, deepest first, so a directory is emptied
// before it is removed. Creations and changes follow in tree order, so a
// directory exists before anything is created in it. A path whose type
// flipped between file and directory is removed and then re-created.
func Diff(baseline, current Snapshot, options ...DiffOption) []Operation {
	opts := defaultDiffOptions()
	for _, opt := range options {
		opt(opts)
	}

	var removals, additions []Operation
	i, j := 0, 0

	for i < len(baseline) || j < len(current) {
		if i >= len(baseline) {
			additions = append(additions, addOperation(current[j]))
			j++
			continue
		}
		if j >= len(current) {
			removals = append(removals, removeOperation(baseline[i]))
			i++
			continue
		}

		previous, next := baseline[i], current[j]

		switch c := ComparePaths(previous.RelativePath, next.RelativePath); {
		case c < 0:
			removals = append(removals, removeOperation(previous))
			i++
		case c > 0:
			additions = append(additions, addOperation(next))
			j++
		default:
			switch {
			case previous.IsDir != next.IsDir:
				removals = append(removals, removeOperation(previous))
				additions = append(additions, addOperation(next))
			case next.IsDir:
				// directory mtimes move with their children
			case !opts.sameFile(previous, next):
				additions = append(additions, changeOperation(next))
			}
			i++
			j++
		}
	}

	operations := make([]Operation, 0, len(removals)+len(additions))
	for k := len(removals) - 1; k >= 0; k-- {
		operations = append(operations, removals[k])
	}

	return append(operations, additions...)
}

func (opts *diffOptions) sameFile(a, b Entry) bool {
	return a.Permissions() == b.Permissions() &&
		a.Size == b.Size &&
		truncateTime(a.ModTime, opts.timeResolution).Equal(truncateTime(b.ModTime, opts.timeResolution))
}

func truncateTime(t time.Time, resolution time.Duration) time.Time {
	if resolution <= 0 {
		return t
	}

	return t.Truncate(resolution)
}
