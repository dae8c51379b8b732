package treesync

import "time"

// DefaultTimeResolution is the precision modification times are compared at
const DefaultTimeResolution = time.Millisecond

// DiffOption represents options for diff operations
type DiffOption func(*diffOptions)

type diffOptions struct {
	timeResolution time.Duration
}

// defaultDiffOptions returns default diff options
func defaultDiffOptions() *diffOptions {
	return &diffOptions{
		timeResolution: DefaultTimeResolution,
	}
}

// WithModTimeResolution truncates both modification times to resolution
// before comparing them. Zero or negative compares exact timestamps.
func WithModTimeResolution(resolution time.Duration) DiffOption {
	return func(opts *diffOptions) {
		opts.timeResolution = resolution
	}
}
