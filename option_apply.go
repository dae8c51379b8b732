package treesync

// ApplyOption represents options for apply operations
type ApplyOption func(*applyOptions)

type applyOptions struct {
	contentHash HashType
	bufferSize  int
	observer    func(Operation)
}

// defaultApplyOptions returns default apply options
func defaultApplyOptions() *applyOptions {
	return &applyOptions{
		bufferSize: 32 * 1024, // 32KB
	}
}

// WithContentHash skips rewriting bytes on change when the destination
// content already hashes equal to the source. Metadata is still updated.
func WithContentHash(hashType HashType) ApplyOption {
	return func(opts *applyOptions) {
		opts.contentHash = hashType
	}
}

// WithCopyBufferSize sets the buffer used when copying file content
func WithCopyBufferSize(size int) ApplyOption {
	return func(opts *applyOptions) {
		if size > 0 {
			opts.bufferSize = size
		}
	}
}

// WithObserver is called after every operation that was applied successfully
func WithObserver(observer func(Operation)) ApplyOption {
	return func(opts *applyOptions) {
		opts.observer = observer
	}
}
