package treesync

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// Option represents options for a sync session
type Option func(*sessionOptions)

type sessionOptions struct {
	ignore         []string
	globs          []string
	timeResolution time.Duration
	contentHash    HashType
	logger         *zap.Logger
	metrics        *Metrics
	source         billy.Filesystem
	destination    Tree
}

// defaultSessionOptions returns default session options
func defaultSessionOptions() *sessionOptions {
	return &sessionOptions{
		timeResolution: DefaultTimeResolution,
		contentHash:    HashNone,
		logger:         zap.NewNop(),
	}
}

// WithIgnore excludes entries matching any pattern, with their subtrees
func WithIgnore(patterns ...string) Option {
	return func(opts *sessionOptions) {
		opts.ignore = append(opts.ignore, patterns...)
	}
}

// WithGlobs includes only entries matching any pattern, plus their ancestors
func WithGlobs(patterns ...string) Option {
	return func(opts *sessionOptions) {
		opts.globs = append(opts.globs, patterns...)
	}
}

// WithTimeResolution sets the precision modification times are compared at
func WithTimeResolution(resolution time.Duration) Option {
	return func(opts *sessionOptions) {
		opts.timeResolution = resolution
	}
}

// WithContentCheck avoids rewriting changed files whose content is identical
func WithContentCheck(hashType HashType) Option {
	return func(opts *sessionOptions) {
		opts.contentHash = hashType
	}
}

// WithLogger sets the logger used for sync reports
func WithLogger(logger *zap.Logger) Option {
	return func(opts *sessionOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics records sync activity into metrics
func WithMetrics(metrics *Metrics) Option {
	return func(opts *sessionOptions) {
		opts.metrics = metrics
	}
}

// WithFilesystems replaces the OS trees built from the session paths
func WithFilesystems(source billy.Filesystem, destination Tree) Option {
	return func(opts *sessionOptions) {
		opts.source = source
		opts.destination = destination
	}
}
