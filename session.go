package treesync

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session mirrors a source tree into a destination tree.
//
// The snapshot of the last successful sync is cached and used as the baseline
// for the next one. Without it, the destination is walked instead, so a new
// session produces the same result as one that kept its cache.
//
// A Session is not safe for concurrent use.
type Session struct {
	sourcePath      string
	destinationPath string
	source          billy.Filesystem
	destination     Tree
	filter          *Filter
	opts            *sessionOptions

	lastInput Snapshot
	hasInput  bool
}

// NewSession creates a session that syncs sourcePath into destinationPath
func NewSession(sourcePath, destinationPath string, options ...Option) (*Session, error) {
	opts := defaultSessionOptions()
	for _, opt := range options {
		opt(opts)
	}

	filter, err := NewFilter(opts.ignore, opts.globs)
	if err != nil {
		return nil, err
	}

	source := opts.source
	if source == nil {
		source = osfs.New(sourcePath)
	}

	destination := opts.destination
	if destination == nil {
		destination = NewOSTree(destinationPath)
	}

	return &Session{
		sourcePath:      sourcePath,
		destinationPath: destinationPath,
		source:          source,
		destination:     destination,
		filter:          filter,
		opts:            opts,
	}, nil
}

// SourcePath returns the tree being mirrored
func (s *Session) SourcePath() string {
	return s.sourcePath
}

// DestinationPath returns the tree being written
func (s *Session) DestinationPath() string {
	return s.destinationPath
}

// Sync makes the destination match the source and returns the operations it
// applied, in order. When applying fails, the operations that completed are
// returned with the error.
func (s *Session) Sync() ([]Operation, error) {
	started := time.Now()
	logger := s.opts.logger.With(
		zap.String("run", uuid.New().String()[:8]),
		zap.String("source", s.sourcePath),
		zap.String("destination", s.destinationPath),
	)

	current, err := s.walkSource()
	if err != nil {
		s.opts.metrics.recordError(stageWalk)
		logger.Error("walk source", zap.Error(err))
		return nil, err
	}

	baseline, cached, err := s.baseline()
	if err != nil {
		s.opts.metrics.recordError(stageWalk)
		logger.Error("walk destination", zap.Error(err))
		return nil, err
	}

	operations := Diff(baseline, current, WithModTimeResolution(s.opts.timeResolution))

	applied, err := Apply(s.source, s.destination, operations,
		WithContentHash(s.opts.contentHash),
		WithObserver(func(op Operation) {
			s.opts.metrics.recordOperation(op)
			logger.Debug("applied", zap.String("kind", string(op.Kind)), zap.String("path", op.RelativePath))
		}),
	)
	if err != nil {
		// The destination no longer matches any snapshot we hold
		s.lastInput, s.hasInput = nil, false
		s.opts.metrics.recordError(stageApply)
		logger.Error("apply",
			zap.Int("applied", len(applied)),
			zap.Int("planned", len(operations)),
			zap.Error(err),
		)
		return applied, err
	}

	s.lastInput, s.hasInput = current, true
	s.opts.metrics.recordSync(started, len(current))
	logger.Info("synced",
		zap.Bool("cached_baseline", cached),
		zap.Int("entries", len(current)),
		zap.Int("operations", len(applied)),
		zap.Duration("elapsed", time.Since(started)),
	)

	return applied, nil
}

func (s *Session) walkSource() (Snapshot, error) {
	info, err := s.source.Stat("")
	if err != nil {
		return nil, newWalkDirectoryError(s.sourcePath, err)
	}
	if !info.IsDir() {
		return nil, ErrSourceNotDirectory.
			SetData(pathErrorContext{
				Path: s.sourcePath,
			})
	}

	return Walk(s.source, s.filter)
}

// baseline returns the cached snapshot, or the destination as it is on disk.
// The destination is walked with the source filter, so filtered-out entries
// are left alone whether or not the cache is populated.
func (s *Session) baseline() (Snapshot, bool, error) {
	if s.hasInput {
		return s.lastInput, true, nil
	}

	snapshot, err := walkIfExists(s.destination, s.filter)
	if err != nil {
		return nil, false, err
	}

	return snapshot, false, nil
}
