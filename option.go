package critbit

// TreeOptions configures tree behavior.
type TreeOptions struct {
	mergeDown bool
	cellMin   int
	logger    Logger
	stats     bool
}

// DefaultTreeOptions returns the default configuration: merge-down enabled,
// a CELL_MIN of 3 (stored only; neither the engine nor any check reads it),
// a discarding logger, and stats collection off.
//
// goland:noinspection GoUnusedExportedFunction
func DefaultTreeOptions() TreeOptions {
	return TreeOptions{
		mergeDown: true,
		cellMin:   3,
		logger:    DiscardLogger{},
		stats:     false,
	}
}

// TreeOption configures tree options using the functional options pattern.
type TreeOption func(*TreeOptions)

// WithMergeDown toggles the optional merge-down pass attempted after a
// removal's merge-up fails: pulling a child sub-cell's contents up into the
// current cell when they'd fit together. Merge-up toward the parent is
// always attempted regardless of this setting.
//
//goland:noinspection GoUnusedExportedFunction
func WithMergeDown(enabled bool) TreeOption {
	return func(opts *TreeOptions) {
		opts.mergeDown = enabled
	}
}

// WithCellMin sets the stored minimum cell occupancy (default 3). Nothing
// reads it, neither the engine nor any invariant check: the engine's own
// push-down, split, and merge rules determine actual occupancy.
//
//goland:noinspection GoUnusedExportedFunction
func WithCellMin(n int) TreeOption {
	return func(opts *TreeOptions) {
		opts.cellMin = n
	}
}

// WithLogger installs a Logger for the tree's structural warnings (e.g.
// out-of-memory during a split). The default is DiscardLogger, a no-op.
//
//goland:noinspection GoUnusedExportedFunction
func WithLogger(l Logger) TreeOption {
	return func(opts *TreeOptions) {
		opts.logger = l
	}
}

// WithStats enables the tree's atomic operation counters and the
// population histogram gathered at Destroy.
//
//goland:noinspection GoUnusedExportedFunction
func WithStats(enabled bool) TreeOption {
	return func(opts *TreeOptions) {
		opts.stats = enabled
	}
}
