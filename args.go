package relay

// Args represents the raw pagination arguments of one request, following
// the Relay cursor pagination specification: First/After for forward
// traversal and Last/Before for backward traversal.
//
// Args are owned for the lifetime of a single request and never persisted.
type Args struct {
	First  *int    `json:"first,omitempty"`
	After  *string `json:"after,omitempty"`
	Last   *int    `json:"last,omitempty"`
	Before *string `json:"before,omitempty"`
}

// GetFirst returns the requested forward page size.
func (a Args) GetFirst() *int {
	return a.First
}

// GetAfter returns the lower-bound cursor token.
func (a Args) GetAfter() *string {
	return a.After
}

// GetLast returns the requested backward page size.
func (a Args) GetLast() *int {
	return a.Last
}

// GetBefore returns the upper-bound cursor token.
func (a Args) GetBefore() *string {
	return a.Before
}

// Validate checks the arguments for well-formedness before any cursor is
// decoded. First and Last must be non-negative when present; a violation is
// reported as *ArgumentError. First and Last may both be present, the window
// resolver decides how they interact.
//
// Validate is a pure predicate with no side effects.
func (a Args) Validate() error {
	if a.First != nil && *a.First < 0 {
		return &ArgumentError{Name: "first", Value: *a.First}
	}
	if a.Last != nil && *a.Last < 0 {
		return &ArgumentError{Name: "last", Value: *a.Last}
	}
	return nil
}

// PaginateOption configures page size limits for a pagination request.
// Options are passed to New() to configure per-request limits.
//
// Example:
//
//	conn, err := relay.New(ctx, args, codec, fetch,
//	    relay.WithMaxSize(100),
//	    relay.WithDefaultSize(25),
//	)
type PaginateOption func(*paginateConfig)

// paginateConfig holds page size configuration for a pagination request.
// Zero values mean "no cap" and "no default" respectively, so that by
// default an unsized request fetches the entire bounded range.
type paginateConfig struct {
	maxSize     int
	defaultSize int
}

// WithMaxSize sets the maximum page size for this request.
// If First or Last exceeds it, the count is capped to maxSize (not rejected).
func WithMaxSize(size int) PaginateOption {
	return func(c *paginateConfig) {
		if size > 0 {
			c.maxSize = size
		}
	}
}

// WithDefaultSize sets the page size used when neither First nor Last is
// given. Without this option such a request fetches all remaining nodes in
// the bounded range.
func WithDefaultSize(size int) PaginateOption {
	return func(c *paginateConfig) {
		if size > 0 {
			c.defaultSize = size
		}
	}
}

// applyOptions folds the options into a config.
func applyOptions(opts []PaginateOption) paginateConfig {
	var cfg paginateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// effectiveArgs returns a copy of args with the configured default and cap
// applied. Validation has already run, so counts are non-negative here.
func effectiveArgs(args Args, cfg paginateConfig) Args {
	if args.First == nil && args.Last == nil && cfg.defaultSize > 0 {
		size := cfg.defaultSize
		args.First = &size
	}

	if cfg.maxSize > 0 {
		if args.First != nil && *args.First > cfg.maxSize {
			capped := cfg.maxSize
			args.First = &capped
		}
		if args.Last != nil && *args.Last > cfg.maxSize {
			capped := cfg.maxSize
			args.Last = &capped
		}
	}

	return args
}
