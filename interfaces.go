package relay

import "context"

// Node is implemented by any item that can appear inside a connection.
// The cursor accessor must be pure: it reads the item's position in the
// sequence without mutating it, and for a correctly ordered fetch the
// cursors of consecutive nodes are monotonic.
//
// Type parameter C is the cursor type (e.g., int64, time.Time, uuid.UUID).
// It must be totally ordered and round-trippable through a Codec.
//
// Example implementation:
//
//	type Post struct {
//	    ID    int64
//	    Title string
//	}
//
//	func (p Post) Cursor() int64              { return p.ID }
//	func (p Post) ConnectionTypeName() string { return "PostConnection" }
//	func (p Post) EdgeTypeName() string       { return "PostConnectionEdge" }
type Node[C any] interface {
	// Cursor returns the cursor value identifying this node's position.
	Cursor() C

	// ConnectionTypeName returns the API type name for connections over
	// these nodes, e.g. "PostConnection". Pass-through metadata for the
	// schema layer; pagination itself never looks at it.
	ConnectionTypeName() string

	// EdgeTypeName returns the API type name for edges containing these
	// nodes, e.g. "PostConnectionEdge". Pass-through metadata like
	// ConnectionTypeName.
	EdgeTypeName() string
}

// Codec converts between typed cursor values and the opaque string tokens
// exposed in pagination arguments and edges.
//
// Implementations must guarantee that Decode(Encode(c)) yields a value equal
// to c under the cursor ordering, and must reject tokens that do not
// round-trip instead of substituting a default. Both methods are pure.
//
// Ready-made codecs for common cursor types live in the codec subpackage.
type Codec[C any] interface {
	// Encode produces an opaque token for a cursor value. Encode is total
	// over valid cursor values and never fails.
	Encode(cursor C) string

	// Decode parses a token back into a cursor value. It returns an error
	// for any malformed token; the resolver surfaces that as an
	// InvalidCursorError before the fetch callback runs.
	Decode(token string) (C, error)
}

// FetchFunc loads the nodes for one pagination request. It is supplied by
// the caller and invoked exactly once per request.
//
// The callback must return nodes whose cursors lie strictly between after
// and before (when present), ordered ascending by cursor. A nil bound means
// the range is open on that side. A nil limit means "fetch all remaining in
// range"; otherwise at most limit nodes should be returned. The resolver
// trusts this contract and only re-slices, it never re-filters or re-sorts.
//
// The arguments correspond to SQL in the following way:
//
//	SELECT ... FROM table WHERE cursor > $after AND cursor < $before
//	ORDER BY cursor LIMIT $limit
//
// The limit is purely an optimization and may be ignored without breaking
// the connection contract. Any error the callback returns is propagated
// unchanged inside a FetchError; there are no retries. Cancellation is the
// callback's responsibility via the supplied context.
type FetchFunc[N Node[C], C any] func(ctx context.Context, after, before *C, limit *int) ([]N, error)

// Pagination strategies reported in Metadata.Strategy.
const (
	StrategyForward  = "forward"
	StrategyBackward = "backward"
	StrategyAll      = "all"
)

// Metadata provides observability information about one pagination request.
// Useful for monitoring fetch behavior without instrumenting every callback.
type Metadata struct {
	// Strategy identifies the traversal direction that was resolved.
	// Values: "forward", "backward", "all".
	Strategy string

	// QueryTimeMs is the time spent inside the fetch callback.
	QueryTimeMs int64

	// ItemsExamined is the number of nodes the callback returned,
	// including the over-fetch probe that is trimmed from the result.
	ItemsExamined int
}
