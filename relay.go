// Package relay implements Relay-style cursor pagination over any ordered
// collection, decoupled from the storage backend.
//
// Callers supply the four Relay pagination arguments (first, after, last,
// before) and a single fetch callback; the core validates the arguments,
// decodes the cursor bounds, computes the fetch window and over-fetch limit,
// invokes the callback exactly once, and interprets the returned sequence
// into a connection with edges and page metadata.
//
// Example usage:
//
//	conn, err := relay.New(ctx, args, codec.Int64(),
//	    func(ctx context.Context, after, before *int64, limit *int) ([]Post, error) {
//	        return store.PostsBetween(ctx, after, before, limit)
//	    },
//	)
//
// The GraphQL schema bindings and the storage implementation are the
// caller's concern; the opaque cursor string is the only encoded artifact
// this package owns.
package relay

import (
	"context"
	"time"
)

// bounds holds the decoded cursor bounds of one request. They are owned by
// the resolver for the duration of a single resolution.
type bounds[C any] struct {
	after  *C
	before *C
}

// decodeBounds decodes the After and Before tokens. A failure on either
// token short-circuits before the fetch callback is invoked.
func decodeBounds[C any](args Args, codec Codec[C]) (bounds[C], error) {
	var b bounds[C]

	if args.After != nil {
		cursor, err := codec.Decode(*args.After)
		if err != nil {
			return b, &InvalidCursorError{Name: "after", Token: *args.After, Err: err}
		}
		b.after = &cursor
	}

	if args.Before != nil {
		cursor, err := codec.Decode(*args.Before)
		if err != nil {
			return b, &InvalidCursorError{Name: "before", Token: *args.Before, Err: err}
		}
		b.before = &cursor
	}

	return b, nil
}

// window is the resolved fetch plan: traversal strategy plus the over-fetch
// limit handed to the callback. A nil limit means "all remaining in range".
type window struct {
	strategy string
	limit    *int
}

// resolveWindow selects the traversal direction and over-fetch limit.
//
// First, when present, wins regardless of Last: forward traversal with a
// limit of First+1 so the extra probe node reveals whether a next page
// exists. Otherwise Last selects backward traversal over the tail of the
// range with a limit of Last+1. With neither, the entire bounded range is
// fetched unbounded.
func resolveWindow(args Args) window {
	switch {
	case args.First != nil:
		limit := *args.First + 1
		return window{strategy: StrategyForward, limit: &limit}

	case args.Last != nil:
		limit := *args.Last + 1
		return window{strategy: StrategyBackward, limit: &limit}

	default:
		return window{strategy: StrategyAll}
	}
}

// New builds a Relay-style paginated connection. It is the single public
// entry point: it validates args, decodes the cursor bounds with the codec,
// invokes fetch exactly once with (after, before, limit), and assembles the
// resulting connection.
//
// Errors are terminal for the request and checked in a fixed order:
// *ArgumentError for a negative First or Last, then *InvalidCursorError for
// an undecodable After or Before (both before fetch runs), then *FetchError
// wrapping whatever the callback reported.
//
// The entire resolution is synchronous; the one suspension point is the
// fetch call, which receives ctx unchanged and owns cancellation.
func New[N Node[C], C any](
	ctx context.Context,
	args Args,
	codec Codec[C],
	fetch FetchFunc[N, C],
	opts ...PaginateOption,
) (*Connection[N], error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}

	args = effectiveArgs(args, applyOptions(opts))

	b, err := decodeBounds(args, codec)
	if err != nil {
		return nil, err
	}

	win := resolveWindow(args)

	start := time.Now()
	nodes, err := fetch(ctx, b.after, b.before, win.limit)
	queryTime := time.Since(start)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	fetched := len(nodes)
	nodes, hasNext, hasPrev := sliceWindow(args, b, nodes)

	conn := buildConnection(nodes, codec, hasNext, hasPrev)
	conn.Metadata = Metadata{
		Strategy:      win.strategy,
		QueryTimeMs:   queryTime.Milliseconds(),
		ItemsExamined: fetched,
	}
	return conn, nil
}

// sliceWindow interprets the fetched ascending sequence against the
// requested counts: it trims the over-fetch probe and derives the page
// flags. The flags for the anchored side are approximations by design - the
// presence of an After bound implies a preceding page, the presence of a
// Before bound implies a following page - without a second probe fetch.
func sliceWindow[N any, C any](args Args, b bounds[C], nodes []N) ([]N, bool, bool) {
	var hasNext, hasPrev bool

	switch {
	case args.First != nil:
		if len(nodes) > *args.First {
			hasNext = true
			nodes = nodes[:*args.First]
		}
		hasPrev = b.after != nil

		// When Last accompanies First, it trims the already-truncated
		// page from the front, per the connection specification.
		if args.Last != nil && len(nodes) > *args.Last {
			hasPrev = true
			nodes = nodes[len(nodes)-*args.Last:]
		}

	case args.Last != nil:
		if len(nodes) > *args.Last {
			hasPrev = true
			nodes = nodes[len(nodes)-*args.Last:]
		}
		hasNext = b.before != nil
	}

	return nodes, hasNext, hasPrev
}
