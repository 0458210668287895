// Package sqlboiler adapts SQLBoiler queries into relay fetch callbacks.
//
// The adapter converts the resolver's fetch window (after, before, limit)
// into SQLBoiler query mods for a single cursor column, keeping the relay
// core free of any ORM dependency: the core only ever sees a FetchFunc.
//
// Example usage:
//
//	fetch := sqlboiler.NewFetchFunc[*models.Post, int64]("id",
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Post, error) {
//	        return models.Posts(mods...).All(ctx, db)
//	    },
//	)
//	conn, err := relay.New(ctx, args, codec.Int64(), fetch)
//
// The generated window corresponds to:
//
//	SELECT ... FROM posts WHERE "id" > $after AND "id" < $before
//	ORDER BY "id" ASC LIMIT $limit
//
// Requirements:
//   - The cursor column must be unique and totally ordered (a primary key
//     or a unique sort key).
//   - An index on the cursor column keeps every page O(1).
//
// Limitations:
//   - The mods honor the limit from the low end of the range, which is the
//     forward traversal shape. Backward requests (Last/Before) still slice
//     correctly as long as the callback returns the full bounded range; the
//     limit is an optimization the adapter only applies safely forward.
package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"

	"github.com/nrfta/go-relay"
)

// QueryFunc executes a SQLBoiler query and returns results.
// This is ORM-specific but pagination-agnostic.
//
// Type parameter N is the SQLBoiler model type (e.g., *models.Post).
type QueryFunc[N any] func(ctx context.Context, mods ...qm.QueryMod) ([]N, error)

// RangeToQueryMods converts a fetch window into SQLBoiler query mods over a
// single cursor column.
//
// The conversion follows these rules:
//   - after  → qm.Where(`"col" > ?`, *after)
//   - before → qm.Where(`"col" < ?`, *before)
//   - limit  → qm.Limit(*limit) (omitted when nil, i.e. fetch all in range)
//   - always → qm.OrderBy(`"col" ASC`)
//
// The column is identifier-quoted, so qualified names like "posts.id" work.
func RangeToQueryMods[C any](column string, after, before *C, limit *int) []qm.QueryMod {
	col := strmangle.IdentQuote('"', '"', column)

	mods := []qm.QueryMod{}

	if after != nil {
		mods = append(mods, qm.Where(col+" > ?", *after))
	}
	if before != nil {
		mods = append(mods, qm.Where(col+" < ?", *before))
	}
	if limit != nil {
		mods = append(mods, qm.Limit(*limit))
	}

	mods = append(mods, qm.OrderBy(col+" ASC"))

	return mods
}

// NewFetchFunc wraps a SQLBoiler query into a relay fetch callback keyed on
// the given cursor column. The returned callback builds the range mods and
// runs the query once per pagination request.
func NewFetchFunc[N relay.Node[C], C any](column string, query QueryFunc[N]) relay.FetchFunc[N, C] {
	return func(ctx context.Context, after, before *C, limit *int) ([]N, error) {
		return query(ctx, RangeToQueryMods(column, after, before, limit)...)
	}
}
