package relay

import "github.com/friendsofgo/errors"

// Edge represents a Relay-compliant edge in a connection.
// Each edge pairs a node with its encoded cursor; edges are constructed once
// per request and immutable thereafter.
//
// Type parameter N is the node type.
//
// Example GraphQL schema:
//
//	type PostConnectionEdge {
//	  cursor: String!
//	  node: Post!
//	}
type Edge[N any] struct {
	// Cursor is the opaque token marking this node's position.
	// Clients can use it as After or Before to resume pagination here.
	Cursor string `json:"cursor"`

	// Node is the actual data item.
	Node N `json:"node"`
}

// PageInfo contains metadata about a paginated result set. It is derived
// entirely from the resolved node list and the over-fetch signal.
type PageInfo struct {
	// HasNextPage reports whether more nodes exist after this page.
	HasNextPage bool `json:"hasNextPage"`

	// HasPreviousPage reports whether nodes exist before this page.
	HasPreviousPage bool `json:"hasPreviousPage"`

	// StartCursor is the cursor of the first edge, nil when the page is empty.
	StartCursor *string `json:"startCursor"`

	// EndCursor is the cursor of the last edge, nil when the page is empty.
	EndCursor *string `json:"endCursor"`
}

// Connection represents a Relay-compliant connection: the terminal,
// immutable result of one pagination request.
//
// It provides both edges (with cursors) and nodes (direct access) to support
// different query patterns.
//
// Example GraphQL schema:
//
//	type PostConnection {
//	  edges: [PostConnectionEdge!]!
//	  nodes: [Post!]!
//	  pageInfo: PageInfo!
//	}
type Connection[N any] struct {
	// Edges contains the list of edges in ascending cursor order.
	Edges []Edge[N] `json:"edges"`

	// Nodes provides direct access to the items without cursor overhead.
	Nodes []N `json:"nodes"`

	// PageInfo contains pagination metadata.
	PageInfo PageInfo `json:"pageInfo"`

	// Metadata provides observability information about the request.
	Metadata Metadata `json:"-"`
}

// Empty returns a connection with no edges and all page flags false.
func Empty[N any]() *Connection[N] {
	return &Connection[N]{
		Edges: []Edge[N]{},
		Nodes: []N{},
	}
}

// buildConnection maps the final ascending node list into edges, encoding
// each node's cursor, and assembles the page metadata. It cannot fail:
// encoding is total over valid cursor values.
func buildConnection[N Node[C], C any](
	nodes []N,
	codec Codec[C],
	hasNextPage, hasPreviousPage bool,
) *Connection[N] {
	conn := &Connection[N]{
		Edges: make([]Edge[N], 0, len(nodes)),
		Nodes: make([]N, 0, len(nodes)),
		PageInfo: PageInfo{
			HasNextPage:     hasNextPage,
			HasPreviousPage: hasPreviousPage,
		},
	}

	for _, node := range nodes {
		conn.Edges = append(conn.Edges, Edge[N]{
			Cursor: codec.Encode(node.Cursor()),
			Node:   node,
		})
		conn.Nodes = append(conn.Nodes, node)
	}

	if len(conn.Edges) > 0 {
		start := conn.Edges[0].Cursor
		end := conn.Edges[len(conn.Edges)-1].Cursor
		conn.PageInfo.StartCursor = &start
		conn.PageInfo.EndCursor = &end
	}

	return conn
}

// MapConnection transforms a connection of one node type into another,
// preserving cursors, page metadata, and edge order. It handles the common
// repository pattern of paginating database models and exposing domain
// models.
//
// Type parameters:
//   - From: Source type (e.g., *models.Post from SQLBoiler)
//   - To: Target type (e.g., *domain.Post for GraphQL)
//
// Example usage:
//
//	conn, err := relay.New(ctx, args, codec.Int64(), fetchPosts)
//	if err != nil {
//	    return nil, err
//	}
//	return relay.MapConnection(conn, toDomainPost)
func MapConnection[From any, To any](
	conn *Connection[From],
	transform func(From) (To, error),
) (*Connection[To], error) {
	mapped := &Connection[To]{
		Edges:    make([]Edge[To], 0, len(conn.Edges)),
		Nodes:    make([]To, 0, len(conn.Edges)),
		PageInfo: conn.PageInfo,
		Metadata: conn.Metadata,
	}

	for i, edge := range conn.Edges {
		transformed, err := transform(edge.Node)
		if err != nil {
			return nil, errors.Wrapf(err, "transform node at index %d", i)
		}

		mapped.Edges = append(mapped.Edges, Edge[To]{
			Cursor: edge.Cursor,
			Node:   transformed,
		})
		mapped.Nodes = append(mapped.Nodes, transformed)
	}

	return mapped, nil
}
