package relay_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/go-relay"
	"github.com/nrfta/go-relay/codec"
)

// domainNode is the presentation-side shape used in mapping tests.
type domainNode struct {
	ID    string
	Label string
}

var _ = Describe("Connection", func() {
	intCodec := codec.Int()

	Describe("Empty", func() {
		It("should have no edges and all flags false", func() {
			conn := relay.Empty[fakeNode]()

			Expect(conn.Edges).To(BeEmpty())
			Expect(conn.Nodes).To(BeEmpty())
			Expect(conn.PageInfo.HasNextPage).To(BeFalse())
			Expect(conn.PageInfo.HasPreviousPage).To(BeFalse())
			Expect(conn.PageInfo.StartCursor).To(BeNil())
			Expect(conn.PageInfo.EndCursor).To(BeNil())
		})
	})

	Describe("edges", func() {
		It("should pair each node with its encoded cursor in order", func() {
			first := 3
			conn, err := relay.New(context.Background(), relay.Args{First: &first}, intCodec,
				staticFetch(&fetchRecorder{}, nodes(4, 5, 6)))

			Expect(err).ToNot(HaveOccurred())
			Expect(conn.Edges).To(HaveLen(3))
			for i, edge := range conn.Edges {
				Expect(edge.Cursor).To(Equal(intCodec.Encode(edge.Node.Cursor())))
				Expect(edge.Node).To(Equal(conn.Nodes[i]))
			}
		})
	})

	Describe("MapConnection", func() {
		var conn *relay.Connection[fakeNode]

		BeforeEach(func() {
			var err error
			first := 2
			conn, err = relay.New(context.Background(), relay.Args{First: &first}, intCodec,
				staticFetch(&fetchRecorder{}, nodes(1, 2, 3)))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should transform nodes while preserving cursors and page info", func() {
			mapped, err := relay.MapConnection(conn, func(n fakeNode) (*domainNode, error) {
				return &domainNode{
					ID:    fmt.Sprintf("node-%d", n.id),
					Label: fmt.Sprintf("Node %d", n.id),
				}, nil
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(mapped.Nodes).To(HaveLen(2))
			Expect(mapped.Nodes[0].ID).To(Equal("node-1"))
			Expect(mapped.Nodes[1].ID).To(Equal("node-2"))

			Expect(mapped.Edges).To(HaveLen(2))
			Expect(mapped.Edges[0].Cursor).To(Equal(conn.Edges[0].Cursor))
			Expect(mapped.Edges[1].Cursor).To(Equal(conn.Edges[1].Cursor))
			Expect(mapped.Edges[0].Node).To(Equal(mapped.Nodes[0]))

			Expect(mapped.PageInfo).To(Equal(conn.PageInfo))
			Expect(mapped.Metadata).To(Equal(conn.Metadata))
		})

		It("should propagate transform errors with the failing index", func() {
			mapped, err := relay.MapConnection(conn, func(n fakeNode) (*domainNode, error) {
				if n.id == 2 {
					return nil, fmt.Errorf("bad node %d", n.id)
				}
				return &domainNode{ID: fmt.Sprintf("node-%d", n.id)}, nil
			})

			Expect(mapped).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("transform node at index 1"))
			Expect(err.Error()).To(ContainSubstring("bad node 2"))
		})
	})
})
