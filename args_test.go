package relay_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nrfta/go-relay"
)

var _ = Describe("Args", func() {
	Describe("Validate", func() {
		It("should accept empty arguments", func() {
			Expect(relay.Args{}.Validate()).To(Succeed())
		})

		It("should accept zero and positive counts", func() {
			zero := 0
			ten := 10
			Expect(relay.Args{First: &zero}.Validate()).To(Succeed())
			Expect(relay.Args{First: &ten, Last: &zero}.Validate()).To(Succeed())
		})

		It("should accept first and last together", func() {
			first := 5
			last := 2
			Expect(relay.Args{First: &first, Last: &last}.Validate()).To(Succeed())
		})

		It("should reject a negative first", func() {
			first := -1
			err := relay.Args{First: &first}.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("pagination argument first must be non-negative, got -1"))
		})

		It("should report first before last when both are negative", func() {
			first := -1
			last := -2
			err := relay.Args{First: &first, Last: &last}.Validate()
			Expect(err).To(MatchError(ContainSubstring("first")))
		})
	})

	Describe("accessors", func() {
		It("should expose the raw argument values", func() {
			first := 3
			after := "a"
			last := 4
			before := "b"
			args := relay.Args{First: &first, After: &after, Last: &last, Before: &before}

			Expect(args.GetFirst()).To(Equal(&first))
			Expect(args.GetAfter()).To(Equal(&after))
			Expect(args.GetLast()).To(Equal(&last))
			Expect(args.GetBefore()).To(Equal(&before))
		})
	})
})
