package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Naming", func() {
	DescribeTable("valid names",
		func(name string) {
			Expect(func() { NameMustBeValid(name) }).NotTo(Panic())
		},
		Entry("simple", "Medium"),
		Entry("hierarchical", "Net.Medium"),
		Entry("indexed", "Net.Radio[2]"),
		Entry("multi-indexed", "Net.Radio[2][3].Queue[0]"),
	)

	DescribeTable("invalid names",
		func(name string) {
			Expect(func() { NameMustBeValid(name) }).To(Panic())
		},
		Entry("empty element", "Net..Radio"),
		Entry("trailing dot", "Net.Radio."),
		Entry("lower case", "Net.radio"),
		Entry("underscore", "Net.Ra_dio"),
		Entry("non-integer index", "Net.Radio[a]"),
	)

	It("should build names", func() {
		Expect(BuildName("", "Medium")).To(Equal("Medium"))
		Expect(BuildName("Net", "Medium")).To(Equal("Net.Medium"))
		Expect(BuildNameWithIndex("Net", "Radio", 3)).To(Equal("Net.Radio[3]"))
	})
})
