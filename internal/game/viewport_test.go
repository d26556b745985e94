package game

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/conway/internal/grid"
)

type bounds struct{ Lo, Hi grid.Point }

func boundsOf(lo, hi grid.Point) bounds { return bounds{lo, hi} }

var _ = Describe("Viewport", func() {
	DescribeTable("fixed bounds",
		func(v Viewport, want bounds) {
			Expect(boundsOf(v.Bounds())).To(Equal(want))
		},
		Entry("pads content to width and height",
			Viewport{Origin: grid.Point{X: -3}, Width: 7, Height: 7},
			bounds{grid.Point{X: -3, Y: 0}, grid.Point{X: 3, Y: 6}}),
		Entry("wide viewport",
			Viewport{Origin: grid.Point{X: -12, Y: 1}, Width: 88, Height: 12},
			bounds{grid.Point{X: -12, Y: 1}, grid.Point{X: 75, Y: 12}}),
		Entry("short viewport",
			Viewport{Origin: grid.Point{X: 2, Y: 2}, Width: 10, Height: 3},
			bounds{grid.Point{X: 2, Y: 2}, grid.Point{X: 11, Y: 4}}),
		Entry("adjusts for scroll",
			Viewport{Origin: grid.Point{X: 2, Y: 2}, Scroll: grid.Point{X: 1, Y: -5}, Width: 10, Height: 3},
			bounds{grid.Point{X: 3, Y: -3}, grid.Point{X: 12, Y: -1}}),
	)

	DescribeTable("centered bounds",
		func(v Viewport, p grid.Point, want bounds) {
			Expect(boundsOf(v.Centered(p))).To(Equal(want))
		},
		Entry("expands to fit width and height",
			Viewport{Width: 7, Height: 7}, grid.Point{X: 0, Y: 1},
			bounds{grid.Point{X: -3, Y: -2}, grid.Point{X: 3, Y: 4}}),
		Entry("narrows to fit width and height",
			Viewport{Width: 88, Height: 12}, grid.Point{X: 21, Y: 17},
			bounds{grid.Point{X: -23, Y: 11}, grid.Point{X: 64, Y: 22}}),
		Entry("odd height",
			Viewport{Width: 10, Height: 3}, grid.Point{X: 4, Y: 3},
			bounds{grid.Point{X: -1, Y: 2}, grid.Point{X: 8, Y: 4}}),
		Entry("ignores scroll",
			Viewport{Width: 10, Height: 3, Scroll: grid.Point{X: 1, Y: -5}}, grid.Point{X: 4, Y: 3},
			bounds{grid.Point{X: -1, Y: 2}, grid.Point{X: 8, Y: 4}}),
	)

	It("shifts following bounds by scroll", func() {
		v := Viewport{Width: 10, Height: 3, Scroll: grid.Point{X: 1, Y: -5}}
		Expect(boundsOf(v.Following(grid.Point{X: 4, Y: 3}))).To(Equal(
			bounds{grid.Point{X: 0, Y: -3}, grid.Point{X: 9, Y: -1}}))
	})

	It("centers so fixed bounds match centered bounds", func() {
		v := Viewport{Origin: grid.Point{X: 5, Y: -2}, Scroll: grid.Point{X: 9, Y: 9}, Width: 11, Height: 4}
		p := grid.Point{X: -7, Y: 30}
		v.Center(p)
		Expect(boundsOf(v.Bounds())).To(Equal(boundsOf(v.Centered(p))))
	})

	It("scrolls without clamping", func() {
		v := Viewport{Width: 1, Height: 1}
		v.ScrollBy(-100, 3)
		v.ScrollBy(40, -10)
		Expect(v.Scroll).To(Equal(grid.Point{X: -60, Y: -7}))
	})

	DescribeTable("SplitInt",
		func(n, first, second int64) {
			a, b := SplitInt(n)
			Expect(a).To(Equal(first))
			Expect(b).To(Equal(second))
			Expect(a + b).To(Equal(n))
		},
		Entry("30", int64(30), int64(15), int64(15)),
		Entry("31", int64(31), int64(15), int64(16)),
		Entry("32", int64(32), int64(16), int64(16)),
		Entry("0", int64(0), int64(0), int64(0)),
		Entry("1", int64(1), int64(0), int64(1)),
		Entry("2", int64(2), int64(1), int64(1)),
	)
})

var _ = Describe("View", func() {
	It("parses every view name", func() {
		for _, v := range Views() {
			parsed, err := ParseView(v.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(v))
		}
	})

	It("rejects unknown names", func() {
		_, err := ParseView("diagonal")
		Expect(err).To(MatchError(ErrUnknownView))
		Expect(err.Error()).To(ContainSubstring("diagonal"))
	})

	It("round trips through text", func() {
		text, err := Follow.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(text)).To(Equal("follow"))

		var v View
		Expect(v.UnmarshalText([]byte("fixed"))).To(Succeed())
		Expect(v).To(Equal(Fixed))
	})

	It("refuses to marshal an out of range view", func() {
		_, err := View(9).MarshalText()
		Expect(err).To(MatchError(ErrUnknownView))
		Expect(View(9).Valid()).To(BeFalse())
	})
})
