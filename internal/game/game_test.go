package game

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/conway/internal/grid"
)

func asciiSettings(view View) Settings {
	return Settings{CharAlive: 'x', CharDead: '.', View: view}
}

func mkGame(view View, width, height uint64, cells ...grid.Point) *Game {
	g, err := New(grid.New(cells...), asciiSettings(view), width, height)
	Expect(err).NotTo(HaveOccurred())
	return g
}

var blinker = []grid.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}

var _ = Describe("Game", func() {
	Describe("construction", func() {
		It("takes width and height when given", func() {
			g := mkGame(Fixed, 8, 8, grid.Point{}, grid.Point{X: 5, Y: 5})
			Expect(g.ViewportState().Width).To(BeEquivalentTo(8))
			Expect(g.ViewportState().Height).To(BeEquivalentTo(8))
		})

		It("derives width and height from the grid", func() {
			g := mkGame(Fixed, 0, 0, grid.Point{}, grid.Point{X: 5, Y: 5})
			Expect(g.ViewportState().Width).To(BeEquivalentTo(6))
			Expect(g.ViewportState().Height).To(BeEquivalentTo(6))
		})

		It("gives an empty grid a one cell viewport", func() {
			g, err := New(nil, asciiSettings(Centered), 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.IsOver()).To(BeTrue())
			Expect(g.Draw()).To(Equal(".\n"))
		})

		It("rejects an unknown view", func() {
			_, err := New(grid.Empty(), asciiSettings(View(7)), 1, 1)
			Expect(err).To(MatchError(ErrUnknownView))
		})

		It("rejects a pattern wider than the int64 range", func() {
			g := grid.New(grid.Point{X: math.MinInt64}, grid.Point{X: math.MaxInt64})
			_, err := New(g, asciiSettings(Fixed), 0, 0)
			Expect(err).To(MatchError(ErrViewportSize))

			_, err = New(g, asciiSettings(Fixed), 10, 0)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a pattern taller than the int64 range", func() {
			g := grid.New(grid.Point{Y: math.MinInt64 + 1}, grid.Point{Y: math.MaxInt64})
			_, err := New(g, asciiSettings(Centered), 0, 0)
			Expect(err).To(MatchError(ErrViewportSize))
		})

		It("derives the largest span that fits", func() {
			g := mkGame(Fixed, 0, 0, grid.Point{X: 1}, grid.Point{X: math.MaxInt64})
			Expect(g.ViewportState().Width).To(BeEquivalentTo(uint64(math.MaxInt64)))
			lo, hi := g.Viewport()
			Expect(hi.X - lo.X).To(BeEquivalentTo(int64(math.MaxInt64 - 1)))
		})

		It("rejects explicit sides above math.MaxInt64", func() {
			_, err := New(grid.New(grid.Point{}), asciiSettings(Fixed), 1<<63, 2)
			Expect(err).To(MatchError(ErrViewportSize))

			_, err = New(grid.New(grid.Point{}), asciiSettings(Fixed), 2, math.MaxUint64)
			Expect(err).To(MatchError(ErrViewportSize))

			g := mkGame(Fixed, math.MaxInt64, 1, grid.Point{})
			lo, hi := g.Viewport()
			Expect(hi.X - lo.X).To(BeEquivalentTo(int64(math.MaxInt64 - 1)))
		})

		It("starts with the viewport centered on the midpoint", func() {
			g := mkGame(Fixed, 10, 3, grid.Point{X: 2, Y: 3}, grid.Point{X: 3, Y: 3}, grid.Point{X: 5, Y: 4}, grid.Point{X: 4, Y: 2})
			v := g.ViewportState()
			Expect(boundsOf(v.Bounds())).To(Equal(boundsOf(v.Centered(g.Grid().Midpoint()))))
		})
	})

	Describe("Survives", func() {
		var g *Game

		BeforeEach(func() {
			g = mkGame(Fixed, 0, 0, blinker...)
		})

		It("keeps a live cell with 2 live neighbors", func() {
			Expect(g.Survives(grid.Point{X: 1, Y: 1})).To(BeTrue())
		})

		It("revives a dead cell with 3 live neighbors", func() {
			Expect(g.Survives(grid.Point{X: 0, Y: 1})).To(BeTrue())
			Expect(g.Survives(grid.Point{X: 2, Y: 1})).To(BeTrue())
		})

		It("kills a live cell with fewer than 2 live neighbors", func() {
			Expect(g.Survives(grid.Point{X: 1, Y: 0})).To(BeFalse())
			Expect(g.Survives(grid.Point{X: 1, Y: 2})).To(BeFalse())
		})

		It("kills a live cell with more than 3 live neighbors", func() {
			crowded := mkGame(Fixed, 0, 0,
				grid.Point{X: 1, Y: 1}, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 0},
				grid.Point{X: 0, Y: 2}, grid.Point{X: 2, Y: 2})
			Expect(crowded.Survives(grid.Point{X: 1, Y: 1})).To(BeFalse())
		})

		It("leaves a dead cell with 2 live neighbors dead", func() {
			Expect(g.Survives(grid.Point{X: 0, Y: 0})).To(BeFalse())
		})
	})

	Describe("Tick", func() {
		It("oscillates a blinker", func() {
			g := mkGame(Fixed, 0, 0, blinker...)
			g.Tick()
			Expect(g.Grid().Equal(grid.New(grid.Point{X: 0, Y: 1}, grid.Point{X: 1, Y: 1}, grid.Point{X: 2, Y: 1}))).To(BeTrue())
			g.Tick()
			Expect(g.Grid().Equal(grid.New(blinker...))).To(BeTrue())
			Expect(g.Generation()).To(Equal(2))
		})

		It("keeps a block still", func() {
			block := []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
			g := mkGame(Fixed, 0, 0, block...)
			for i := 0; i < 5; i++ {
				g.Tick()
			}
			Expect(g.Grid().Equal(grid.New(block...))).To(BeTrue())
			Expect(g.IsOver()).To(BeFalse())
		})

		It("moves a glider one cell diagonally every four generations", func() {
			start, err := grid.Parse(".x.\n..x\nxxx")
			Expect(err).NotTo(HaveOccurred())
			g, err := New(start.Clone(), asciiSettings(Follow), 0, 0)
			Expect(err).NotTo(HaveOccurred())
			for i := 0; i < 4; i++ {
				g.Tick()
			}
			want := grid.Empty()
			for _, p := range start.Points() {
				want.SetAlive(p.Add(grid.Point{X: 1, Y: 1}))
			}
			Expect(g.Grid().Equal(want)).To(BeTrue())
		})

		It("kills an isolated cell in one generation", func() {
			g := mkGame(Centered, 0, 0, grid.Point{X: 4, Y: -4})
			Expect(g.IsOver()).To(BeFalse())
			g.Tick()
			Expect(g.IsOver()).To(BeTrue())
			Expect(g.Population()).To(Equal(0))
		})

		It("notifies observers with the new generation", func() {
			g := mkGame(Fixed, 0, 0, blinker...)
			var gens, pops []int
			g.AddObserver(ObserverFunc(func(gen int, cur *grid.Grid) {
				gens = append(gens, gen)
				pops = append(pops, cur.Len())
			}))
			g.Tick()
			g.Tick()
			Expect(gens).To(Equal([]int{1, 2}))
			Expect(pops).To(Equal([]int{3, 3}))
		})

		It("waits for the delay before ticking", func() {
			g, err := New(grid.New(blinker...), Settings{CharAlive: 'x', CharDead: '.', Delay: 20 * time.Millisecond}, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			start := time.Now()
			g.TickWithDelay()
			Expect(time.Since(start)).To(BeNumerically(">=", 20*time.Millisecond))
			Expect(g.Generation()).To(Equal(1))
		})
	})

	Describe("Draw", func() {
		It("renders the pattern in its own frame", func() {
			start, err := grid.Parse(".x.\n..x\nxxx")
			Expect(err).NotTo(HaveOccurred())
			g, err := New(start, asciiSettings(Fixed), 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Draw()).To(Equal(".x.\n..x\nxxx\n"))
		})

		It("uses the configured glyphs", func() {
			g, err := New(grid.New(grid.Point{}), Settings{CharAlive: '█', CharDead: '·', View: Centered}, 3, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Draw()).To(Equal("·█·\n"))
		})

		for _, view := range Views() {
			view := view
			It("renders height rows of width cells in "+view.String()+" mode", func() {
				g := mkGame(view, 13, 5, blinker...)
				for i := 0; i < 3; i++ {
					g.Scroll(2, -1)
					g.Tick()
					rows := strings.Split(strings.TrimSuffix(g.Draw(), "\n"), "\n")
					Expect(rows).To(HaveLen(5))
					for _, row := range rows {
						Expect(utf8.RuneCountInString(row)).To(Equal(13))
					}
				}
			})

			It("keeps the frame size at the ends of the lattice in "+view.String()+" mode", func() {
				g := mkGame(view, 5, 3, grid.Point{X: math.MaxInt64, Y: math.MaxInt64})
				Expect(g.Draw()).To(Equal(".....\n.....\n....x\n"))

				g = mkGame(view, 5, 3, grid.Point{X: math.MinInt64, Y: math.MinInt64})
				Expect(g.Draw()).To(Equal("x....\n.....\n.....\n"))
			})
		}
	})

	Describe("viewport control", func() {
		It("scrolls the fixed view", func() {
			g := mkGame(Fixed, 0, 0, grid.Point{X: 3, Y: 0}, grid.Point{X: -1, Y: 1}, grid.Point{X: 0, Y: -3})
			g.viewport.Scroll = grid.Origin()
			Expect(boundsOf(g.Viewport())).To(Equal(bounds{grid.Point{X: -1, Y: -3}, grid.Point{X: 3, Y: 1}}))
			g.Scroll(2, -4)
			Expect(boundsOf(g.Viewport())).To(Equal(bounds{grid.Point{X: 1, Y: -7}, grid.Point{X: 5, Y: -3}}))
		})

		It("centers the viewport on the grid", func() {
			g := mkGame(Fixed, 10, 3, grid.Point{X: 2, Y: 3}, grid.Point{X: 3, Y: 3}, grid.Point{X: 5, Y: 4}, grid.Point{X: 4, Y: 2})
			expected := boundsOf(g.viewport.Centered(g.grid.Midpoint()))
			g.CenterViewport()
			Expect(boundsOf(g.Viewport())).To(Equal(expected))
		})

		It("centers the viewport regardless of prior scroll", func() {
			g := mkGame(Fixed, 10, 3, grid.Point{X: 2, Y: 3}, grid.Point{X: 3, Y: 3}, grid.Point{X: 5, Y: 4}, grid.Point{X: 4, Y: 2})
			g.Scroll(-1, 2)
			expected := boundsOf(g.viewport.Centered(g.grid.Midpoint()))
			g.CenterViewport()
			Expect(boundsOf(g.Viewport())).To(Equal(expected))
		})

		It("ignores scroll in centered mode", func() {
			g := mkGame(Centered, 10, 3, blinker...)
			before := boundsOf(g.Viewport())
			g.Scroll(5, 5)
			Expect(boundsOf(g.Viewport())).To(Equal(before))
		})

		It("offsets the follow view by scroll and recenters it", func() {
			g := mkGame(Follow, 10, 3, blinker...)
			centered := boundsOf(g.viewport.Centered(g.grid.Midpoint()))
			Expect(boundsOf(g.Viewport())).To(Equal(centered))

			g.Scroll(2, 1)
			lo, hi := g.Viewport()
			Expect(lo).To(Equal(centered.Lo.Add(grid.Point{X: 2, Y: 1})))
			Expect(hi).To(Equal(centered.Hi.Add(grid.Point{X: 2, Y: 1})))

			g.CenterViewport()
			Expect(boundsOf(g.Viewport())).To(Equal(centered))
		})
	})

	Describe("Frames", func() {
		It("ends after an isolated cell dies", func() {
			g := mkGame(Centered, 3, 3, grid.Point{})
			frames := g.Frames()

			frame, ok := frames.Next()
			Expect(ok).To(BeTrue())
			Expect(frame).To(Equal("...\n...\n...\n"))
			Expect(g.IsOver()).To(BeTrue())

			_, ok = frames.Next()
			Expect(ok).To(BeFalse())
			Expect(g.Generation()).To(Equal(1))
		})

		It("yields nothing for an empty game", func() {
			g, err := New(grid.Empty(), asciiSettings(Centered), 2, 2)
			Expect(err).NotTo(HaveOccurred())
			count := 0
			for range g.Frames().Seq() {
				count++
			}
			Expect(count).To(BeZero())
		})

		It("keeps yielding for a stable pattern", func() {
			g := mkGame(Fixed, 0, 0, blinker...)
			frames := g.Frames()
			for i := 0; i < 10; i++ {
				_, ok := frames.Next()
				Expect(ok).To(BeTrue())
			}
			Expect(g.Generation()).To(Equal(10))
		})

		It("stops ticking when the consumer stops pulling", func() {
			g := mkGame(Fixed, 0, 0, blinker...)
			n := 0
			for range g.Frames().Seq() {
				n++
				if n == 3 {
					break
				}
			}
			Expect(g.Generation()).To(Equal(3))
		})

		It("applies the delay when requested", func() {
			g, err := New(grid.New(grid.Point{}), Settings{CharAlive: 'x', CharDead: '.', Delay: 15 * time.Millisecond}, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			start := time.Now()
			_, ok := g.Frames().WithDelay(true).Next()
			Expect(ok).To(BeTrue())
			Expect(time.Since(start)).To(BeNumerically(">=", 15*time.Millisecond))
		})
	})
})
