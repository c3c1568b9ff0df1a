package life_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/conway/internal/life"
)

// ring lists the eight neighbour offsets in a fixed order.
var ring = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func gridWith(n int, cells ...[2]int) *life.Grid {
	g := life.NewGrid(n)
	for _, c := range cells {
		g.Set(c[0], c[1], true)
	}
	return g
}

// withNeighbors builds a 5x5 grid whose centre has exactly k live neighbours.
func withNeighbors(centreAlive bool, k int) *life.Grid {
	g := life.NewGrid(5)
	g.Set(2, 2, centreAlive)
	for i := 0; i < k; i++ {
		g.Set(2+ring[i][0], 2+ring[i][1], true)
	}
	return g
}

func mustParse(s string) *life.Grid {
	g, err := life.Parse(s)
	Expect(err).NotTo(HaveOccurred())
	return g
}

var _ = Describe("Step", func() {
	Context("totality", func() {
		It("returns a grid of the same size for all-dead and all-alive inputs", func() {
			for n := 0; n <= 10; n++ {
				dead := life.NewGrid(n)
				Expect(life.Step(dead).Size()).To(Equal(n))

				alive := life.NewGrid(n)
				alive.Each(func(r, c int, _ bool) { alive.Set(r, c, true) })
				next := life.Step(alive)
				Expect(next.Size()).To(Equal(n))
				if n >= 2 {
					// corners of a full board see exactly three neighbours
					Expect(next.Alive(0, 0)).To(BeTrue())
					Expect(next.Alive(n-1, n-1)).To(BeTrue())
				}
			}
		})

		It("handles random boards of every small size", func() {
			rng := rand.New(rand.NewSource(42))
			for n := 0; n <= 10; n++ {
				for trial := 0; trial < 20; trial++ {
					g := life.NewGrid(n)
					g.Each(func(r, c int, _ bool) { g.Set(r, c, rng.Intn(2) == 1) })
					Expect(life.Step(g).Size()).To(Equal(n))
				}
			}
		})
	})

	Context("aliasing", func() {
		It("returns a distinct grid and leaves the input unchanged", func() {
			g := mustParse(`
				.....
				.....
				.###.
				.....
				.....`)
			before := g.Clone()

			next := life.Step(g)
			Expect(next).NotTo(BeIdenticalTo(g))
			Expect(g.Equal(before)).To(BeTrue())

			next.Toggle(0, 0)
			Expect(g.Alive(0, 0)).To(BeFalse())
			g.Toggle(4, 4)
			Expect(next.Alive(4, 4)).To(BeFalse())
		})
	})

	It("keeps an empty grid empty", func() {
		for _, n := range []int{0, 1, 3, 40} {
			next := life.Step(life.NewGrid(n))
			Expect(next.Population()).To(BeZero())
			Expect(next.Size()).To(Equal(n))
		}
	})

	It("leaves a block unchanged", func() {
		block := mustParse(`
			......
			......
			..##..
			..##..
			......
			......`)
		Expect(life.Step(block).Equal(block)).To(BeTrue())
	})

	It("oscillates a blinker with period two", func() {
		horizontal := mustParse(`
			.....
			.....
			.###.
			.....
			.....`)
		vertical := mustParse(`
			.....
			..#..
			..#..
			..#..
			.....`)

		gen1 := life.Step(horizontal)
		Expect(gen1.Equal(vertical)).To(BeTrue(), "generation 1:\n%s", gen1)
		gen2 := life.Step(gen1)
		Expect(gen2.Equal(horizontal)).To(BeTrue(), "generation 2:\n%s", gen2)
	})

	DescribeTable("dead cell",
		func(k int, born bool) {
			g := withNeighbors(false, k)
			Expect(life.Neighbors(g, 2, 2)).To(Equal(k))
			Expect(life.Step(g).Alive(2, 2)).To(Equal(born))
		},
		Entry("with 2 neighbours stays dead", 2, false),
		Entry("with 3 neighbours is born", 3, true),
		Entry("with 4 neighbours stays dead", 4, false),
	)

	DescribeTable("live cell",
		func(k int, survives bool) {
			g := withNeighbors(true, k)
			Expect(life.Neighbors(g, 2, 2)).To(Equal(k))
			Expect(life.Step(g).Alive(2, 2)).To(Equal(survives))
		},
		Entry("with 0 neighbours dies", 0, false),
		Entry("with 1 neighbour dies", 1, false),
		Entry("with 2 neighbours survives", 2, true),
		Entry("with 3 neighbours survives", 3, true),
		Entry("with 4 neighbours dies", 4, false),
		Entry("with 5 neighbours dies", 5, false),
		Entry("with 8 neighbours dies", 8, false),
	)

	Context("boundary", func() {
		It("counts only in-range neighbours at a corner", func() {
			g := gridWith(5, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
			Expect(life.Neighbors(g, 0, 0)).To(Equal(3))
			Expect(life.Step(g).Alive(0, 0)).To(BeTrue())
		})

		It("does not wrap around to the opposite edges", func() {
			// On a torus these would all neighbour (0, 0).
			g := gridWith(5, [2]int{4, 4}, [2]int{4, 0}, [2]int{0, 4})
			Expect(life.Neighbors(g, 0, 0)).To(BeZero())
			Expect(life.Step(g).Alive(0, 0)).To(BeFalse())
		})

		It("treats a 1x1 grid as having no neighbours", func() {
			g := gridWith(1, [2]int{0, 0})
			Expect(life.Neighbors(g, 0, 0)).To(BeZero())
			Expect(life.Step(g).Alive(0, 0)).To(BeFalse())
		})
	})
})

var _ = Describe("Rule", func() {
	It("matches B3/S23 for every neighbour count", func() {
		for n := 0; n <= 8; n++ {
			Expect(life.Rule(true, n)).To(Equal(n == 2 || n == 3), "alive, %d", n)
			Expect(life.Rule(false, n)).To(Equal(n == 3), "dead, %d", n)
		}
	})
})
