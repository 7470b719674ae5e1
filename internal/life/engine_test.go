package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ndlife/internal/life"
)

func alive(g *life.Grid) []int {
	var out []int
	for i := 0; i < g.Len(); i++ {
		if c, _ := g.Cell(i); c == life.Alive {
			out = append(out, i)
		}
	}
	return out
}

var _ = Describe("Step", func() {
	Context("with percentage rules in 2D", func() {
		var g *life.Grid

		BeforeEach(func() {
			var err error
			g, err = life.New(life.Percentage, 2, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Thresholds()).To(Equal(life.Thresholds{MinNeighbors: 2, MinBreedNeighbors: 3, MaxNeighbors: 3}))
		})

		It("kills an isolated cell", func() {
			Expect(g.SetCellAt([]int{3, 3}, life.Alive)).To(Succeed())
			g.Step()
			Expect(g.Population()).To(BeZero())
		})

		It("breeds a cell with exactly three alive neighbors", func() {
			for _, p := range [][]int{{1, 1}, {2, 1}, {3, 1}} {
				Expect(g.SetCellAt(p, life.Alive)).To(Succeed())
			}
			g.Step()
			c, err := g.CellAt([]int{2, 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(c).To(Equal(life.Alive))
		})

		It("keeps a dead cell dead in the survive-only zone", func() {
			Expect(g.SetCellAt([]int{0, 0}, life.Alive)).To(Succeed())
			Expect(g.SetCellAt([]int{2, 0}, life.Alive)).To(Succeed())
			g.Step()
			c, _ := g.CellAt([]int{1, 0})
			Expect(c).To(Equal(life.Dead))
			c, _ = g.CellAt([]int{1, 1})
			Expect(c).To(Equal(life.Dead))
		})
	})

	Context("with basic rules in 3D", func() {
		It("leaves an empty grid empty", func() {
			g, err := life.New(life.Basic, 3, 4)
			Expect(err).NotTo(HaveOccurred())
			g.Step()
			Expect(alive(g)).To(BeEmpty())
			Expect(g.Generation()).To(Equal(1))
		})

		It("gives corner cells seven neighbors", func() {
			g, _ := life.New(life.Basic, 3, 4)
			nbrs, err := g.NeighborIndices(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(nbrs).To(HaveLen(7))
			Expect(nbrs).To(ConsistOf(1, 4, 5, 16, 17, 20, 21))
		})
	})

	It("matches a clone stepped in lockstep", func() {
		g, _ := life.New(life.Percentage, 2, 8)
		for i := 0; i < g.Len(); i += 3 {
			Expect(g.SetCell(i, life.Alive)).To(Succeed())
		}
		c := g.Clone()
		for i := 0; i < 5; i++ {
			g.Step()
			c.Step()
			Expect(alive(c)).To(Equal(alive(g)))
		}
	})
})
