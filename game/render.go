package game

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/anthill/components"
)

// Render returns the textual grid view: a header naming the iteration about
// to be shown (1-indexed), then one line per row of space-separated species
// glyphs or the empty-cell marker. Read-only; drivers may call it at any
// point between ticks.
func (g *Game) Render() string {
	r := g.cfg.Render
	size := g.lattice.Size()

	var b strings.Builder
	fmt.Fprintf(&b, "World at iteration %d:\n", g.age+1)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			glyph := r.EmptyGlyph
			if e, occupied := g.lattice.Occupant(components.Position{X: x, Y: y}); occupied {
				if g.orgMap.Get(e).Species == components.SpeciesPredator {
					glyph = r.PredatorGlyph
				} else {
					glyph = r.PreyGlyph
				}
			}
			b.WriteString(glyph)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
