// Package systems provides the lattice and ordering primitives for the
// simulation.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/anthill/components"
)

// Lattice is a fixed-size square grid of cell occupancy. Each cell holds at
// most one entity handle; the zero entity marks an empty cell. The lattice
// does not own entity storage, it only indexes it by position; the ECS world
// remains the sole owner of every organism.
type Lattice struct {
	size  int
	cells []ecs.Entity
}

// NewLattice creates an empty size×size lattice.
func NewLattice(size int) *Lattice {
	return &Lattice{
		size:  size,
		cells: make([]ecs.Entity, size*size),
	}
}

// Size returns the side length of the lattice.
func (l *Lattice) Size() int {
	return l.size
}

// InBounds reports whether p lies on the lattice.
func (l *Lattice) InBounds(p components.Position) bool {
	return p.X >= 0 && p.X < l.size && p.Y >= 0 && p.Y < l.size
}

// Occupant returns the entity at p. ok is false for an empty cell and for
// out-of-bounds positions; out-of-bounds access is not an error condition
// since neighbor enumeration only yields in-bounds candidates.
func (l *Lattice) Occupant(p components.Position) (e ecs.Entity, ok bool) {
	if !l.InBounds(p) {
		return ecs.Entity{}, false
	}
	e = l.cells[p.Y*l.size+p.X]
	return e, e != (ecs.Entity{})
}

// Place stores e at p, overwriting the previous occupant. Out-of-bounds is a
// no-op. Callers vacate the source cell themselves as part of a move.
func (l *Lattice) Place(p components.Position, e ecs.Entity) {
	if !l.InBounds(p) {
		return
	}
	l.cells[p.Y*l.size+p.X] = e
}

// Clear empties the cell at p. Out-of-bounds is a no-op.
func (l *Lattice) Clear(p components.Position) {
	if !l.InBounds(p) {
		return
	}
	l.cells[p.Y*l.size+p.X] = ecs.Entity{}
}

// Neighbors4 returns the in-bounds 4-adjacent positions of p in a fixed
// order (up, down, right, left). Border cells get fewer than four neighbors.
// No diagonals, no wraparound.
func (l *Lattice) Neighbors4(p components.Position) []components.Position {
	dirs := [4]components.Position{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
	}
	out := make([]components.Position, 0, 4)
	for _, n := range dirs {
		if l.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// OccupiedCount returns the number of non-empty cells.
func (l *Lattice) OccupiedCount() int {
	count := 0
	for _, e := range l.cells {
		if e != (ecs.Entity{}) {
			count++
		}
	}
	return count
}
