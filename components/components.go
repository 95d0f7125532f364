// Package components defines the data attached to every organism entity.
package components

// Position is a cell coordinate on the lattice.
type Position struct {
	X int
	Y int
}

// Species is the closed set of organism kinds. Behavior dispatches on this
// tag rather than an open interface.
type Species uint8

const (
	SpeciesPrey Species = iota
	SpeciesPredator
)

// String returns the species name for logs and telemetry.
func (s Species) String() string {
	if s == SpeciesPredator {
		return "predator"
	}
	return "prey"
}

// Organism holds per-entity lifecycle counters.
//
// Breed counts ticks since creation or since the last reproduction attempt.
// Starve counts consecutive ticks a predator has gone without feeding; it is
// unused for prey.
type Organism struct {
	ID      uint32
	Species Species
	Breed   int
	Starve  int
}
