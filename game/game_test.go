package game

import (
	"testing"

	"github.com/pthm-cable/anthill/components"
	"github.com/pthm-cable/anthill/config"
)

// testConfig builds a config for a size×size world with default rule
// thresholds (prey breed 3, predator breed 8, starve 3).
func testConfig(size, prey, predators int) *config.Config {
	return &config.Config{
		World:      config.WorldConfig{Size: size},
		Population: config.PopulationConfig{InitialPrey: prey, InitialPredators: predators},
		Breeding:   config.BreedingConfig{PreyTicks: 3, PredatorTicks: 8},
		Starvation: config.StarvationConfig{PredatorTicks: 3},
		Render:     config.RenderConfig{PreyGlyph: "o", PredatorGlyph: "X", EmptyGlyph: "-"},
		Telemetry:  config.TelemetryConfig{WindowTicks: 10},
	}
}

func newTestGame(t *testing.T, cfg *config.Config, seed int64) *Game {
	t.Helper()
	g, err := NewGame(Options{Seed: seed, Cfg: cfg})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

// checkBijection verifies that occupied cells and registered entities map
// one-to-one, with every stored Position matching its cell coordinates.
func checkBijection(t *testing.T, g *Game) {
	t.Helper()
	size := g.lattice.Size()

	occupied := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := components.Position{X: x, Y: y}
			e, ok := g.lattice.Occupant(p)
			if !ok {
				continue
			}
			occupied++
			if !g.world.Alive(e) {
				t.Fatalf("cell (%d,%d) references a removed entity", x, y)
			}
			if got := *g.posMap.Get(e); got != p {
				t.Fatalf("entity in cell (%d,%d) stores position (%d,%d)", x, y, got.X, got.Y)
			}
		}
	}

	registered := 0
	query := g.filter.Query()
	for query.Next() {
		registered++
	}

	if occupied != registered {
		t.Fatalf("occupied cells = %d, registered entities = %d", occupied, registered)
	}
	if registered != g.numPrey+g.numPred {
		t.Fatalf("registered entities = %d, population counters say %d", registered, g.numPrey+g.numPred)
	}
}

func TestInitializePlacesPopulation(t *testing.T) {
	g := newTestGame(t, testConfig(20, 100, 5), 1)

	if err := g.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if g.PreyCount() != 100 {
		t.Errorf("PreyCount() = %d, want 100", g.PreyCount())
	}
	if g.PredatorCount() != 5 {
		t.Errorf("PredatorCount() = %d, want 5", g.PredatorCount())
	}
	if g.Age() != 0 {
		t.Errorf("Age() = %d before any step, want 0", g.Age())
	}
	checkBijection(t, g)

	if err := g.Initialize(); err == nil {
		t.Error("second Initialize should fail")
	}
}

func TestStepMaintainsInvariants(t *testing.T) {
	g := newTestGame(t, testConfig(20, 100, 5), 7)
	if err := g.Initialize(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		g.Step()
		checkBijection(t, g)
	}
	if g.Age() != 50 {
		t.Errorf("Age() = %d after 50 steps, want 50", g.Age())
	}
}

func TestDeterminismUnderSeed(t *testing.T) {
	run := func(seed int64, ticks int) []string {
		g := newTestGame(t, testConfig(20, 100, 5), seed)
		if err := g.Initialize(); err != nil {
			t.Fatal(err)
		}
		renders := []string{g.Render()}
		for i := 0; i < ticks; i++ {
			g.Step()
			renders = append(renders, g.Render())
		}
		return renders
	}

	a := run(42, 25)
	b := run(42, 25)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs with identical seed diverged at tick %d:\n%s\nvs\n%s", i, a[i], b[i])
		}
	}

	c := run(43, 25)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("runs with different seeds produced identical renderings")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, testConfig(2, 0, 0), 1)
	g.spawnOrganism(components.Position{X: 0, Y: 0}, components.SpeciesPrey)
	g.spawnOrganism(components.Position{X: 1, Y: 1}, components.SpeciesPredator)

	want := "World at iteration 1:\no - \n- X \n"
	if got := g.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderHeaderTracksAge(t *testing.T) {
	g := newTestGame(t, testConfig(2, 0, 0), 1)

	g.Step()
	g.Step()

	want := "World at iteration 3:\n- - \n- - \n"
	if got := g.Render(); got != want {
		t.Errorf("Render() after 2 steps = %q, want %q", got, want)
	}
}
