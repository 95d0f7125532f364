package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/pthm-cable/anthill/config"
	"github.com/pthm-cable/anthill/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	headless := flag.Bool("headless", false, "Run without prompting between ticks")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited, headless only)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV telemetry and config snapshot")
	profileRun := flag.Bool("profile", false, "Write a CPU profile for this run")

	flag.Parse()

	// Set up slog (JSON to stderr; stdout belongs to the rendered grid)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if *profileRun {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	g, err := game.NewGame(game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	})
	if err != nil {
		slog.Error("failed to create world", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Initialize(); err != nil {
		slog.Error("failed to seed world", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"seed", rngSeed,
		"headless", *headless,
		"max_ticks", *maxTicks,
	)

	if *headless {
		runHeadless(g, *maxTicks)
		return
	}
	runInteractive(g, os.Stdin, os.Stdout)
}

// runHeadless steps the world without prompting, up to maxTicks.
func runHeadless(g *game.Game, maxTicks int) {
	for {
		g.Step()

		if maxTicks > 0 && g.Age() >= maxTicks {
			slog.Info("max ticks reached",
				"tick", g.Age(),
				"prey", g.PreyCount(),
				"predators", g.PredatorCount(),
			)
			return
		}
	}
}

// runInteractive renders the world and advances one tick per line of input.
// A line of "q", or end of input, terminates the run. A blank line separates
// the grid from the prompt.
func runInteractive(g *game.Game, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, g.Render())
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Press Enter to continue, or type 'q' (then Enter) to quit.")

		if !scanner.Scan() {
			return
		}
		if scanner.Text() == "q" {
			return
		}
		g.Step()
	}
}
