package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/content"
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/dialogue"
	"github.com/vovakirdan/questcv/internal/game/sim"
	"github.com/vovakirdan/questcv/internal/platform/tui"
	"github.com/vovakirdan/questcv/internal/storage"
)

var (
	flagName string
	flagDev  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a local game session.

Controls:
  WASD/Arrows  - Move
  E/Enter      - Interact with the nearest target
  T            - Fast travel to the mission target
  M            - Mission log
  I            - Bag
  K            - Skill tree
  Q/Ctrl+C     - Save and quit

Examples:
  quest play
  quest play --name ada
  quest play --content ./my-world.yaml
  quest play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the welcome prompt)")
	playCmd.Flags().BoolVar(&flagDev, "dev", false, "Enable developer options for new players (teleporter on)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: quest play needs an interactive terminal")
		os.Exit(1)
	}

	c, err := content.Load(flagContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}

	g := sim.New(c.BuildWorld(seed), c.Machine(), c.Catalog(), sim.Config{Seed: seed})
	if flagDev {
		g.Dev = sim.DevOptions{DevOptionsUnlocked: true, TeleporterEnabled: true}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without persistence - the game still works
		store = nil
	}

	runErr := tui.Run(g, store, dialogue.Fallback{}, audio.Nop{}, cfg, flagName)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
