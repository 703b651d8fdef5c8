package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress [name]",
	Short: "Show saved progress",
	Long: `Without a name, lists every player with a save.
With a name, shows that player's saved progress.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runProgress,
}

func runProgress(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		names, err := store.Players()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing players: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("No saves yet. Run 'quest play' to start.")
			return
		}
		fmt.Println("Players with saves (most recent first):")
		for _, n := range names {
			fmt.Printf("  %s\n", n)
		}
		fmt.Println()
		fmt.Println("Run 'quest progress <name>' for details.")
		return
	}

	name := args[0]
	save, found, err := store.LoadGame(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading save for %s: %v\n", name, err)
		os.Exit(1)
	}
	if !found {
		fmt.Printf("No save found for %q.\n", name)
		return
	}

	gems := 0
	for _, n := range save.Player.Gems {
		gems += n
	}
	completed := 0
	for _, m := range save.Missions {
		if m.Status == string(mission.StatusCompleted) {
			completed++
		}
	}

	fmt.Printf("Progress for %s:\n", name)
	fmt.Printf("  Level:     %d (%.0f xp)\n", save.Player.Level, save.Player.XP)
	fmt.Printf("  Coins:     %d\n", save.Player.Coins)
	fmt.Printf("  Gems:      %d\n", gems)
	fmt.Printf("  Missions:  %d/%d completed\n", completed, len(save.Missions))
	fmt.Printf("  Upgrades:  %d owned\n", len(save.Player.Upgrades))
	fmt.Printf("  Skills:    %d unlocked\n", len(save.Player.Skills))
}
