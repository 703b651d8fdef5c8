package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/questcv/internal/content"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List the mission chain",
	Long:  `Shows every mission in the loaded content, in chain order.`,
	Run:   runMissions,
}

func runMissions(_ *cobra.Command, _ []string) {
	c, err := content.Load(flagContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	if len(c.Missions) == 0 {
		fmt.Println("No missions defined.")
		return
	}

	fmt.Println("Mission chain:")
	fmt.Println()
	for _, m := range c.Missions {
		fmt.Printf("  %2d. %-24s %d steps", m.ID, m.Title, len(m.Steps))
		if m.CoinReward > 0 || m.XPReward > 0 {
			fmt.Printf("  (%d coins, %d xp", m.CoinReward, m.XPReward)
			if m.GemReward > 0 {
				fmt.Printf(", %d %s gem", m.GemReward, m.GemColor)
			}
			fmt.Print(")")
		}
		fmt.Println()
	}
	fmt.Println()
	fmt.Println("Run 'quest play' to start the chain.")
}
