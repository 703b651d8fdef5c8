// quest is a top-down exploration game that doubles as an interactive résumé.
//
// Usage:
//
//	quest play               - Play in the local terminal
//	quest serve              - Start SSH server for remote play
//	quest missions           - List the mission chain
//	quest progress [name]    - Show saved progress
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 30)
//	--seed <value>    - Set RNG seed for reproducible collectible layout
//	--db <path>       - Set saves database path (default: ~/.questcv/saves.db)
//	--content <path>  - Use a custom content YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagContentPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "QuestCV - an explorable résumé in your terminal",
	Long: `QuestCV is a top-down exploration game played in the terminal.
Walk a small world, talk to its residents, run missions, collect coins
and gems, and spend them on upgrades and skills.

Available commands:
  play      - Play in the local terminal
  serve     - Start SSH server for remote play
  missions  - List the mission chain
  progress  - Show saved progress

Examples:
  quest play
  quest play --name ada
  quest serve --ssh :2222
  quest progress ada`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.questcv/saves.db", "Path to saves database")
	rootCmd.PersistentFlags().StringVar(&flagContentPath, "content", "", "Path to custom content YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(progressCmd)
}
