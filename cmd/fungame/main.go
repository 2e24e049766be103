// fungame is a terminal arcade game: a square falls under gravity and
// must fly through gaps in scrolling pipes.
//
// Usage:
//
//	fungame play              - Play interactively in the terminal
//	fungame serve             - Start SSH server for remote play
//	fungame rollout           - Run headless scripted episodes
//	fungame scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.fungame/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fungame",
	Short: "FunGame - fly a square through pipe gaps in your terminal",
	Long: `FunGame is a terminal arcade game with a deterministic simulation core.
The same rules drive interactive play, SSH sessions and headless
scripted runs.

Available commands:
  play     - Play interactively in the current terminal
  serve    - Start SSH server for remote play
  rollout  - Run headless episodes with a scripted policy
  scores   - View high scores

Examples:
  fungame play
  fungame play --seed 42
  fungame serve --ssh :2222
  fungame rollout --episodes 100 --policy chaser
  fungame scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fungame/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rolloutCmd)
	rootCmd.AddCommand(scoresCmd)
}
