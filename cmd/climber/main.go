// climber is a terminal climbing game: jump between procedurally generated
// platforms and get as high as you can before you fall.
//
// Usage:
//
//	climber play             - Play in the current terminal
//	climber serve            - Start SSH server for remote play
//	climber scores           - Show high scores and best climbs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.climber/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-climber/internal/games/climber"
)

// gameID is the registry ID of the climbing game.
const gameID = "climber"

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
	Use:   "climber",
	Short: "Frog Climber - An endless climbing game for your terminal",
	Long: `Frog Climber is a terminal game about climbing an endless tower of
platforms. Conveyors push you around, crumbling platforms give way under
your feet, and the occasional spike field wants you to miss.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and best climbs

Examples:
  climber play
  climber play --difficulty hard
  climber serve --ssh :2222
  climber scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climber/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
