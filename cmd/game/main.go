// cmd/game/main.go
// arena is a single-hero isometric wave survival game.
//
// Usage:
//
//	arena                 - Play (same as arena play)
//	arena play            - Play with the flags below
//	arena records         - Show the best finished runs
//
// Global flags:
//
//	--config <path>   - YAML tuning overrides
//	--seed <value>    - RNG seed for a reproducible run
//	--db <path>       - Records database (default: ~/.arena/records.db)
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-iso-arena/internal/config"
	"go-iso-arena/internal/storage"
)

var (
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Iso Arena - survive endless waves with one hero",
	Long: `Iso Arena is an isometric action game. Walk the island, cut down
minions and beat the boss every wave brings.

Examples:
  arena
  arena play --seed 42 --wave 10
  arena play --autoplay --mute
  arena records`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML tuning overrides")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Records database path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadTuning reads the tuning and builds the logger at the configured level.
func loadTuning() (config.Tuning, *log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	t, err := config.Load(flagConfig)
	if err != nil {
		return t, logger, err
	}
	level := t.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return t, logger, fmt.Errorf("bad log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}
	return t, logger, nil
}
