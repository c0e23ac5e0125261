// snake runs headless games on the snake rules engine.
//
// Usage:
//
//	snake run                 - Play a game with a pilot and print the result
//	snake pilots              - List available pilots
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.snake, ./configs, embedded)
//	--rows, --cols     - Board size
//	--fps <rate>       - Moves per second (0 = unpaced)
//	--seed <value>     - RNG seed for reproducible games
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-core/internal/config"

	// Import pilots to register them
	_ "github.com/vovakirdan/snake-core/internal/pilot"
)

var (
	// Global flags
	flagConfig   string
	flagRows     int
	flagCols     int
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Headless Snake - run the snake rules engine from the terminal",
	Long: `Headless Snake drives the snake rules engine without a display.
A pilot supplies the turns, the engine moves once per tick, and the
outcome is logged and summarized.

Available commands:
  run      - Play one game and print the result
  pilots   - Show all available pilots

Examples:
  snake run
  snake run --pilot random --seed 42 --fps 0
  snake run --pilot script --script ./moves.yaml
  snake pilots`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagCols, "cols", 0, "Board columns (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", -1, "Moves per second, 0 = unpaced (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(pilotsCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = flagCols
	}
	if flags.Changed("fps") {
		cfg.Session.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Session.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("pilot") {
		cfg.Pilot.Name = flagPilot
	}
	if flags.Changed("script") {
		cfg.Pilot.Script = flagScript
	}
	if flags.Changed("max-ticks") {
		cfg.Session.MaxTicks = flagMaxTicks
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
