package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-core/internal/config"
	"github.com/vovakirdan/snake-core/internal/logging"
	"github.com/vovakirdan/snake-core/internal/pilot"
	"github.com/vovakirdan/snake-core/internal/registry"
	"github.com/vovakirdan/snake-core/internal/session"
)

var (
	flagPilot    string
	flagScript   string
	flagMaxTicks int
	flagDump     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play one headless game",
	Long: `Play one game with the selected pilot and print the result.

The game ends when the snake crashes, the tick limit is reached, or
the process is interrupted (Ctrl+C).

Pilots:
  greedy  - Chases food, avoids crashing on the next tick
  random  - Turns at random
  idle    - Never turns
  script  - Replays a YAML turn schedule (--script)

Examples:
  snake run
  snake run --pilot random --seed 42
  snake run --pilot script --script ./moves.yaml --fps 0
  snake run --max-ticks 500 --dump`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagPilot, "pilot", "", "Pilot ID (see 'snake pilots')")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Path to a turn schedule for the script pilot")
	runCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (0 = no limit)")
	runCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the final board")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log, "snake")
	if err != nil {
		return err
	}

	p, err := newPilot(cfg.Pilot)
	if err != nil {
		return err
	}

	runner, err := session.New(cfg.Runtime(), p, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, runErr := runner.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return fmt.Errorf("running game: %w", runErr)
	}

	printResult(res, p.Title())
	if flagDump {
		fmt.Println()
		fmt.Print(runner.DebugState())
	}
	return nil
}

// newPilot creates the configured pilot and loads its script if needed.
func newPilot(cfg config.PilotConfig) (registry.Pilot, error) {
	if !registry.Exists(cfg.Name) {
		return nil, fmt.Errorf("unknown pilot %q (run 'snake pilots' to see available pilots)", cfg.Name)
	}
	p, err := registry.Create(cfg.Name)
	if err != nil {
		return nil, err
	}

	if scripted, ok := p.(pilot.Scripted); ok {
		if cfg.Script == "" {
			return nil, fmt.Errorf("pilot %q needs a script (--script or pilot.script)", cfg.Name)
		}
		script, err := config.LoadScript(cfg.Script)
		if err != nil {
			return nil, err
		}
		scripted.LoadScript(script)
	}
	return p, nil
}

func printResult(res session.Result, pilotTitle string) {
	fmt.Printf("Result - %s\n", pilotTitle)
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Reason", res.Reason)
	fmt.Printf("  %-8s  %d\n", "Ticks", res.Ticks)
	fmt.Printf("  %-8s  %d\n", "Score", res.Score)
	fmt.Printf("  %-8s  %d\n", "Length", res.Length)
	fmt.Printf("  %-8s  %d\n", "Seed", res.Seed)
}
