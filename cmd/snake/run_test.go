package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-core/internal/config"
)

func TestNewPilot(t *testing.T) {
	script := filepath.Join(t.TempDir(), "moves.yaml")
	if err := os.WriteFile(script, []byte("steps:\n  - tick: 0\n    turns: [up]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cfg     config.PilotConfig
		wantErr string
	}{
		{"greedy", config.PilotConfig{Name: "greedy"}, ""},
		{"script", config.PilotConfig{Name: "script", Script: script}, ""},
		{"unknown", config.PilotConfig{Name: "wizard"}, "unknown pilot"},
		{"script without file", config.PilotConfig{Name: "script"}, "needs a script"},
		{"missing script", config.PilotConfig{Name: "script", Script: script + ".nope"}, "failed to read script"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := newPilot(tc.cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("newPilot() failed: %v", err)
				}
				if p.ID() != tc.cfg.Name {
					t.Errorf("ID() = %q, expected %q", p.ID(), tc.cfg.Name)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("newPilot() error = %v, expected %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("board:\n  rows: 9\n  cols: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := runCmd
	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })
	if err := cmd.ParseFlags([]string{"--cols", "12", "--fps", "0", "--pilot", "idle"}); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Board.Rows != 9 || cfg.Board.Cols != 12 {
		t.Errorf("board = %dx%d, expected 9x12", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Session.TickRate != 0 || cfg.Pilot.Name != "idle" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
