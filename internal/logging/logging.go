// Package logging builds the host logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-core/internal/config"
)

// New creates a logger writing to w. The "auto" format picks styled text
// for terminals and logfmt otherwise.
func New(w io.Writer, cfg config.LogConfig, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	formatter, err := formatterFor(w, cfg.Format)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
		Formatter:       formatter,
	})
	if formatter == log.TextFormatter {
		logger.SetStyles(styles())
	}
	return logger, nil
}

func formatterFor(w io.Writer, format string) (log.Formatter, error) {
	switch format {
	case "", "auto":
		if isTerminal(w) {
			return log.TextFormatter, nil
		}
		return log.LogfmtFormatter, nil
	case "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return 0, fmt.Errorf("unknown log format %q", format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styles highlights the game keys in text output.
func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Keys["score"] = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	s.Values["score"] = lipgloss.NewStyle().Bold(true)
	s.Keys["reason"] = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	s.Keys["tick"] = lipgloss.NewStyle().Faint(true)
	return s
}
