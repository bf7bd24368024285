// Package cli wires the questlog commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/questlog/internal/config"
)

// options holds the persistent flags of one command tree
type options struct {
	configPath string
	level      string
	difficulty int
}

// NewRootCommand builds the command tree. Playing is the default action.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "questlog",
		Short: "questlog - timed task orchestration in the terminal",
		Long: `questlog runs a level of timed tasks. Tasks are completed by hand,
time out when their reminder runs down, and every change is announced by a
sliding notification banner.`,
		RunE:          opts.runPlay,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a config file (default: ./"+config.FileName+")")
	root.PersistentFlags().StringVarP(&opts.level, "level", "l", "", "Built-in level name or path to a level file")
	root.PersistentFlags().IntVarP(&opts.difficulty, "difficulty", "d", -1, "Difficulty 0-2, scales task time")

	root.AddCommand(newPlayCommand(opts))
	root.AddCommand(newSimulateCommand(opts))
	root.AddCommand(newLevelsCommand())

	return root
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig reads the config file and applies command-line overrides
func (o *options) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.level != "" {
		cfg.Game.Level = o.level
	}
	if o.difficulty >= 0 {
		cfg.Game.Difficulty = o.difficulty
	}
	return cfg, nil
}

// newLogger builds a text logger at the configured level writing to w
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}
