package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/questlog/internal/app"
	"github.com/riordanpawley/questlog/internal/services/game"
)

func newPlayCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a level in the terminal UI",
		Args:  cobra.NoArgs,
		RunE:  opts.runPlay,
	}
}

func (o *options) runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(cfg, logOut)

	session := game.New(cfg, logger)
	if err := session.Load(cfg.Game.Level); err != nil {
		return err
	}
	logger.Info("starting", "level", cfg.Game.Level, "difficulty", cfg.Game.Difficulty)

	p := tea.NewProgram(app.New(cfg, session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
