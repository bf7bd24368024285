package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/questlog/internal/services/game"
	"github.com/riordanpawley/questlog/internal/services/loader"
)

func newSimulateCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a level headless and print every event",
		Long: `simulate advances a level in fixed steps without a terminal UI.
Completions are scheduled with --complete id@time, for example:

  questlog simulate --level level1 --complete 1@2s --complete 2@40s`,
		Args: cobra.NoArgs,
		RunE: opts.runSimulate,
	}

	cmd.Flags().Duration("dt", 100*time.Millisecond, "Simulated frame length")
	cmd.Flags().Duration("duration", 2*time.Minute, "Upper bound on simulated time")
	cmd.Flags().StringArray("complete", nil, "Complete a task at a time, as id@duration (repeatable)")
	cmd.Flags().Bool("keep-running", false, "Keep simulating until --duration after every task finished")

	return cmd
}

func (o *options) runSimulate(cmd *cobra.Command, args []string) error {
	step, _ := cmd.Flags().GetDuration("dt")
	duration, _ := cmd.Flags().GetDuration("duration")
	raw, _ := cmd.Flags().GetStringArray("complete")
	keepRunning, _ := cmd.Flags().GetBool("keep-running")

	if step <= 0 {
		return fmt.Errorf("--dt must be positive, got %s", step)
	}

	completions := make([]game.Completion, 0, len(raw))
	for _, s := range raw {
		c, err := game.ParseCompletion(s)
		if err != nil {
			return err
		}
		completions = append(completions, c)
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	level, err := loader.Load(cfg.Game.Level)
	if err != nil {
		return err
	}

	session := game.New(cfg, newLogger(cfg, cmd.ErrOrStderr()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level %s, difficulty %d, session %s\n\n", level.Name, cfg.Game.Difficulty, session.ID)

	result := game.Simulate(session, level, game.SimOptions{
		Step:        step,
		Duration:    duration,
		Completions: completions,
		KeepRunning: keepRunning,
	}, func(e game.Event) {
		fmt.Fprintln(out, e.String())
	})

	fmt.Fprintf(out, "\n%s\n", result.Summary())
	return nil
}
