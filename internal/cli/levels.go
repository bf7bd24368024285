package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/questlog/internal/services/loader"
)

func newLevelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the built-in levels",
		Args:  cobra.NoArgs,
		RunE:  runLevels,
	}
}

func runLevels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tTASKS\tNEXT")
	fmt.Fprintln(w, "-----\t-----\t----")

	for _, name := range loader.Builtins() {
		level, err := loader.LoadBuiltin(name)
		if err != nil {
			return err
		}
		next := level.Next
		if next == "" {
			next = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", level.Name, len(level.Tasks), next)
	}

	return w.Flush()
}
