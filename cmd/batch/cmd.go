package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constraint-foundry/winnow/pkg/winnow/solver"
)

func NewBatchCommand() *cobra.Command {
	var engine string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <puzzle>...",
		Short: "Solves a batch of cryptarithmetic puzzles concurrently",
		Long: `Solves several cryptarithmetic puzzles at once, fanning them out over a
pool of solve workers. Repeated puzzles are answered from a result
cache instead of being searched again.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var options []solver.Option
			switch engine {
			case "backtracking":
			case "sat":
				options = append(options, solver.UseSATEngine())
			default:
				return fmt.Errorf("unknown engine %q: expected backtracking or sat", engine)
			}

			results, err := Run(cmd.Context(), args, workers, options...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, result := range results {
				switch {
				case result.Err != nil:
					fmt.Fprintf(out, "%s: %s\n", result.Puzzle, result.Err)
				case result.Cached:
					fmt.Fprintf(out, "%s (cached)\n", result.Answer)
				default:
					fmt.Fprintf(out, "%s\n", result.Answer)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "backtracking", "solving engine to use (backtracking or sat)")
	cmd.Flags().IntVar(&workers, "workers", 4, "number of concurrent solve workers")
	return cmd
}
