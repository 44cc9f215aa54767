package queens

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/constraint-foundry/winnow/pkg/winnow/solver"
)

const defaultBoardSize = 8

func NewQueensCommand() *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "queens [n]",
		Short: "Places n non-attacking queens on an n by n board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultBoardSize
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("board size must be a positive integer, got %q", args[0])
				}
				n = parsed
			}
			return solve(cmd.Context(), cmd.OutOrStdout(), n, engine)
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "backtracking", "solving engine to use (backtracking or sat)")
	return cmd
}

func solve(ctx context.Context, out io.Writer, n int, engine string) error {
	var options []solver.Option
	switch engine {
	case "backtracking":
	case "sat":
		options = append(options, solver.UseSATEngine())
	default:
		return fmt.Errorf("unknown engine %q: expected backtracking or sat", engine)
	}

	solution, err := solver.NewSolver(NewBoardSource(n)).Solve(ctx, options...)
	if err != nil {
		return err
	}
	if solution.Error() != nil {
		return fmt.Errorf("no placement exists for %d queens: %w", n, solution.Error())
	}

	fmt.Fprint(out, FormatBoard(n, solution.Assignment()))
	return nil
}
