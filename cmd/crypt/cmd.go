package crypt

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	internal "github.com/constraint-foundry/winnow/internal/solver"
	"github.com/constraint-foundry/winnow/pkg/winnow/solver"
)

func NewCryptCommand() *cobra.Command {
	var engine string
	var trace bool

	cmd := &cobra.Command{
		Use:   "crypt <puzzle>",
		Short: "Solves a cryptarithmetic puzzle",
		Long: `Solves a digit-substitution puzzle of the form "SEND + MORE = MONEY":
every letter stands for one decimal digit, distinct letters stand for
distinct digits, leading letters are non-zero, and the addition must
hold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd.Context(), cmd.OutOrStdout(), args[0], engine, trace)
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "backtracking", "solving engine to use (backtracking or sat)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every search position visited to stderr")
	return cmd
}

func solve(ctx context.Context, out io.Writer, text string, engine string, trace bool) error {
	puzzle, err := ParsePuzzle(text)
	if err != nil {
		return err
	}

	var options []solver.Option
	switch engine {
	case "backtracking":
	case "sat":
		options = append(options, solver.UseSATEngine())
	default:
		return fmt.Errorf("unknown engine %q: expected backtracking or sat", engine)
	}
	if trace {
		options = append(options, solver.WithTracer(internal.LoggingTracer{Writer: os.Stderr}))
	}

	solution, err := solver.NewSolver(NewPuzzleSource(puzzle)).Solve(ctx, options...)
	if err != nil {
		return err
	}
	if solution.Error() != nil {
		return fmt.Errorf("%s has no solution: %w", puzzle, solution.Error())
	}

	fmt.Fprintln(out, FormatSolution(puzzle, solution.Assignment()))
	if nodes := solution.Stats().Nodes; nodes > 0 {
		fmt.Fprintf(out, "visited %d search positions\n", nodes)
	}
	return nil
}
