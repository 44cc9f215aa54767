package root

import (
	"github.com/spf13/cobra"

	"github.com/constraint-foundry/winnow/cmd/batch"
	"github.com/constraint-foundry/winnow/cmd/crypt"
	"github.com/constraint-foundry/winnow/cmd/queens"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "winnow",
		Short: "Winnow is a finite-domain constraint satisfaction solver",
		Long: `A finite-domain constraint satisfaction solver written in Go.
Problems are declared as variables, candidate-value domains, and unary or
binary constraints; the engine finds one satisfying assignment or proves
that none exists.`,
	}

	// add sub-commands
	rootCmd.AddCommand(crypt.NewCryptCommand())
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(batch.NewBatchCommand())

	return rootCmd
}
