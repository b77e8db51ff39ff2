package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"intcalc/internal/equation"
	"intcalc/internal/eval"
)

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Type each expression into a fresh calculator and evaluate it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed error
			for _, expr := range args {
				s := newSession(cmd.ErrOrStderr())
				for i := 0; i < len(expr); i++ {
					s.press(expr[i : i+1])
				}
				s.apply(equation.EvaluateToken)

				text := s.buf.Text()
				fmt.Fprintln(cmd.OutOrStdout(), text)
				if err := displayErr(text); err != nil && failed == nil {
					failed = fmt.Errorf("%s: %w", expr, err)
				}
			}
			if strict {
				return failed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if an expression overflows")
	return cmd
}

// displayErr maps an error marker shown on the display back to its error.
func displayErr(text string) error {
	switch text {
	case eval.OverflowText:
		return eval.ErrOverflow
	case eval.MalformedText:
		return eval.ErrMalformed
	default:
		return nil
	}
}
