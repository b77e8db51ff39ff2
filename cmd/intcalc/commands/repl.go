package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"intcalc/internal/equation"
)

// Line mode shortcuts for the keys without a single-character label.
const (
	clearKey     = 'c'
	backspaceKey = 'b'
)

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read key presses from stdin, one line at a time",
		Long: `Repl keeps one calculator session. Every input line is a sequence of keys:
digits, operators, = to evaluate, b for backspace and c to clear. Spaces
are ignored. The display is printed after each line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd.ErrOrStderr())
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				for _, c := range []byte(sc.Text()) {
					switch c {
					case ' ', '\t':
					case clearKey:
						s.apply(equation.ClearToken)
					case backspaceKey:
						s.apply(equation.BackspaceToken)
					default:
						s.press(string(c))
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), s.buf.Text())
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		},
	}
	return cmd
}
