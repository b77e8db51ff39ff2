package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press KEY...",
		Short: "Press keys in order and print the display",
		Long: `Press applies calculator keys to a fresh equation, in order, and prints
what the display shows afterwards. Keys are button labels: 0-9, +, -, *,
"<-" (backspace), AC (clear) and = (evaluate).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd.ErrOrStderr())
			for _, key := range args {
				s.press(key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.buf.Text())
			return nil
		},
	}
	return cmd
}
