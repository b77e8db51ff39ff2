package commands

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"intcalc/internal/equation"
)

var (
	noMul   bool
	verbose bool
	strict  bool
)

// Execute runs the root command with the process arguments.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "intcalc",
		Short:        "Integer calculator with a key-by-key equation buffer",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&noMul, "no-mul", false, "disable the multiplication key")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rejected key presses")

	root.AddCommand(pressCmd(), evalCmd(), replCmd())
	return root
}

// config returns the calculator configuration selected by the flags.
func config() equation.Config {
	cfg := equation.DefaultConfig
	cfg.Multiplication = !noMul
	return cfg
}

// session is a buffer that logs rejected tokens in verbose mode.
type session struct {
	buf *equation.Buffer
	log *log.Logger
}

func newSession(stderr io.Writer) *session {
	out := io.Discard
	if verbose {
		out = stderr
	}
	return &session{
		buf: equation.New(config()),
		log: log.New(out, "intcalc: ", 0),
	}
}

func (s *session) apply(tok equation.Token) bool {
	before := s.buf.Text()
	if !s.buf.Apply(tok) {
		s.log.Printf("key %q rejected at %q", tok, before)
		return false
	}
	return true
}

// press applies the key with the given label, logging unknown labels.
func (s *session) press(label string) bool {
	tok, ok := equation.ParseToken(label)
	if !ok {
		s.log.Printf("unknown key %q", label)
		return false
	}
	return s.apply(tok)
}
