// Package equation maintains the equation shown by the calculator.
//
// The equation is edited one key press at a time. Edits that would make it
// syntactically invalid are ignored, so the equation is always displayable and
// is only handed to the evaluator when it is complete.
package equation

import "intcalc/internal/eval"

// Empty is the equation of a cleared calculator.
const Empty = "0"

// Config selects the calculator variant.
type Config struct {
	// Multiplication enables the '*' operator and its precedence tier.
	Multiplication bool
}

// DefaultConfig is the four-function keypad.
var DefaultConfig = Config{Multiplication: true}

func (cfg Config) evaluator() eval.Evaluator {
	return eval.Evaluator{Multiplication: cfg.Multiplication}
}

// Step applies tok to the equation eq and returns the new equation.
// accepted is false if tok was rejected, in which case next == eq.
func Step(cfg Config, eq string, tok Token) (next string, accepted bool) {
	ev := cfg.evaluator()
	endsInOp := eq != "" && ev.IsOperator(eq[len(eq)-1])

	switch tok.Kind {
	case Digit:
		if tok.Char < '0' || tok.Char > '9' {
			return eq, false
		}
		if eq == Empty || eq == "" {
			return string(tok.Char), true
		}
		return eq + string(tok.Char), true

	case Operator:
		// Operators cannot be added consecutively.
		if !ev.IsOperator(tok.Char) || endsInOp {
			return eq, false
		}
		return eq + string(tok.Char), true

	case Backspace:
		switch {
		case eq == Empty:
			return eq, false
		case len(eq) <= 1:
			return Empty, true
		default:
			return eq[:len(eq)-1], true
		}

	case Clear:
		return Empty, true

	case Evaluate:
		if endsInOp {
			return eq, false
		}
		return ev.Eval(eq).String(), true

	default:
		return eq, false
	}
}

// Buffer holds the equation of one calculator session.
// It is not safe for concurrent use.
type Buffer struct {
	cfg  Config
	text string
}

// New creates a buffer holding the empty equation.
func New(cfg Config) *Buffer {
	return &Buffer{cfg: cfg, text: Empty}
}

// Config returns the configuration of b.
func (b *Buffer) Config() Config {
	return b.cfg
}

// Text returns the current equation, i.e. what the display shows.
func (b *Buffer) Text() string {
	if b.text == "" {
		return Empty
	}
	return b.text
}

// Apply processes a key press. It reports whether the token was accepted.
func (b *Buffer) Apply(tok Token) bool {
	next, ok := Step(b.cfg, b.Text(), tok)
	b.text = next
	return ok
}

// Digit appends digit d.
func (b *Buffer) Digit(d byte) bool {
	return b.Apply(Token{Kind: Digit, Char: d})
}

// Operator appends operator op.
func (b *Buffer) Operator(op byte) bool {
	return b.Apply(OperatorToken(op))
}

// Backspace removes the last character.
func (b *Buffer) Backspace() bool {
	return b.Apply(BackspaceToken)
}

// Clear resets the equation.
func (b *Buffer) Clear() {
	b.Apply(ClearToken)
}

// Evaluate replaces the equation by its value.
func (b *Buffer) Evaluate() bool {
	return b.Apply(EvaluateToken)
}

// Press applies the key with the given button label.
// Unknown labels are rejected.
func (b *Buffer) Press(label string) bool {
	tok, ok := ParseToken(label)
	if !ok {
		return false
	}
	return b.Apply(tok)
}
