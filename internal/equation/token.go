package equation

import "fmt"

const (
	Digit Kind = iota
	Operator
	Backspace
	Clear
	Evaluate
)

// Kind is the type of an input token.
type Kind int

func (k Kind) String() string {
	switch k {
	case Digit:
		return "digit"
	case Operator:
		return "operator"
	case Backspace:
		return "backspace"
	case Clear:
		return "clear"
	case Evaluate:
		return "evaluate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Button labels of the non-character keys.
const (
	BackspaceLabel = "<-"
	ClearLabel     = "AC"
	EvaluateLabel  = "="
)

// Token is a single key press. Char holds the digit or operator character
// for Digit and Operator tokens and is zero otherwise.
type Token struct {
	Kind Kind
	Char byte
}

var (
	BackspaceToken = Token{Kind: Backspace}
	ClearToken     = Token{Kind: Clear}
	EvaluateToken  = Token{Kind: Evaluate}
)

// DigitToken returns the token for digit d, which must be in '0'..'9'.
func DigitToken(d byte) Token {
	if d < '0' || d > '9' {
		panic(fmt.Sprintf("bad digit %q", d))
	}
	return Token{Kind: Digit, Char: d}
}

// OperatorToken returns the token for operator op.
func OperatorToken(op byte) Token {
	return Token{Kind: Operator, Char: op}
}

// String returns the button label of the token.
func (t Token) String() string {
	switch t.Kind {
	case Digit, Operator:
		return string(t.Char)
	case Backspace:
		return BackspaceLabel
	case Clear:
		return ClearLabel
	case Evaluate:
		return EvaluateLabel
	default:
		return t.Kind.String()
	}
}

// ParseToken maps a button label to its token.
func ParseToken(label string) (Token, bool) {
	switch label {
	case BackspaceLabel:
		return BackspaceToken, true
	case ClearLabel:
		return ClearToken, true
	case EvaluateLabel:
		return EvaluateToken, true
	}
	if len(label) != 1 {
		return Token{}, false
	}
	switch c := label[0]; {
	case c >= '0' && c <= '9':
		return DigitToken(c), true
	case c == '+', c == '-', c == '*':
		return OperatorToken(c), true
	default:
		return Token{}, false
	}
}

// Keypad returns the button labels in the order they are laid out, row by row.
// Empty labels are gaps in the grid.
func Keypad(cfg Config) [][]string {
	mul := ""
	if cfg.Multiplication {
		mul = "*"
	}
	return [][]string{
		{"", "", "", ClearLabel},
		{"7", "8", "9", ""},
		{"4", "5", "6", mul},
		{"1", "2", "3", "-"},
		{"0", BackspaceLabel, EvaluateLabel, "+"},
	}
}
