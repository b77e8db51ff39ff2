// Package eval computes the value of a calculator equation.
//
// Equations are sequences of decimal numerals joined by the operators + and -,
// and also * when multiplication is enabled. Multiplication binds tighter than
// addition and subtraction; operators of the same tier apply left to right.
// A single leading - negates the first numeral. All arithmetic happens on int,
// and every step that would leave its range is reported instead of wrapping.
package eval

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	OK Outcome = iota
	Overflow
	Malformed
)

// Outcome classifies the result of an evaluation.
type Outcome int

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case Overflow:
		return "overflow"
	case Malformed:
		return "malformed"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// These are returned by Result.Err.
var (
	ErrOverflow  = errors.New("integer overflow")
	ErrMalformed = errors.New("malformed equation")
)

// Display texts of the error outcomes.
const (
	OverflowText  = "Overflow!"
	MalformedText = "???"
)

// Result is the outcome of evaluating an equation.
// Value is meaningful only when Outcome is OK.
type Result struct {
	Outcome Outcome
	Value   int
}

// String formats the result the way the calculator displays it.
func (r Result) String() string {
	switch r.Outcome {
	case OK:
		return strconv.Itoa(r.Value)
	case Overflow:
		return OverflowText
	default:
		return MalformedText
	}
}

// Err returns nil for OK results and the matching sentinel error otherwise.
func (r Result) Err() error {
	switch r.Outcome {
	case OK:
		return nil
	case Overflow:
		return ErrOverflow
	default:
		return ErrMalformed
	}
}

// Evaluator evaluates equations. The zero value supports only + and -.
type Evaluator struct {
	Multiplication bool
}

// Operators returns the operator characters recognized by e.
func (e Evaluator) Operators() string {
	if e.Multiplication {
		return "+-*"
	}
	return "+-"
}

// IsOperator reports whether c is an operator for e.
func (e Evaluator) IsOperator(c byte) bool {
	return strings.IndexByte(e.Operators(), c) >= 0
}

// Eval computes the value of eq. It never panics: input that breaks the
// equation grammar yields Malformed, and numerals that do not fit into an int
// or arithmetic that would leave its range yield Overflow.
func (e Evaluator) Eval(eq string) Result {
	neg, pairs := e.lex(eq)
	for _, p := range pairs {
		if p.num == "" {
			return Result{Outcome: Malformed}
		}
	}

	terms, ok := product(pairs)
	if !ok {
		return Result{Outcome: Overflow}
	}
	return sum(neg, terms)
}

// pair is an operand together with the operator preceding it.
type pair struct {
	op  byte // zero for the first operand
	num string
}

// term is a fully multiplied operand of the additive pass.
type term struct {
	op  byte
	val int
}

// lex strips the leading sign and splits eq into operator/operand pairs.
func (e Evaluator) lex(eq string) (neg bool, pairs []pair) {
	if strings.HasPrefix(eq, "-") {
		neg = true
		eq = eq[1:]
	}
	var (
		start = 0
		op    byte
	)
	for i := 0; i < len(eq); i++ {
		if e.IsOperator(eq[i]) {
			pairs = append(pairs, pair{op: op, num: eq[start:i]})
			op = eq[i]
			start = i + 1
		}
	}
	return neg, append(pairs, pair{op: op, num: eq[start:]})
}

// product parses the operands and collapses every run of multiplications
// into a single term.
func product(pairs []pair) ([]term, bool) {
	terms := make([]term, 0, len(pairs))
	for _, p := range pairs {
		x, err := strconv.ParseInt(p.num, 10, strconv.IntSize)
		if err != nil || x < 0 {
			return nil, false
		}
		v := int(x)
		if p.op != '*' {
			terms = append(terms, term{op: p.op, val: v})
			continue
		}
		// Operands are magnitudes here, so checking against MaxInt suffices.
		last := &terms[len(terms)-1]
		if v != 0 && last.val > math.MaxInt/v {
			return nil, false
		}
		last.val *= v
	}
	return terms, true
}

// sum folds the terms left to right.
func sum(neg bool, terms []term) Result {
	total := terms[0].val
	if neg {
		total = -total
	}
	for _, t := range terms[1:] {
		switch t.op {
		case '+':
			if math.MaxInt-t.val < total {
				return Result{Outcome: Overflow}
			}
			total += t.val
		case '-':
			if math.MinInt+t.val > total {
				return Result{Outcome: Overflow}
			}
			total -= t.val
		default:
			return Result{Outcome: Malformed}
		}
	}
	return Result{Outcome: OK, Value: total}
}
