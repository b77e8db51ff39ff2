package equation

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestBufferInput(t *testing.T) {
	b := New(DefaultConfig)
	check(t, b, "0")
	// leading zero is replaced
	b.Digit('0')
	check(t, b, "0")
	b.Digit('1')
	b.Digit('2')
	check(t, b, "12")
	// operators
	b.Operator('+')
	check(t, b, "12+")
	b.Operator('-')
	check(t, b, "12+")
	b.Digit('0')
	b.Digit('3')
	check(t, b, "12+03")
	b.Operator('*')
	b.Digit('2')
	check(t, b, "12+03*2")
	b.Evaluate()
	check(t, b, "18")
}

func TestBufferBackspace(t *testing.T) {
	b := New(DefaultConfig)
	if b.Backspace() {
		t.Fatal("backspace accepted on empty equation")
	}
	check(t, b, "0")
	b.Digit('7')
	b.Backspace()
	check(t, b, "0")
	b.Digit('4')
	b.Digit('2')
	b.Operator('-')
	b.Backspace()
	check(t, b, "42")
	b.Backspace()
	check(t, b, "4")
}

func TestBufferClear(t *testing.T) {
	b := New(DefaultConfig)
	b.Clear()
	check(t, b, "0")
	b.Press("9")
	b.Press("*")
	b.Clear()
	check(t, b, "0")
}

func TestBufferEvaluate(t *testing.T) {
	b := New(DefaultConfig)
	for _, key := range []string{"1", "0", "0", "-", "2", "5", "0"} {
		b.Press(key)
	}
	if !b.Evaluate() {
		t.Fatal("evaluate rejected")
	}
	check(t, b, "-150")
	// the result can be edited further
	b.Press("+")
	b.Press("5")
	b.Press("=")
	check(t, b, "-145")
	// trailing operator
	b.Press("+")
	if b.Evaluate() {
		t.Fatal("evaluate accepted with trailing operator")
	}
	check(t, b, "-145+")
}

func TestBufferNegativeResultRubout(t *testing.T) {
	b := New(Config{})
	b.Press("1")
	b.Press("-")
	b.Press("3")
	b.Press("=")
	check(t, b, "-2")
	b.Backspace()
	check(t, b, "-")
	if b.Evaluate() {
		t.Fatal("evaluate accepted for lone minus")
	}
	b.Press("4")
	b.Press("=")
	check(t, b, "-4")
	b.Backspace()
	b.Backspace()
	check(t, b, "0")
}

func TestBufferOverflow(t *testing.T) {
	b := New(DefaultConfig)
	for _, c := range []byte("9223372036854775807+1") {
		b.Apply(tokenFor(c))
	}
	b.Evaluate()
	check(t, b, "Overflow!")
	// resume after an error
	b.Backspace()
	check(t, b, "Overflow")
	b.Clear()
	b.Digit('3')
	check(t, b, "3")
}

func TestBufferNoMultiplication(t *testing.T) {
	b := New(Config{})
	b.Press("6")
	if b.Press("*") {
		t.Fatal("'*' accepted without multiplication")
	}
	b.Press("7")
	check(t, b, "67")
}

func TestBufferUnknownKeys(t *testing.T) {
	b := New(DefaultConfig)
	for _, label := range []string{"", "x", "/", "12", "ac"} {
		if b.Press(label) {
			t.Errorf("label %q accepted", label)
		}
	}
	if b.Digit('a') {
		t.Error("non-digit accepted as digit")
	}
	check(t, b, "0")
}

func TestParseToken(t *testing.T) {
	for _, row := range Keypad(DefaultConfig) {
		for _, label := range row {
			if label == "" {
				continue
			}
			tok, ok := ParseToken(label)
			if !ok {
				t.Fatalf("keypad label %q not parsed", label)
			}
			if tok.String() != label {
				t.Errorf("token %v has label %q, want %q", tok.Kind, tok.String(), label)
			}
		}
	}
}

func TestKeypadWithoutMultiplication(t *testing.T) {
	for _, row := range Keypad(Config{}) {
		for _, label := range row {
			if label == "*" {
				t.Fatal("keypad has '*' without multiplication")
			}
		}
	}
}

func check(t *testing.T, b *Buffer, text string) {
	t.Helper()
	if b.Text() != text {
		t.Fatalf("wrong text\n  got: %q\n want: %q\nstate: %+v", b.Text(), text, *b)
	}
}

// tokenFor maps an equation character to the key producing it.
func tokenFor(c byte) Token {
	if c >= '0' && c <= '9' {
		return DigitToken(c)
	}
	return OperatorToken(c)
}

func drawToken(cfg Config) *rapid.Generator[Token] {
	ops := "+-"
	if cfg.Multiplication {
		ops += "*"
	}
	return rapid.OneOf(
		rapid.Map(rapid.ByteRange('0', '9'), DigitToken),
		rapid.Map(rapid.SampledFrom([]byte(ops)), OperatorToken),
		rapid.Just(BackspaceToken),
		rapid.Just(ClearToken),
		rapid.Just(EvaluateToken),
	)
}

func TestDigitSequence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		digits := rapid.StringMatching(`[1-9][0-9]{0,30}`).Draw(rt, "digits")
		b := New(DefaultConfig)
		for i := range digits {
			b.Digit(digits[i])
		}
		if b.Text() != digits {
			rt.Fatalf("got %q, want %q", b.Text(), digits)
		}
	})
}

func TestBackspaceSingleChar(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := rapid.ByteRange('1', '9').Draw(rt, "d")
		b := New(DefaultConfig)
		b.Digit(d)
		if !b.Backspace() {
			rt.Fatal("backspace rejected")
		}
		if b.Text() != Empty {
			rt.Fatalf("got %q after backspace", b.Text())
		}
	})
}

func TestNoAdjacentOperators(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := Config{Multiplication: rapid.Bool().Draw(rt, "mul")}
		ev := cfg.evaluator()
		toks := rapid.SliceOf(drawToken(cfg)).Draw(rt, "tokens")
		b := New(cfg)
		for _, tok := range toks {
			b.Apply(tok)
			text := b.Text()
			if text == "" {
				rt.Fatal("empty equation")
			}
			for i := 1; i < len(text); i++ {
				if ev.IsOperator(text[i-1]) && ev.IsOperator(text[i]) {
					rt.Fatalf("adjacent operators in %q", text)
				}
			}
			if strings.ContainsAny(text[:1], "+*") {
				rt.Fatalf("equation %q starts with an operator", text)
			}
		}
	})
}

func TestEvaluateTrailingOperator(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := DefaultConfig
		toks := rapid.SliceOf(drawToken(cfg)).Draw(rt, "tokens")
		op := rapid.SampledFrom([]byte("+-*")).Draw(rt, "op")
		b := New(cfg)
		for _, tok := range toks {
			b.Apply(tok)
		}
		b.Operator(op)
		before := b.Text()
		if b.Evaluate() || b.Text() != before {
			rt.Fatalf("evaluate changed %q to %q", before, b.Text())
		}
	})
}

func TestDeterminism(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := Config{Multiplication: rapid.Bool().Draw(rt, "mul")}
		toks := rapid.SliceOf(drawToken(cfg)).Draw(rt, "tokens")
		b1, b2 := New(cfg), New(cfg)
		eq := Empty
		for _, tok := range toks {
			a1 := b1.Apply(tok)
			a2 := b2.Apply(tok)
			next, a3 := Step(cfg, eq, tok)
			if a1 != a2 || a1 != a3 {
				rt.Fatalf("token %v accepted inconsistently", tok)
			}
			eq = next
		}
		if b1.Text() != b2.Text() || b1.Text() != eq {
			rt.Fatalf("diverged: %q, %q, %q", b1.Text(), b2.Text(), eq)
		}
	})
}
