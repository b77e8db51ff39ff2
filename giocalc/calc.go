package main

import (
	"gioui.org/io/key"

	"intcalc/internal/equation"
)

// keyToken translates a key press into a calculator token.
func keyToken(e key.Event) (equation.Token, bool) {
	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return equation.DigitToken(e.Name[0]), true
	case "+", "-", "*":
		return equation.OperatorToken(e.Name[0]), true
	case "=", key.NameEnter, key.NameReturn:
		return equation.EvaluateToken, true
	case key.NameDeleteBackward, key.NameDeleteForward:
		return equation.BackspaceToken, true
	case key.NameEscape:
		return equation.ClearToken, true
	default:
		return equation.Token{}, false
	}
}

// paste replays text as key presses. Characters that are not keys are skipped.
// It returns the number of accepted tokens.
func paste(b *equation.Buffer, text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		tok, ok := equation.ParseToken(text[i : i+1])
		if ok && b.Apply(tok) {
			n++
		}
	}
	return n
}
