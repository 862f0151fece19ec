// Package stackops implements expression utilities built on the Stack
// container: balanced-bracket checking, string reversal and decimal to
// binary conversion.
package stackops

import (
	"strings"

	"github.com/c360/linearkit/container"
	"github.com/c360/linearkit/errors"
)

// closerFor maps each opening bracket to its required closer.
var closerFor = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}

// IsBalanced reports whether the brackets in the expression are balanced.
// Opening brackets are pushed; a closing bracket must match the most recent
// opener. Non-bracket characters are ignored. The empty expression is
// balanced.
func IsBalanced(expression string) bool {
	s := container.NewStack[rune]()

	for _, ch := range expression {
		switch ch {
		case '(', '[', '{':
			// Unbounded stack: push cannot fail
			_, _ = s.Push(ch)
		case ')', ']', '}':
			opener, err := s.Pop()
			if err != nil {
				return false
			}
			if closerFor[opener] != ch {
				return false
			}
		}
	}

	return s.IsEmpty()
}

// Reverse returns the character-reversed text, built by pushing every rune
// and popping them back into an accumulator.
func Reverse(text string) string {
	s := container.NewStack[rune]()
	for _, ch := range text {
		_, _ = s.Push(ch)
	}

	var b strings.Builder
	b.Grow(len(text))
	for {
		ch, err := s.Pop()
		if err != nil {
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// ToBinary converts a non-negative decimal number to its big-endian binary
// string by stacking remainders. Zero yields "0". Negative input returns
// ErrNegativeInput.
func ToBinary(n int) (string, error) {
	if n < 0 {
		return "", errors.ErrNegativeInput
	}
	if n == 0 {
		return "0", nil
	}

	s := container.NewStack[byte]()
	for n > 0 {
		_, _ = s.Push(byte('0' + n%2))
		n /= 2
	}

	var b strings.Builder
	for {
		digit, err := s.Pop()
		if err != nil {
			break
		}
		b.WriteByte(digit)
	}
	return b.String(), nil
}
