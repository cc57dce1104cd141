package keypad

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptyScript        = errors.New("empty key script")
	ErrUnterminatedKey    = errors.New("unterminated key name")
	ErrEmptyKeyName       = errors.New("empty key name")
	ErrUnexpectedBraceEnd = errors.New("unexpected '}'")
)

// Tokenize splits a key script into key names. Every character is a key on its own,
// {Name} spells a named key such as {Enter} or {Backspace}, and whitespace is skipped.
//
//	"12+3{Enter}" -> ["1", "2", "+", "3", "Enter"]
func Tokenize(script string) ([]string, error) {
	if strings.TrimSpace(script) == "" {
		return nil, ErrEmptyScript
	}

	var keys []string
	runes := []rune(script)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			continue
		case r == '{':
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			if j == len(runes) {
				return nil, fmt.Errorf("%w at position %d", ErrUnterminatedKey, i)
			}
			name := strings.TrimSpace(string(runes[i+1 : j]))
			if name == "" {
				return nil, fmt.Errorf("%w at position %d", ErrEmptyKeyName, i)
			}
			keys = append(keys, name)
			i = j
		case r == '}':
			return nil, fmt.Errorf("%w at position %d", ErrUnexpectedBraceEnd, i)
		default:
			keys = append(keys, string(r))
		}
	}

	if len(keys) == 0 {
		return nil, ErrEmptyScript
	}
	return keys, nil
}
