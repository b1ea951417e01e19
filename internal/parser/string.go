package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

func satisfy(desc string, pred func(rune) bool) Parser[string] {
	return New(func(input string, index int) (State[string], error) {
		if index >= len(input) {
			return State[string]{}, &ParseError{Message: "unexpected end of input, wanted " + desc, Index: index}
		}
		r, size := utf8.DecodeRuneInString(input[index:])
		if !pred(r) {
			return State[string]{}, &ParseError{Message: fmt.Sprintf("wanted %s, got %q", desc, r), Index: index}
		}
		return State[string]{Index: index + size, Result: string(r)}, nil
	})
}

func joinRunes(parts []string) string {
	return strings.Join(parts, "")
}

// Character matches a single literal rune.
func Character(c rune) Parser[string] {
	return New(func(input string, index int) (State[string], error) {
		if index >= len(input) {
			return State[string]{}, &ParseError{Message: fmt.Sprintf("tried to match %q but hit end of input", c), Index: index}
		}
		r, size := utf8.DecodeRuneInString(input[index:])
		if r != c {
			return State[string]{}, &ParseError{Message: fmt.Sprintf("tried to match %q but got %q", c, r), Index: index}
		}
		return State[string]{Index: index + size, Result: string(r)}, nil
	})
}

// Literal matches an exact string.
func Literal(expected string) Parser[string] {
	return New(func(input string, index int) (State[string], error) {
		end := index + len(expected)
		if end > len(input) || input[index:end] != expected {
			return State[string]{}, &ParseError{Message: fmt.Sprintf("tried to match %q", expected), Index: index}
		}
		return State[string]{Index: end, Result: expected}, nil
	})
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// HexDigit matches a single ASCII hex digit.
func HexDigit() Parser[string] {
	return satisfy("hex digit", isHexDigit)
}

// Hexadecimal matches one or more hex digits and joins them.
func Hexadecimal() Parser[string] {
	return MapErr(Map(OneOrMore(HexDigit()), joinRunes), func(err error) error {
		return &ParseError{Message: "could not match one or more hex digits", Index: err.(*ParseError).Index}
	})
}

// Letter matches a single unicode letter.
func Letter() Parser[string] {
	return satisfy("letter", unicode.IsLetter)
}

// Alphabetic matches one or more letters and joins them.
func Alphabetic() Parser[string] {
	return MapErr(Map(OneOrMore(Letter()), joinRunes), func(err error) error {
		return &ParseError{Message: "could not match one or more letters", Index: err.(*ParseError).Index}
	})
}

func isInlineSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

// WhitespaceChar matches a single space or tab (not newline — newline is a
// statement separator, handled separately by the grammar).
func WhitespaceChar() Parser[string] {
	return satisfy("whitespace", isInlineSpace)
}

// Whitespace matches one or more inline whitespace characters.
func Whitespace() Parser[string] {
	return Map(OneOrMore(WhitespaceChar()), joinRunes)
}

// OptionalWhitespace matches zero or more inline whitespace characters.
func OptionalWhitespace() Parser[string] {
	return Map(ZeroOrMore(WhitespaceChar()), joinRunes)
}

// UpperOrLower tries word in all-lowercase then all-uppercase, and on
// success always yields word itself in its canonical case.
func UpperOrLower(word string) Parser[string] {
	alts := []Parser[string]{Literal(strings.ToLower(word)), Literal(strings.ToUpper(word))}
	return Map(OneOf(alts), func(string) string { return word })
}
