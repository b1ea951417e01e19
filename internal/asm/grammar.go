package asm

import (
	"strconv"
	"strings"

	"vm16/internal/isa"
	"vm16/internal/parser"
)

// RegisterP matches any of the named registers.
func RegisterP() parser.Parser[Node] {
	names := isa.RegisterNames()
	alts := make([]parser.Parser[string], len(names))
	for i, n := range names {
		alts[i] = parser.Literal(n)
	}
	return parser.Map(parser.OneOf(alts), func(name string) Node {
		return Register{Name: name}
	})
}

// HexLiteralP matches a $-prefixed 16-bit hex immediate.
func HexLiteralP() parser.Parser[Node] {
	return parser.Map(parser.Right(parser.Character('$'), parser.Hexadecimal()), func(hex string) Node {
		v, _ := strconv.ParseUint(hex, 16, 16)
		return HexLiteral{Value: uint16(v)}
	})
}

// HexLiteral8P matches a $-prefixed 8-bit hex immediate.
func HexLiteral8P() parser.Parser[Node] {
	return parser.Map(parser.Right(parser.Character('$'), parser.Hexadecimal()), func(hex string) Node {
		v, _ := strconv.ParseUint(hex, 16, 8)
		return HexLiteral8{Value: uint8(v)}
	})
}

// AddressP matches an &-prefixed absolute hex address.
func AddressP() parser.Parser[Node] {
	return parser.Map(parser.Right(parser.Character('&'), parser.Hexadecimal()), func(hex string) Node {
		v, _ := strconv.ParseUint(hex, 16, 16)
		return Address{Value: uint16(v)}
	})
}

// VariableP matches a !-prefixed label reference.
func VariableP() parser.Parser[Node] {
	return parser.Map(parser.Right(parser.Character('!'), parser.Alphabetic()), func(name string) Node {
		return Variable{Name: name}
	})
}

// LabelP matches a name: declaration.
func LabelP() parser.Parser[Node] {
	return parser.Map(parser.Left(parser.Alphabetic(), parser.Character(':')), func(name string) Node {
		return Label{Name: name}
	})
}

// OperatorP matches a single +, - or * token.
func OperatorP() parser.Parser[Node] {
	alts := []parser.Parser[string]{
		parser.Character('+'),
		parser.Character('-'),
		parser.Character('*'),
	}
	return parser.Map(parser.OneOf(alts), func(sym string) Node {
		switch sym {
		case "+":
			return Operator{Op: OpPlus}
		case "-":
			return Operator{Op: OpMinus}
		default:
			return Operator{Op: OpStar}
		}
	})
}

// hexOrExpr matches either a plain hex literal or a bracketed expression,
// for operand positions that accept arithmetic ("literal_or_expr" in the
// grammar).
func hexOrExpr() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{HexLiteralP(), SquareBracketExpressionP()})
}

// addressOrExpr matches either an absolute address or &-prefixed bracketed
// expression, for memory-operand positions.
func addressOrExpr() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		AddressP(),
		parser.Right(parser.Character('&'), SquareBracketExpressionP()),
	})
}

// commandP matches a mnemonic keyword (always lowercase in source) and
// discards it, since the caller already knows which instruction-table
// entry it is building.
func commandP(name string) parser.Parser[Node] {
	return parser.Map(parser.Literal(strings.ToLower(name)), func(string) Node {
		return Ignored{}
	})
}
