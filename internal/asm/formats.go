package asm

import (
	"vm16/internal/isa"
	"vm16/internal/parser"
)

// instructionP builds the parser for one instruction form: the mnemonic
// keyword followed by its operands, interspersed with mandatory whitespace.
// The command's own Ignored result is dropped before the Instruction node
// is built.
func instructionP(name string, d isa.Descriptor, operands ...parser.Parser[Node]) parser.Parser[Node] {
	parts := append([]parser.Parser[Node]{commandP(name)}, operands...)
	return parser.Map(parser.Interspersed(parser.Whitespace(), parts), func(nodes []Node) Node {
		return Instruction{Descriptor: d, Args: nodes[1:]}
	})
}

func litReg(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, hexOrExpr(), RegisterP())
}

func regLit(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, RegisterP(), hexOrExpr())
}

func regReg(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, RegisterP(), RegisterP())
}

func memReg(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, addressOrExpr(), RegisterP())
}

func regMem(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, RegisterP(), addressOrExpr())
}

func litMem(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, hexOrExpr(), addressOrExpr())
}

func regLit8(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, RegisterP(), HexLiteral8P())
}

func regPtrReg(name string, d isa.Descriptor) parser.Parser[Node] {
	ptrReg := parser.Right(parser.Character('&'), RegisterP())
	return instructionP(name, d, ptrReg, RegisterP())
}

func litOffReg(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, hexOrExpr(), RegisterP(), RegisterP())
}

func lit(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, hexOrExpr())
}

func reg(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d, RegisterP())
}

func noArg(name string, d isa.Descriptor) parser.Parser[Node] {
	return instructionP(name, d)
}
