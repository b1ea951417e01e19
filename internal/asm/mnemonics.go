package asm

import (
	"vm16/internal/isa"
	"vm16/internal/parser"
)

func desc(opcode byte) isa.Descriptor {
	d, ok := isa.Lookup(opcode)
	if !ok {
		panic("isa table missing descriptor for a Go-side opcode constant")
	}
	return d
}

// Per-mnemonic parsers try their alternative forms in a fixed order: more
// specific forms (e.g. mov's 3-operand LitOffReg) must be tried before a
// shorter-prefix alternative would otherwise match a truncated prefix of
// the same input.

func movP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		litOffReg("mov", desc(isa.MoveLitOffReg)),
		litReg("mov", desc(isa.MoveLitReg)),
		regReg("mov", desc(isa.MoveRegReg)),
		litMem("mov", desc(isa.MoveLitMem)),
		memReg("mov", desc(isa.MoveMemReg)),
		regPtrReg("mov", desc(isa.MoveRegPtrReg)),
		regMem("mov", desc(isa.MoveRegMem)),
	})
}

func addP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		litReg("add", desc(isa.AddLitReg)),
		regReg("add", desc(isa.AddRegReg)),
	})
}

func subP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		litReg("sub", desc(isa.SubLitReg)),
		regReg("sub", desc(isa.SubRegReg)),
		regLit("sub", desc(isa.SubRegLit)),
	})
}

func mulP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		litReg("mul", desc(isa.MulLitReg)),
		regReg("mul", desc(isa.MulRegReg)),
	})
}

func lsfP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		regLit8("lsf", desc(isa.LsfRegLit8)),
		regReg("lsf", desc(isa.LsfRegReg)),
	})
}

func rsfP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		regLit8("rsf", desc(isa.RsfRegLit8)),
		regReg("rsf", desc(isa.RsfRegReg)),
	})
}

func andP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		regLit("and", desc(isa.AndRegLit)),
		regReg("and", desc(isa.AndRegReg)),
	})
}

func orP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		regLit("or", desc(isa.OrRegLit)),
		regReg("or", desc(isa.OrRegReg)),
	})
}

func xorP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		regLit("xor", desc(isa.XorRegLit)),
		regReg("xor", desc(isa.XorRegReg)),
	})
}

func notP() parser.Parser[Node] { return reg("not", desc(isa.NotReg)) }
func incP() parser.Parser[Node] { return reg("inc", desc(isa.IncReg)) }
func decP() parser.Parser[Node] { return reg("dec", desc(isa.DecReg)) }
func retP() parser.Parser[Node] { return noArg("ret", desc(isa.Ret)) }
func hltP() parser.Parser[Node] { return noArg("hlt", desc(isa.Hlt)) }

func retIntP() parser.Parser[Node] { return noArg("ret_int", desc(isa.RetInt)) }

func pshP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		lit("psh", desc(isa.PshLit)),
		reg("psh", desc(isa.PshReg)),
	})
}

func popP() parser.Parser[Node] { return reg("pop", desc(isa.PopReg)) }

func calP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		lit("cal", desc(isa.CalLit)),
		reg("cal", desc(isa.CalReg)),
	})
}

func intP() parser.Parser[Node] { return lit("int", desc(isa.Int)) }

func condJump(name string, litOp, regOp byte) parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		litMem(name, desc(litOp)),
		regMem(name, desc(regOp)),
	})
}

func jneP() parser.Parser[Node] { return condJump("jne", isa.JneLit, isa.JneReg) }
func jeqP() parser.Parser[Node] { return condJump("jeq", isa.JeqLit, isa.JeqReg) }
func jgtP() parser.Parser[Node] { return condJump("jgt", isa.JgtLit, isa.JgtReg) }
func jltP() parser.Parser[Node] { return condJump("jlt", isa.JltLit, isa.JltReg) }
func jgeP() parser.Parser[Node] { return condJump("jge", isa.JgeLit, isa.JgeReg) }
func jleP() parser.Parser[Node] { return condJump("jle", isa.JleLit, isa.JleReg) }

// StatementP matches one full statement: a label declaration or any
// instruction mnemonic.
func StatementP() parser.Parser[Node] {
	return parser.OneOf([]parser.Parser[Node]{
		LabelP(),
		movP(),
		addP(),
		subP(),
		mulP(),
		lsfP(),
		rsfP(),
		andP(),
		orP(),
		xorP(),
		jeqP(),
		jneP(),
		jgtP(),
		jltP(),
		jleP(),
		jgeP(),
		pshP(),
		popP(),
		incP(),
		decP(),
		notP(),
		calP(),
		retIntP(),
		retP(),
		hltP(),
		intP(),
	})
}

// ProgramP matches one or more newline-terminated statements, trailing
// inline whitespace on each line allowed.
func ProgramP() parser.Parser[[]Node] {
	line := parser.Left(parser.Left(StatementP(), parser.OptionalWhitespace()), parser.Character('\n'))
	return parser.OneOrMore(line)
}
