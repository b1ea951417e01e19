package isa

// Descriptor is one row of the instruction catalog: a mnemonic/form pair
// and the opcode byte it encodes to.
type Descriptor struct {
	Opcode   byte
	Mnemonic string
	Form     Form
}

// Size is shorthand for Descriptor.Form.Size().
func (d Descriptor) Size() int { return d.Form.Size() }

// Table is the full canonical instruction catalog, ordered the way the
// source assembly-grammar documentation lists them (moves, arithmetic,
// bitwise/shift, stack/control, conditional jumps, interrupts).
var Table = []Descriptor{
	{MoveLitMem, "MOV", FormLitMem},
	{MoveLitReg, "MOV", FormLitReg},
	{MoveRegReg, "MOV", FormRegReg},
	{MoveRegMem, "MOV", FormRegMem},
	{MoveMemReg, "MOV", FormMemReg},
	{MoveRegPtrReg, "MOV", FormRegPtrReg},
	{MoveLitOffReg, "MOV", FormLitOffReg},

	{AddRegReg, "ADD", FormRegReg},
	{AddLitReg, "ADD", FormLitReg},
	{SubLitReg, "SUB", FormLitReg},
	{SubRegLit, "SUB", FormRegLit},
	{SubRegReg, "SUB", FormRegReg},
	{MulLitReg, "MUL", FormLitReg},
	{MulRegReg, "MUL", FormRegReg},
	{IncReg, "INC", FormReg},
	{DecReg, "DEC", FormReg},

	{LsfRegLit8, "LSF", FormRegLit8},
	{LsfRegReg, "LSF", FormRegReg},
	{RsfRegLit8, "RSF", FormRegLit8},
	{RsfRegReg, "RSF", FormRegReg},
	{AndRegLit, "AND", FormRegLit},
	{AndRegReg, "AND", FormRegReg},
	{OrRegLit, "OR", FormRegLit},
	{OrRegReg, "OR", FormRegReg},
	{XorRegLit, "XOR", FormRegLit},
	{XorRegReg, "XOR", FormRegReg},
	{NotReg, "NOT", FormReg},

	{PshLit, "PSH", FormLit},
	{PshReg, "PSH", FormReg},
	{PopReg, "POP", FormReg},
	{CalLit, "CAL", FormLit},
	{CalReg, "CAL", FormReg},
	{Ret, "RET", FormNone},
	{Hlt, "HLT", FormNone},

	{JneLit, "JNE", FormLitMem},
	{JneReg, "JNE", FormRegMem},
	{JeqLit, "JEQ", FormLitMem},
	{JeqReg, "JEQ", FormRegMem},
	{JgtLit, "JGT", FormLitMem},
	{JgtReg, "JGT", FormRegMem},
	{JltLit, "JLT", FormLitMem},
	{JltReg, "JLT", FormRegMem},
	{JgeLit, "JGE", FormLitMem},
	{JgeReg, "JGE", FormRegMem},
	{JleLit, "JLE", FormLitMem},
	{JleReg, "JLE", FormRegMem},

	{Int, "INT", FormLit},
	{RetInt, "RET_INT", FormNone},
}

var byOpcode = func() map[byte]Descriptor {
	m := make(map[byte]Descriptor, len(Table))
	for _, d := range Table {
		m[d.Opcode] = d
	}
	return m
}()

// Lookup returns the descriptor for an opcode byte, if any.
func Lookup(opcode byte) (Descriptor, bool) {
	d, ok := byOpcode[opcode]
	return d, ok
}
