package isa

import "fmt"

// Register byte offsets within the 28-byte register file. Each register's
// index is its offset, so the register file can be addressed the same way
// as any other flat Device.
const (
	RegIP = 0
	RegACC = 2
	RegR1  = 4
	RegR2  = 6
	RegR3  = 8
	RegR4  = 10
	RegR5  = 12
	RegR6  = 14
	RegR7  = 16
	RegR8  = 18
	RegSP  = 20
	RegFP  = 22
	RegMB  = 24
	RegIM  = 26

	RegisterFileSize = 28
)

// GeneralPurposeRegisters lists R1..R8's offsets in order, the set that
// push_state/pop_state save and restore.
var GeneralPurposeRegisters = []int{RegR1, RegR2, RegR3, RegR4, RegR5, RegR6, RegR7, RegR8}

// registerNames is deliberately ordered IP, ACC, R1..R8, SP, FP, MB, IM —
// the order the assembly grammar tries alternatives in. No entry is a
// prefix of another so order has no effect on correctness, only on which
// child error the grammar reports for a failed match.
var registerNames = []string{
	"IP", "ACC",
	"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8",
	"SP", "FP", "MB", "IM",
}

var registerOffsets = map[string]int{
	"IP": RegIP, "ACC": RegACC,
	"R1": RegR1, "R2": RegR2, "R3": RegR3, "R4": RegR4,
	"R5": RegR5, "R6": RegR6, "R7": RegR7, "R8": RegR8,
	"SP": RegSP, "FP": RegFP,
	// MB maps to its own offset. An earlier source this was distilled from
	// aliased "MB" to FP's offset by mistake; that bug is not reproduced.
	"MB": RegMB,
	"IM": RegIM,
}

// RegisterNames returns the grammar's alternative order for register names.
func RegisterNames() []string {
	out := make([]string, len(registerNames))
	copy(out, registerNames)
	return out
}

// RegisterOffset maps a register name to its byte offset.
func RegisterOffset(name string) (int, error) {
	off, ok := registerOffsets[name]
	if !ok {
		return 0, fmt.Errorf("unknown register %q", name)
	}
	return off, nil
}

// RegisterName is the reverse of RegisterOffset.
func RegisterName(offset int) (string, bool) {
	for name, off := range registerOffsets {
		if off == offset {
			return name, true
		}
	}
	return "", false
}
