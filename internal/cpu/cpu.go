// Package cpu implements the fetch/decode/execute loop, the stack and
// calling convention, and cooperative software interrupts.
package cpu

import (
	"fmt"

	"vm16/internal/device"
	"vm16/internal/isa"
)

// InterruptVectorBase is the start of the 16-entry, 2-byte-per-entry
// interrupt vector table.
const InterruptVectorBase = 0x1000

// InterruptVectorCount is the number of interrupt lines the vector table
// and IM register support.
const InterruptVectorCount = 16

// CPU is the register file plus a bus it executes against. The register
// file is itself kept as a small flat Memory, indexed by byte offset, so
// the CPU can reuse Memory's big-endian u16 accessors and tests can poke at
// registers through the same API as any other device.
type CPU struct {
	registers *device.Memory
	bus       device.Device

	stackFrameSize       uint16
	isInInterruptHandler bool
}

// New constructs a CPU wired to bus. SP and FP both start at the top of
// the address space, two bytes in from the end (the last valid u16 slot).
func New(bus device.Device) *CPU {
	c := &CPU{
		registers: device.NewMemory(isa.RegisterFileSize),
		bus:       bus,
	}
	top := uint16(bus.Len() - 2)
	c.SetRegister(isa.RegSP, top)
	c.SetRegister(isa.RegFP, top)
	return c
}

func checkRegisterOffset(off int) {
	if off < 0 || off+1 >= isa.RegisterFileSize {
		panic(fmt.Sprintf("register index out of range: %d", off))
	}
}

// GetRegister reads a register by its byte offset.
func (c *CPU) GetRegister(offset int) uint16 {
	checkRegisterOffset(offset)
	return c.registers.GetU16(offset)
}

// SetRegister writes a register by its byte offset. Writing MB also
// propagates the new value to the bus via SetMB, so banked devices switch
// windows; no other register write has a side effect.
func (c *CPU) SetRegister(offset int, v uint16) {
	checkRegisterOffset(offset)
	c.registers.SetU16(offset, v)
	if offset == isa.RegMB {
		c.bus.SetMB(v)
	}
}

func (c *CPU) fetch8() uint8 {
	ip := c.GetRegister(isa.RegIP)
	v := c.bus.GetU8(int(ip))
	c.SetRegister(isa.RegIP, ip+1)
	return v
}

func (c *CPU) fetch16() uint16 {
	ip := c.GetRegister(isa.RegIP)
	v := c.bus.GetU16(int(ip))
	c.SetRegister(isa.RegIP, ip+2)
	return v
}

// fetchRegisterOffset reads the next instruction byte as a register index.
func (c *CPU) fetchRegisterOffset() int {
	return int(c.fetch8())
}

// pushToStack stores v at SP, then decrements SP by 2 and grows the
// current frame-size counter by 2.
func (c *CPU) pushToStack(v uint16) {
	sp := c.GetRegister(isa.RegSP)
	c.bus.SetU16(int(sp), v)
	c.SetRegister(isa.RegSP, sp-2)
	c.stackFrameSize += 2
}

// popFromStack advances SP by 2, reads the value there, and shrinks the
// frame-size counter by 2.
func (c *CPU) popFromStack() uint16 {
	sp := c.GetRegister(isa.RegSP) + 2
	c.SetRegister(isa.RegSP, sp)
	v := c.bus.GetU16(int(sp))
	c.stackFrameSize -= 2
	return v
}

// PushState saves a full activation record: R1..R8 in order, then IP, then
// the size of this frame (including its own slot). FP then moves to the
// new top of stack and the frame-size counter resets for the callee.
func (c *CPU) PushState() {
	for _, off := range isa.GeneralPurposeRegisters {
		c.pushToStack(c.GetRegister(off))
	}
	c.pushToStack(c.GetRegister(isa.RegIP))
	c.pushToStack(c.stackFrameSize + 2)

	c.SetRegister(isa.RegFP, c.GetRegister(isa.RegSP))
	c.stackFrameSize = 0
}

// PopState restores the most recent activation record: SP resets to FP,
// then the frame-size slot, IP, and R8..R1 (reverse push order) are popped.
// FP is finally restored to the previous frame's base: the FP value this
// call started with, plus the popped frame size. The frame-size counter is
// restored to the caller's value at the time of the PushState.
func (c *CPU) PopState() {
	fp := c.GetRegister(isa.RegFP)
	c.SetRegister(isa.RegSP, fp)
	c.stackFrameSize = 2 // bootstraps the first pop below

	frameSize := c.popFromStack()
	ip := c.popFromStack()
	c.SetRegister(isa.RegIP, ip)

	regs := isa.GeneralPurposeRegisters
	for i := len(regs) - 1; i >= 0; i-- {
		c.SetRegister(regs[i], c.popFromStack())
	}

	// The slot held the caller's frame size plus this record's own bytes
	// (R1..R8, IP and the slot itself).
	recordSize := uint16(2 * (len(regs) + 2))
	c.stackFrameSize = frameSize - recordSize

	c.SetRegister(isa.RegFP, fp+frameSize)
}

func (c *CPU) interrupt(n uint16) {
	if n >= InterruptVectorCount {
		panic(fmt.Sprintf("interrupt line out of range: %d", n))
	}
	im := c.GetRegister(isa.RegIM)
	if (uint16(1)<<n)&im == 0 {
		return // masked
	}
	if !c.isInInterruptHandler {
		c.PushState()
	}
	c.isInInterruptHandler = true
	handler := c.bus.GetU16(InterruptVectorBase + int(n)*2)
	c.SetRegister(isa.RegIP, handler)
}

// Step fetches and executes one instruction, returning true if it was HLT.
func (c *CPU) Step() bool {
	opcode := c.fetch8()
	return c.execute(opcode)
}

// Run steps the CPU until HLT. Any fault (unrecognized opcode, an
// out-of-range address or register index) is fatal: it surfaces as a
// panic from the relevant device/register accessor, which Run recovers
// into a plain error, matching the design's "no in-VM trap mechanism
// beyond INT" rule.
func (c *CPU) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vm16: runtime fault at IP=0x%04X: %v", c.GetRegister(isa.RegIP), r)
		}
	}()
	for {
		if c.Step() {
			return nil
		}
	}
}
