package cpu

import (
	"testing"

	"vm16/internal/device"
	"vm16/internal/isa"
)

func newTestCPU(size int) (*CPU, *device.Memory) {
	mem := device.NewMemory(size)
	return New(mem), mem
}

func TestAddRegRegLandsInACC(t *testing.T) {
	mem := device.NewMemory(64)
	c := New(mem)
	c.SetRegister(isa.RegR1, 0x1234)
	c.SetRegister(isa.RegR2, 0xABCD)

	// ADD_REG_REG R1 R2
	mem.SetU8(0, isa.AddRegReg)
	mem.SetU8(1, byte(isa.RegR1))
	mem.SetU8(2, byte(isa.RegR2))
	c.SetRegister(isa.RegIP, 0)

	c.Step()

	if got := c.GetRegister(isa.RegACC); got != 0xBE01 {
		t.Fatalf("ACC = %#04x, want 0xBE01", got)
	}
}

func TestPushPopStateRoundTrip(t *testing.T) {
	c, _ := newTestCPU(64)

	initial := map[int]uint16{}
	for i, off := range isa.GeneralPurposeRegisters {
		v := uint16(0x1000 + i)
		c.SetRegister(off, v)
		initial[off] = v
	}

	sp0 := c.GetRegister(isa.RegSP)
	fp0 := c.GetRegister(isa.RegFP)
	if sp0 != 62 || fp0 != 62 {
		t.Fatalf("expected SP=FP=62 initially, got SP=%d FP=%d", sp0, fp0)
	}

	c.PushState()
	for _, off := range isa.GeneralPurposeRegisters {
		c.SetRegister(off, c.GetRegister(off)+7)
	}
	c.PushState()
	for _, off := range isa.GeneralPurposeRegisters {
		c.SetRegister(off, c.GetRegister(off)+13)
	}

	c.PopState()
	c.PopState()

	for _, off := range isa.GeneralPurposeRegisters {
		if got := c.GetRegister(off); got != initial[off] {
			t.Errorf("register %d = %#04x, want %#04x", off, got, initial[off])
		}
	}
	if got := c.GetRegister(isa.RegSP); got != 62 {
		t.Errorf("SP = %d, want 62", got)
	}
	if got := c.GetRegister(isa.RegFP); got != 62 {
		t.Errorf("FP = %d, want 62", got)
	}
}

func TestMBWritePropagatesToBus(t *testing.T) {
	mapper := device.NewMemoryMapper()
	banked := device.NewBankedMemory(4, 16)
	mapper.Map(banked, 0, 15, true)

	c := New(mapper)
	mapper.SetU8(0, 1)
	c.SetRegister(isa.RegMB, 1)
	mapper.SetU8(0, 2)

	c.SetRegister(isa.RegMB, 0)
	if got := mapper.GetU8(0); got != 1 {
		t.Fatalf("bank 0 byte 0 = %d, want 1", got)
	}
	c.SetRegister(isa.RegMB, 1)
	if got := mapper.GetU8(0); got != 2 {
		t.Fatalf("bank 1 byte 0 = %d, want 2", got)
	}
}

func TestHltHalts(t *testing.T) {
	mem := device.NewMemory(8)
	mem.SetU8(0, isa.Hlt)
	c := New(mem)
	c.SetRegister(isa.RegIP, 0)
	if !c.Step() {
		t.Fatalf("expected HLT to report halted")
	}
}

func TestMaskedInterruptIsNoOp(t *testing.T) {
	mem := device.NewMemory(0x2000)
	c := New(mem)
	c.SetRegister(isa.RegIM, 0) // everything masked
	c.SetRegister(isa.RegIP, 0)
	mem.SetU16(InterruptVectorBase, 0x0500)

	mem.SetU8(0, isa.Int)
	mem.SetU16(1, 0)
	mem.SetU8(3, isa.Hlt)

	c.Step() // INT 0, masked -> falls through
	if got := c.GetRegister(isa.RegIP); got != 3 {
		t.Fatalf("IP = %d, want 3 (interrupt should have been a no-op)", got)
	}
}

func TestInterruptDispatchAndReturn(t *testing.T) {
	mem := device.NewMemory(0x2000)
	c := New(mem)
	c.SetRegister(isa.RegIM, 1) // enable line 0
	c.SetRegister(isa.RegIP, 0)
	mem.SetU16(InterruptVectorBase, 0x0100)

	mem.SetU8(0, isa.Int)
	mem.SetU16(1, 0)
	// handler at 0x0100 just returns immediately
	mem.SetU8(0x0100, isa.RetInt)

	c.Step() // INT 0 -> jumps to handler, IP=0x0100
	if got := c.GetRegister(isa.RegIP); got != 0x0100 {
		t.Fatalf("IP = %#04x, want 0x0100", got)
	}
	c.Step() // RET_INT -> restores IP to just after the INT instruction (3)
	if got := c.GetRegister(isa.RegIP); got != 3 {
		t.Fatalf("IP after RET_INT = %d, want 3", got)
	}
}
