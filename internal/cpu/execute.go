package cpu

import (
	"fmt"

	"vm16/internal/isa"
)

// execute dispatches a single fetched opcode. Arithmetic/bitwise results
// always land in ACC; INC/DEC/shift handlers write back in place. All
// uint16 arithmetic here wraps the way Go's native type does — there is no
// separate overflow check, which is the documented behavior.
func (c *CPU) execute(opcode byte) bool {
	switch opcode {
	case isa.Hlt:
		return true

	case isa.MoveLitReg:
		v := c.fetch16()
		r := c.fetchRegisterOffset()
		c.SetRegister(r, v)
	case isa.MoveRegReg:
		src := c.fetchRegisterOffset()
		dst := c.fetchRegisterOffset()
		c.SetRegister(dst, c.GetRegister(src))
	case isa.MoveRegMem:
		src := c.fetchRegisterOffset()
		addr := c.fetch16()
		c.bus.SetU16(int(addr), c.GetRegister(src))
	case isa.MoveMemReg:
		addr := c.fetch16()
		dst := c.fetchRegisterOffset()
		c.SetRegister(dst, c.bus.GetU16(int(addr)))
	case isa.MoveLitMem:
		v := c.fetch16()
		addr := c.fetch16()
		c.bus.SetU16(int(addr), v)
	case isa.MoveRegPtrReg:
		ptr := c.fetchRegisterOffset()
		dst := c.fetchRegisterOffset()
		addr := c.GetRegister(ptr)
		c.SetRegister(dst, c.bus.GetU16(int(addr)))
	case isa.MoveLitOffReg:
		base := c.fetch16()
		offReg := c.fetchRegisterOffset()
		dst := c.fetchRegisterOffset()
		addr := base + c.GetRegister(offReg)
		c.SetRegister(dst, c.bus.GetU16(int(addr)))

	case isa.AddRegReg:
		a, b := c.fetchRegisterOffset(), c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, c.GetRegister(a)+c.GetRegister(b))
	case isa.AddLitReg:
		v := c.fetch16()
		r := c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, v+c.GetRegister(r))
	case isa.SubLitReg:
		v := c.fetch16()
		r := c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, v-c.GetRegister(r))
	case isa.SubRegLit:
		r := c.fetchRegisterOffset()
		v := c.fetch16()
		c.SetRegister(isa.RegACC, c.GetRegister(r)-v)
	case isa.SubRegReg:
		a, b := c.fetchRegisterOffset(), c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, c.GetRegister(a)-c.GetRegister(b))
	case isa.MulLitReg:
		v := c.fetch16()
		r := c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, v*c.GetRegister(r))
	case isa.MulRegReg:
		a, b := c.fetchRegisterOffset(), c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, c.GetRegister(a)*c.GetRegister(b))
	case isa.IncReg:
		r := c.fetchRegisterOffset()
		c.SetRegister(r, c.GetRegister(r)+1)
	case isa.DecReg:
		r := c.fetchRegisterOffset()
		c.SetRegister(r, c.GetRegister(r)-1)

	case isa.LsfRegLit8:
		r := c.fetchRegisterOffset()
		n := c.fetch8()
		c.SetRegister(r, c.GetRegister(r)<<n)
	case isa.LsfRegReg:
		r := c.fetchRegisterOffset()
		s := c.fetchRegisterOffset()
		c.SetRegister(r, c.GetRegister(r)<<c.GetRegister(s))
	case isa.RsfRegLit8:
		r := c.fetchRegisterOffset()
		n := c.fetch8()
		c.SetRegister(r, c.GetRegister(r)>>n)
	case isa.RsfRegReg:
		r := c.fetchRegisterOffset()
		s := c.fetchRegisterOffset()
		c.SetRegister(r, c.GetRegister(r)>>c.GetRegister(s))
	case isa.AndRegLit:
		r := c.fetchRegisterOffset()
		v := c.fetch16()
		c.SetRegister(isa.RegACC, c.GetRegister(r)&v)
	case isa.AndRegReg:
		a, b := c.fetchRegisterOffset(), c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, c.GetRegister(a)&c.GetRegister(b))
	case isa.OrRegLit:
		r := c.fetchRegisterOffset()
		v := c.fetch16()
		c.SetRegister(isa.RegACC, c.GetRegister(r)|v)
	case isa.OrRegReg:
		a, b := c.fetchRegisterOffset(), c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, c.GetRegister(a)|c.GetRegister(b))
	case isa.XorRegLit:
		r := c.fetchRegisterOffset()
		v := c.fetch16()
		c.SetRegister(isa.RegACC, c.GetRegister(r)^v)
	case isa.XorRegReg:
		a, b := c.fetchRegisterOffset(), c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, c.GetRegister(a)^c.GetRegister(b))
	case isa.NotReg:
		r := c.fetchRegisterOffset()
		c.SetRegister(isa.RegACC, ^c.GetRegister(r))

	case isa.JneLit:
		v := c.fetch16()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) != v {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JneReg:
		r := c.fetchRegisterOffset()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) != c.GetRegister(r) {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JeqLit:
		v := c.fetch16()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) == v {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JeqReg:
		r := c.fetchRegisterOffset()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) == c.GetRegister(r) {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JgtLit:
		v := c.fetch16()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) > v {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JgtReg:
		r := c.fetchRegisterOffset()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) > c.GetRegister(r) {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JltLit:
		v := c.fetch16()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) < v {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JltReg:
		r := c.fetchRegisterOffset()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) < c.GetRegister(r) {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JgeLit:
		v := c.fetch16()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) >= v {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JgeReg:
		r := c.fetchRegisterOffset()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) >= c.GetRegister(r) {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JleLit:
		v := c.fetch16()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) <= v {
			c.SetRegister(isa.RegIP, addr)
		}
	case isa.JleReg:
		r := c.fetchRegisterOffset()
		addr := c.fetch16()
		if c.GetRegister(isa.RegACC) <= c.GetRegister(r) {
			c.SetRegister(isa.RegIP, addr)
		}

	case isa.PshLit:
		c.pushToStack(c.fetch16())
	case isa.PshReg:
		r := c.fetchRegisterOffset()
		c.pushToStack(c.GetRegister(r))
	case isa.PopReg:
		r := c.fetchRegisterOffset()
		c.SetRegister(r, c.popFromStack())
	case isa.CalLit:
		addr := c.fetch16()
		c.PushState()
		c.SetRegister(isa.RegIP, addr)
	case isa.CalReg:
		r := c.fetchRegisterOffset()
		addr := c.GetRegister(r)
		c.PushState()
		c.SetRegister(isa.RegIP, addr)
	case isa.Ret:
		c.PopState()

	case isa.Int:
		n := c.fetch16()
		c.interrupt(n)
	case isa.RetInt:
		c.isInInterruptHandler = false
		c.PopState()

	default:
		panic(fmt.Sprintf("unrecognized opcode 0x%02X", opcode))
	}
	return false
}
