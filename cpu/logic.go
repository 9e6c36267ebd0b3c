package cpu

import "github.com/Urethramancer/m6800/opcode"

// registerLogic binds ANDA/ANDB, ORAA/ORAB, EORA/EORB and BITA/BITB. All
// four families clear V and set N/Z from the result (BIT discards its
// result, keeping only the flags).
func registerLogic() {
	modes := []opcode.Mode{opcode.Immediate, opcode.Direct, opcode.Indexed, opcode.Extended}

	andA := func(c *CPU, ea EA) { c.A &= readOperand8(c, ea); c.setNZ8(c.A); c.CCR.V = false }
	andB := func(c *CPU, ea EA) { c.B &= readOperand8(c, ea); c.setNZ8(c.B); c.CCR.V = false }
	orA := func(c *CPU, ea EA) { c.A |= readOperand8(c, ea); c.setNZ8(c.A); c.CCR.V = false }
	orB := func(c *CPU, ea EA) { c.B |= readOperand8(c, ea); c.setNZ8(c.B); c.CCR.V = false }
	eorA := func(c *CPU, ea EA) { c.A ^= readOperand8(c, ea); c.setNZ8(c.A); c.CCR.V = false }
	eorB := func(c *CPU, ea EA) { c.B ^= readOperand8(c, ea); c.setNZ8(c.B); c.CCR.V = false }
	bitA := func(c *CPU, ea EA) { c.setNZ8(c.A & readOperand8(c, ea)); c.CCR.V = false }
	bitB := func(c *CPU, ea EA) { c.setNZ8(c.B & readOperand8(c, ea)); c.CCR.V = false }

	for _, m := range modes {
		bind("ANDA", m, andA)
		bind("ANDB", m, andB)
		bind("ORAA", m, orA)
		bind("ORAB", m, orB)
		bind("EORA", m, eorA)
		bind("EORB", m, eorB)
		bind("BITA", m, bitA)
		bind("BITB", m, bitB)
	}
}
