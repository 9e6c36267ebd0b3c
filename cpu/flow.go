package cpu

import "github.com/Urethramancer/m6800/opcode"

// push8 writes v at SP and decrements SP, matching the 6800's downward-
// growing stack.
func (c *CPU) push8(v byte) {
	c.Mem.WriteByte(c.SP, v)
	c.SP--
}

// pull8 increments SP and reads the byte there.
func (c *CPU) pull8() byte {
	c.SP++
	return c.Mem.ReadByte(c.SP)
}

// push16 pushes the low byte first, then the high byte, so memory holds the
// low byte at the higher address.
func (c *CPU) push16(v uint16) {
	c.push8(byte(v))
	c.push8(byte(v >> 8))
}

// pull16 pulls the high byte first, then the low byte, mirroring push16.
func (c *CPU) pull16() uint16 {
	hi := c.pull8()
	lo := c.pull8()
	return uint16(hi)<<8 | uint16(lo)
}

func branch(cond func(c *CPU) bool) handlerFunc {
	return func(c *CPU, ea EA) {
		if cond(c) {
			c.PC = ea.Target
		}
	}
}

// registerBranch binds BRA and the fourteen condition-code branches.
func registerBranch() {
	bind("BRA", opcode.Relative, branch(func(c *CPU) bool { return true }))
	bind("BEQ", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.Z }))
	bind("BNE", opcode.Relative, branch(func(c *CPU) bool { return !c.CCR.Z }))
	bind("BCC", opcode.Relative, branch(func(c *CPU) bool { return !c.CCR.C }))
	bind("BCS", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.C }))
	bind("BMI", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.N }))
	bind("BPL", opcode.Relative, branch(func(c *CPU) bool { return !c.CCR.N }))
	bind("BVS", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.V }))
	bind("BVC", opcode.Relative, branch(func(c *CPU) bool { return !c.CCR.V }))
	bind("BHI", opcode.Relative, branch(func(c *CPU) bool { return !c.CCR.C && !c.CCR.Z }))
	bind("BLS", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.C || c.CCR.Z }))
	bind("BGE", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.N == c.CCR.V }))
	bind("BLT", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.N != c.CCR.V }))
	bind("BGT", opcode.Relative, branch(func(c *CPU) bool { return !c.CCR.Z && (c.CCR.N == c.CCR.V) }))
	bind("BLE", opcode.Relative, branch(func(c *CPU) bool { return c.CCR.Z || (c.CCR.N != c.CCR.V) }))
}

// registerFlow binds JMP, JSR, BSR, RTS, and the four stack push/pull
// instructions. By the time any of these handlers runs, PC already holds the
// address of the next instruction, so JSR/BSR push it directly as the
// return address.
func registerFlow() {
	bind("JMP", opcode.Indexed, func(c *CPU, ea EA) { c.PC = ea.Addr })
	bind("JMP", opcode.Extended, func(c *CPU, ea EA) { c.PC = ea.Addr })

	jsr := func(c *CPU, ea EA) {
		c.push16(c.PC)
		c.PC = ea.Addr
	}
	bind("JSR", opcode.Indexed, jsr)
	bind("JSR", opcode.Extended, jsr)

	bind("BSR", opcode.Relative, func(c *CPU, ea EA) {
		c.push16(c.PC)
		c.PC = ea.Target
	})

	bind("RTS", opcode.Inherent, func(c *CPU, ea EA) {
		c.PC = c.pull16()
	})

	bind("PSHA", opcode.Inherent, func(c *CPU, ea EA) { c.push8(c.A) })
	bind("PSHB", opcode.Inherent, func(c *CPU, ea EA) { c.push8(c.B) })
	bind("PULA", opcode.Inherent, func(c *CPU, ea EA) { c.A = c.pull8() })
	bind("PULB", opcode.Inherent, func(c *CPU, ea EA) { c.B = c.pull8() })
}
