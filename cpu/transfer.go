package cpu

import "github.com/Urethramancer/m6800/opcode"

// registerTransfer binds the inter-register transfer instructions: TAB/TBA
// between the accumulators, TAP/TPA between A and the CCR, and TSX/TXS
// between the stack pointer and the index register (with the conventional
// off-by-one between them).
func registerTransfer() {
	bind("TAB", opcode.Inherent, func(c *CPU, ea EA) {
		c.B = c.A
		c.setNZ8(c.B)
		c.CCR.V = false
	})
	bind("TBA", opcode.Inherent, func(c *CPU, ea EA) {
		c.A = c.B
		c.setNZ8(c.A)
		c.CCR.V = false
	})
	bind("TAP", opcode.Inherent, func(c *CPU, ea EA) {
		c.CCR.SetByte(c.A)
	})
	bind("TPA", opcode.Inherent, func(c *CPU, ea EA) {
		c.A = c.CCR.Byte()
	})
	bind("TSX", opcode.Inherent, func(c *CPU, ea EA) {
		c.X = c.SP + 1
	})
	bind("TXS", opcode.Inherent, func(c *CPU, ea EA) {
		c.SP = c.X - 1
	})
}
