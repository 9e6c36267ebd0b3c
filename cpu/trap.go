package cpu

import "github.com/Urethramancer/m6800/opcode"

// registerMisc binds NOP, the flag-only instructions (CLC/SEC/CLI/SEI/
// CLV/SEV), and the trap-related instructions SWI, WAI and RTI.
// This simulator has no hardware interrupt vectoring, so SWI and WAI simply
// halt the CPU rather than jumping to a vector; RTI still fully restores the
// state SWI saved, for programs that drive it directly.
func registerMisc() {
	bind("NOP", opcode.Inherent, func(c *CPU, ea EA) {})

	bind("CLC", opcode.Inherent, func(c *CPU, ea EA) { c.CCR.C = false })
	bind("SEC", opcode.Inherent, func(c *CPU, ea EA) { c.CCR.C = true })
	bind("CLI", opcode.Inherent, func(c *CPU, ea EA) { c.CCR.I = false })
	bind("SEI", opcode.Inherent, func(c *CPU, ea EA) { c.CCR.I = true })
	bind("CLV", opcode.Inherent, func(c *CPU, ea EA) { c.CCR.V = false })
	bind("SEV", opcode.Inherent, func(c *CPU, ea EA) { c.CCR.V = true })

	bind("WAI", opcode.Inherent, func(c *CPU, ea EA) {
		c.Halted = true
		c.HaltReason = "WAI"
	})

	bind("SWI", opcode.Inherent, func(c *CPU, ea EA) {
		c.push16(c.PC)
		c.push16(c.X)
		c.push8(c.A)
		c.push8(c.B)
		c.push8(c.CCR.Byte())
		c.CCR.I = true
		c.Halted = true
		c.HaltReason = "SWI"
	})

	bind("RTI", opcode.Inherent, func(c *CPU, ea EA) {
		c.CCR.SetByte(c.pull8())
		c.B = c.pull8()
		c.A = c.pull8()
		c.X = c.pull16()
		c.PC = c.pull16()
	})
}
