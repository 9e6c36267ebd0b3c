package cpu

import "github.com/Urethramancer/m6800/opcode"

// registerIncDec binds INC/DEC/CLR/NEG/COM/TST via bindRMW, and the
// inherent 16-bit INX/DEX/INS/DES.
func registerIncDec() {
	bindRMW("INC", func(v byte, c *CPU) byte {
		result := v + 1
		c.CCR.V = v == 0x7F
		c.setNZ8(result)
		return result
	})

	bindRMW("DEC", func(v byte, c *CPU) byte {
		result := v - 1
		c.CCR.V = v == 0x80
		c.setNZ8(result)
		return result
	})

	bindRMW("CLR", func(v byte, c *CPU) byte {
		c.CCR.N = false
		c.CCR.Z = true
		c.CCR.V = false
		c.CCR.C = false
		return 0
	})

	bindRMW("NEG", func(v byte, c *CPU) byte {
		result := -v
		c.CCR.V = v == 0x80
		c.CCR.C = v != 0
		c.setNZ8(result)
		return result
	})

	bindRMW("COM", func(v byte, c *CPU) byte {
		result := ^v
		c.CCR.V = false
		c.CCR.C = true
		c.setNZ8(result)
		return result
	})

	bindRMW("TST", func(v byte, c *CPU) byte {
		c.setNZ8(v)
		c.CCR.V = false
		c.CCR.C = false
		return v
	})

	bind("INX", opcode.Inherent, func(c *CPU, ea EA) {
		c.X++
		c.CCR.Z = c.X == 0
	})
	bind("DEX", opcode.Inherent, func(c *CPU, ea EA) {
		c.X--
		c.CCR.Z = c.X == 0
	})
	bind("INS", opcode.Inherent, func(c *CPU, ea EA) { c.SP++ })
	bind("DES", opcode.Inherent, func(c *CPU, ea EA) { c.SP-- })
}
