package cpu

import "github.com/Urethramancer/m6800/opcode"

// registerLoadStore binds LDAA/LDAB/STAA/STAB and their 16-bit-register
// counterparts LDX/LDS/STX/STS across every mode they support. Loads clear
// V; stores reflect the stored value's sign/zero into N/Z and also clear V.
func registerLoadStore() {
	eightBitModes := []opcode.Mode{opcode.Immediate, opcode.Direct, opcode.Indexed, opcode.Extended}
	storeModes := []opcode.Mode{opcode.Direct, opcode.Indexed, opcode.Extended}

	loadA := func(c *CPU, ea EA) {
		c.A = readOperand8(c, ea)
		c.setNZ8(c.A)
		c.CCR.V = false
	}
	loadB := func(c *CPU, ea EA) {
		c.B = readOperand8(c, ea)
		c.setNZ8(c.B)
		c.CCR.V = false
	}
	storeA := func(c *CPU, ea EA) {
		c.Mem.WriteByte(ea.Addr, c.A)
		c.setNZ8(c.A)
		c.CCR.V = false
	}
	storeB := func(c *CPU, ea EA) {
		c.Mem.WriteByte(ea.Addr, c.B)
		c.setNZ8(c.B)
		c.CCR.V = false
	}

	for _, m := range eightBitModes {
		bind("LDAA", m, loadA)
		bind("LDAB", m, loadB)
	}
	for _, m := range storeModes {
		bind("STAA", m, storeA)
		bind("STAB", m, storeB)
	}

	loadX := func(c *CPU, ea EA) {
		c.X = readOperand16(c, ea)
		c.setNZ16(c.X)
		c.CCR.V = false
	}
	loadS := func(c *CPU, ea EA) {
		c.SP = readOperand16(c, ea)
		c.setNZ16(c.SP)
		c.CCR.V = false
	}
	storeX := func(c *CPU, ea EA) {
		c.Mem.WriteWord(ea.Addr, c.X)
		c.setNZ16(c.X)
		c.CCR.V = false
	}
	storeS := func(c *CPU, ea EA) {
		c.Mem.WriteWord(ea.Addr, c.SP)
		c.setNZ16(c.SP)
		c.CCR.V = false
	}

	for _, m := range eightBitModes {
		bind("LDX", m, loadX)
		bind("LDS", m, loadS)
	}
	for _, m := range storeModes {
		bind("STX", m, storeX)
		bind("STS", m, storeS)
	}
}
