package cpu

import "github.com/Urethramancer/m6800/opcode"

func addToA(withCarry bool) handlerFunc {
	return func(c *CPU, ea EA) {
		operand := readOperand8(c, ea)
		result, h, n, z, v, co := addFlags8(c.A, operand, withCarry && c.CCR.C)
		c.A = result
		c.CCR.H, c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = h, n, z, v, co
	}
}

func addToB(withCarry bool) handlerFunc {
	return func(c *CPU, ea EA) {
		operand := readOperand8(c, ea)
		result, h, n, z, v, co := addFlags8(c.B, operand, withCarry && c.CCR.C)
		c.B = result
		c.CCR.H, c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = h, n, z, v, co
	}
}

// subFromA implements SUBA/SBCA/CMPA: discard is true for CMPA, which
// computes flags without writing the result back.
func subFromA(withCarry, discard bool) handlerFunc {
	return func(c *CPU, ea EA) {
		operand := readOperand8(c, ea)
		result, n, z, v, co := subFlags8(c.A, operand, withCarry && c.CCR.C)
		if !discard {
			c.A = result
		}
		c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = n, z, v, co
	}
}

func subFromB(withCarry, discard bool) handlerFunc {
	return func(c *CPU, ea EA) {
		operand := readOperand8(c, ea)
		result, n, z, v, co := subFlags8(c.B, operand, withCarry && c.CCR.C)
		if !discard {
			c.B = result
		}
		c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = n, z, v, co
	}
}

func registerArithmetic() {
	modes := []opcode.Mode{opcode.Immediate, opcode.Direct, opcode.Indexed, opcode.Extended}
	for _, m := range modes {
		bind("ADDA", m, addToA(false))
		bind("ADCA", m, addToA(true))
		bind("SUBA", m, subFromA(false, false))
		bind("SBCA", m, subFromA(true, false))
		bind("CMPA", m, subFromA(false, true))

		bind("ADDB", m, addToB(false))
		bind("ADCB", m, addToB(true))
		bind("SUBB", m, subFromB(false, false))
		bind("SBCB", m, subFromB(true, false))
		bind("CMPB", m, subFromB(false, true))
	}

	bind("ABA", opcode.Inherent, func(c *CPU, ea EA) {
		result, h, n, z, v, co := addFlags8(c.A, c.B, false)
		c.A = result
		c.CCR.H, c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = h, n, z, v, co
	})
	bind("SBA", opcode.Inherent, func(c *CPU, ea EA) {
		result, n, z, v, co := subFlags8(c.A, c.B, false)
		c.A = result
		c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = n, z, v, co
	})
	bind("CBA", opcode.Inherent, func(c *CPU, ea EA) {
		_, n, z, v, co := subFlags8(c.A, c.B, false)
		c.CCR.N, c.CCR.Z, c.CCR.V, c.CCR.C = n, z, v, co
	})

	cpx := func(c *CPU, ea EA) {
		operand := readOperand16(c, ea)
		result := c.X - operand
		c.CCR.N = result&0x8000 != 0
		c.CCR.Z = result == 0
		xsign := c.X&0x8000 != 0
		osign := operand&0x8000 != 0
		rsign := result&0x8000 != 0
		c.CCR.V = (xsign != osign) && (rsign != xsign)
	}
	for _, m := range modes {
		bind("CPX", m, cpx)
	}

	bind("DAA", opcode.Inherent, daa)
}

// daa implements the standard BCD decimal-adjust algorithm: after an 8-bit
// binary add of two packed-BCD operands, it corrects A back into valid BCD.
func daa(c *CPU, ea EA) {
	a := c.A
	lowNibble := a & 0x0F
	highNibble := a >> 4
	carry := c.CCR.C

	var correction byte
	if c.CCR.H || lowNibble > 9 {
		correction |= 0x06
	}
	if carry || highNibble > 9 || (highNibble == 9 && lowNibble > 9) {
		correction |= 0x60
		carry = true
	}

	sum := uint16(a) + uint16(correction)
	result := byte(sum)
	c.A = result
	c.CCR.N = result&0x80 != 0
	c.CCR.Z = result == 0
	c.CCR.C = carry || sum > 0xFF
}
