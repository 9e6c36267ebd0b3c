package cpu

import "github.com/Urethramancer/m6800/opcode"

// EA is the decoded effective-address information for one instruction,
// computed once per Step and handed to its handler. Which fields are
// meaningful depends on Mode.
type EA struct {
	Mode  opcode.Mode
	Addr  uint16 // Direct / Extended / Indexed: the memory address to read or write
	Imm8  byte   // Immediate, 8-bit form
	Imm16 uint16 // Immediate, 16-bit form (LDX/LDS/CPX #)
	Target uint16 // Relative: the resolved branch target
	Base  uint16  // address of the instruction itself, before PC advanced
}

// effectiveAddress computes the EA for entry, reading any operand bytes that
// follow the opcode at pc0. It does not advance PC.
func (c *CPU) effectiveAddress(e opcode.Entry, pc0 uint16) EA {
	ea := EA{Mode: e.Mode, Base: pc0}
	switch e.Mode {
	case opcode.Inherent, opcode.Accumulator:
		// no operand bytes

	case opcode.Immediate:
		if e.Length == 3 {
			ea.Imm16 = c.Mem.ReadWord(pc0 + 1)
		} else {
			ea.Imm8 = c.Mem.ReadByte(pc0 + 1)
		}

	case opcode.Direct:
		ea.Addr = uint16(c.Mem.ReadByte(pc0 + 1))

	case opcode.Extended:
		ea.Addr = c.Mem.ReadWord(pc0 + 1)

	case opcode.Indexed:
		offset := uint16(c.Mem.ReadByte(pc0 + 1))
		ea.Addr = c.X + offset

	case opcode.Relative:
		disp := int8(c.Mem.ReadByte(pc0 + 1))
		ea.Target = uint16(int32(pc0) + int32(e.Length) + int32(disp))
	}
	return ea
}

// readOperand8 fetches an 8-bit operand value per ea's mode: the immediate
// byte, or the byte at the effective address.
func readOperand8(c *CPU, ea EA) byte {
	if ea.Mode == opcode.Immediate {
		return ea.Imm8
	}
	return c.Mem.ReadByte(ea.Addr)
}

// readOperand16 fetches a 16-bit operand value per ea's mode.
func readOperand16(c *CPU, ea EA) uint16 {
	if ea.Mode == opcode.Immediate {
		return ea.Imm16
	}
	return c.Mem.ReadWord(ea.Addr)
}
