package opcode

import (
	"fmt"
	"strings"
)

type raw struct {
	mnemonic string
	mode     Mode
	opcode   byte
	length   byte
}

// rawTable is the complete 6800 instruction set: 197 opcodes across 72
// mnemonics. Mnemonics that operate on a specific accumulator carry the A/B
// suffix in the name itself (LDAA/LDAB); the memory read-modify-write group
// (NEG, COM, LSR, ROR, ASR, ASL, ROL, DEC, INC, TST, JMP, CLR) has no
// Immediate or Direct form on real hardware, only Indexed and Extended.
var rawTable = []raw{
	// Inherent, non-accumulator, including NOP (17)
	{"NOP", Inherent, 0x01, 1},
	{"TAP", Inherent, 0x06, 1},
	{"TPA", Inherent, 0x07, 1},
	{"INX", Inherent, 0x08, 1},
	{"DEX", Inherent, 0x09, 1},
	{"CLV", Inherent, 0x0A, 1},
	{"SEV", Inherent, 0x0B, 1},
	{"CLC", Inherent, 0x0C, 1},
	{"SEC", Inherent, 0x0D, 1},
	{"CLI", Inherent, 0x0E, 1},
	{"SEI", Inherent, 0x0F, 1},
	{"SBA", Inherent, 0x10, 1},
	{"CBA", Inherent, 0x11, 1},
	{"TAB", Inherent, 0x16, 1},
	{"TBA", Inherent, 0x17, 1},
	{"DAA", Inherent, 0x19, 1},
	{"ABA", Inherent, 0x1B, 1},

	// Branches, relative, excluding BSR which is grouped with the stack ops below (15)
	{"BRA", Relative, 0x20, 2},
	{"BHI", Relative, 0x22, 2},
	{"BLS", Relative, 0x23, 2},
	{"BCC", Relative, 0x24, 2},
	{"BCS", Relative, 0x25, 2},
	{"BNE", Relative, 0x26, 2},
	{"BEQ", Relative, 0x27, 2},
	{"BVC", Relative, 0x28, 2},
	{"BVS", Relative, 0x29, 2},
	{"BPL", Relative, 0x2A, 2},
	{"BMI", Relative, 0x2B, 2},
	{"BGE", Relative, 0x2C, 2},
	{"BLT", Relative, 0x2D, 2},
	{"BGT", Relative, 0x2E, 2},
	{"BLE", Relative, 0x2F, 2},

	// Stack/index inherent, plus BSR (13)
	{"TSX", Inherent, 0x30, 1},
	{"INS", Inherent, 0x31, 1},
	{"PULA", Inherent, 0x32, 1},
	{"PULB", Inherent, 0x33, 1},
	{"DES", Inherent, 0x34, 1},
	{"TXS", Inherent, 0x35, 1},
	{"PSHA", Inherent, 0x36, 1},
	{"PSHB", Inherent, 0x37, 1},
	{"RTS", Inherent, 0x39, 1},
	{"RTI", Inherent, 0x3B, 1},
	{"BSR", Relative, 0x8D, 2},
	{"WAI", Inherent, 0x3E, 1},
	{"SWI", Inherent, 0x3F, 1},

	// Accumulator A, single-operand (11)
	{"NEGA", Accumulator, 0x40, 1},
	{"COMA", Accumulator, 0x43, 1},
	{"LSRA", Accumulator, 0x44, 1},
	{"RORA", Accumulator, 0x46, 1},
	{"ASRA", Accumulator, 0x47, 1},
	{"ASLA", Accumulator, 0x48, 1},
	{"ROLA", Accumulator, 0x49, 1},
	{"DECA", Accumulator, 0x4A, 1},
	{"INCA", Accumulator, 0x4C, 1},
	{"TSTA", Accumulator, 0x4D, 1},
	{"CLRA", Accumulator, 0x4F, 1},

	// Accumulator B, single-operand (11)
	{"NEGB", Accumulator, 0x50, 1},
	{"COMB", Accumulator, 0x53, 1},
	{"LSRB", Accumulator, 0x54, 1},
	{"RORB", Accumulator, 0x56, 1},
	{"ASRB", Accumulator, 0x57, 1},
	{"ASLB", Accumulator, 0x58, 1},
	{"ROLB", Accumulator, 0x59, 1},
	{"DECB", Accumulator, 0x5A, 1},
	{"INCB", Accumulator, 0x5C, 1},
	{"TSTB", Accumulator, 0x5D, 1},
	{"CLRB", Accumulator, 0x5F, 1},

	// Indexed memory read-modify-write (12)
	{"NEG", Indexed, 0x60, 2},
	{"COM", Indexed, 0x63, 2},
	{"LSR", Indexed, 0x64, 2},
	{"ROR", Indexed, 0x66, 2},
	{"ASR", Indexed, 0x67, 2},
	{"ASL", Indexed, 0x68, 2},
	{"ROL", Indexed, 0x69, 2},
	{"DEC", Indexed, 0x6A, 2},
	{"INC", Indexed, 0x6C, 2},
	{"TST", Indexed, 0x6D, 2},
	{"JMP", Indexed, 0x6E, 2},
	{"CLR", Indexed, 0x6F, 2},

	// Extended memory read-modify-write (12)
	{"NEG", Extended, 0x70, 3},
	{"COM", Extended, 0x73, 3},
	{"LSR", Extended, 0x74, 3},
	{"ROR", Extended, 0x76, 3},
	{"ASR", Extended, 0x77, 3},
	{"ASL", Extended, 0x78, 3},
	{"ROL", Extended, 0x79, 3},
	{"DEC", Extended, 0x7A, 3},
	{"INC", Extended, 0x7C, 3},
	{"TST", Extended, 0x7D, 3},
	{"JMP", Extended, 0x7E, 3},
	{"CLR", Extended, 0x7F, 3},

	// Accumulator A, two-operand group + CPX/JSR/LDS/STS (56)
	{"SUBA", Immediate, 0x80, 2}, {"SUBA", Direct, 0x90, 2}, {"SUBA", Indexed, 0xA0, 2}, {"SUBA", Extended, 0xB0, 3},
	{"CMPA", Immediate, 0x81, 2}, {"CMPA", Direct, 0x91, 2}, {"CMPA", Indexed, 0xA1, 2}, {"CMPA", Extended, 0xB1, 3},
	{"SBCA", Immediate, 0x82, 2}, {"SBCA", Direct, 0x92, 2}, {"SBCA", Indexed, 0xA2, 2}, {"SBCA", Extended, 0xB2, 3},
	{"ANDA", Immediate, 0x84, 2}, {"ANDA", Direct, 0x94, 2}, {"ANDA", Indexed, 0xA4, 2}, {"ANDA", Extended, 0xB4, 3},
	{"BITA", Immediate, 0x85, 2}, {"BITA", Direct, 0x95, 2}, {"BITA", Indexed, 0xA5, 2}, {"BITA", Extended, 0xB5, 3},
	{"LDAA", Immediate, 0x86, 2}, {"LDAA", Direct, 0x96, 2}, {"LDAA", Indexed, 0xA6, 2}, {"LDAA", Extended, 0xB6, 3},
	{"STAA", Direct, 0x97, 2}, {"STAA", Indexed, 0xA7, 2}, {"STAA", Extended, 0xB7, 3},
	{"EORA", Immediate, 0x88, 2}, {"EORA", Direct, 0x98, 2}, {"EORA", Indexed, 0xA8, 2}, {"EORA", Extended, 0xB8, 3},
	{"ADCA", Immediate, 0x89, 2}, {"ADCA", Direct, 0x99, 2}, {"ADCA", Indexed, 0xA9, 2}, {"ADCA", Extended, 0xB9, 3},
	{"ORAA", Immediate, 0x8A, 2}, {"ORAA", Direct, 0x9A, 2}, {"ORAA", Indexed, 0xAA, 2}, {"ORAA", Extended, 0xBA, 3},
	{"ADDA", Immediate, 0x8B, 2}, {"ADDA", Direct, 0x9B, 2}, {"ADDA", Indexed, 0xAB, 2}, {"ADDA", Extended, 0xBB, 3},
	{"CPX", Immediate, 0x8C, 3}, {"CPX", Direct, 0x9C, 2}, {"CPX", Indexed, 0xAC, 2}, {"CPX", Extended, 0xBC, 3},
	{"JSR", Indexed, 0xAD, 2}, {"JSR", Extended, 0xBD, 3},
	{"LDS", Immediate, 0x8E, 3}, {"LDS", Direct, 0x9E, 2}, {"LDS", Indexed, 0xAE, 2}, {"LDS", Extended, 0xBE, 3},
	{"STS", Direct, 0x9F, 2}, {"STS", Indexed, 0xAF, 2}, {"STS", Extended, 0xBF, 3},

	// Accumulator B, two-operand group + LDX/STX (50)
	{"SUBB", Immediate, 0xC0, 2}, {"SUBB", Direct, 0xD0, 2}, {"SUBB", Indexed, 0xE0, 2}, {"SUBB", Extended, 0xF0, 3},
	{"CMPB", Immediate, 0xC1, 2}, {"CMPB", Direct, 0xD1, 2}, {"CMPB", Indexed, 0xE1, 2}, {"CMPB", Extended, 0xF1, 3},
	{"SBCB", Immediate, 0xC2, 2}, {"SBCB", Direct, 0xD2, 2}, {"SBCB", Indexed, 0xE2, 2}, {"SBCB", Extended, 0xF2, 3},
	{"ANDB", Immediate, 0xC4, 2}, {"ANDB", Direct, 0xD4, 2}, {"ANDB", Indexed, 0xE4, 2}, {"ANDB", Extended, 0xF4, 3},
	{"BITB", Immediate, 0xC5, 2}, {"BITB", Direct, 0xD5, 2}, {"BITB", Indexed, 0xE5, 2}, {"BITB", Extended, 0xF5, 3},
	{"LDAB", Immediate, 0xC6, 2}, {"LDAB", Direct, 0xD6, 2}, {"LDAB", Indexed, 0xE6, 2}, {"LDAB", Extended, 0xF6, 3},
	{"STAB", Direct, 0xD7, 2}, {"STAB", Indexed, 0xE7, 2}, {"STAB", Extended, 0xF7, 3},
	{"EORB", Immediate, 0xC8, 2}, {"EORB", Direct, 0xD8, 2}, {"EORB", Indexed, 0xE8, 2}, {"EORB", Extended, 0xF8, 3},
	{"ADCB", Immediate, 0xC9, 2}, {"ADCB", Direct, 0xD9, 2}, {"ADCB", Indexed, 0xE9, 2}, {"ADCB", Extended, 0xF9, 3},
	{"ORAB", Immediate, 0xCA, 2}, {"ORAB", Direct, 0xDA, 2}, {"ORAB", Indexed, 0xEA, 2}, {"ORAB", Extended, 0xFA, 3},
	{"ADDB", Immediate, 0xCB, 2}, {"ADDB", Direct, 0xDB, 2}, {"ADDB", Indexed, 0xEB, 2}, {"ADDB", Extended, 0xFB, 3},
	{"LDX", Immediate, 0xCE, 3}, {"LDX", Direct, 0xDE, 2}, {"LDX", Indexed, 0xEE, 2}, {"LDX", Extended, 0xFE, 3},
	{"STX", Direct, 0xDF, 2}, {"STX", Indexed, 0xEF, 2}, {"STX", Extended, 0xFF, 3},
}

var (
	byDecode  [256]Entry
	byEncode  map[string]Entry
	mnemonics map[string]bool
)

func init() {
	byEncode = make(map[string]Entry, len(rawTable))
	mnemonics = make(map[string]bool, 72)
	for _, r := range rawTable {
		e := Entry{Mnemonic: r.mnemonic, Mode: r.mode, Opcode: r.opcode, Length: r.length, Valid: true}
		byDecode[r.opcode] = e
		byEncode[key(r.mnemonic, r.mode)] = e
		mnemonics[r.mnemonic] = true
	}
}

func key(mnemonic string, mode Mode) string {
	return strings.ToUpper(mnemonic) + "/" + mode.String()
}

// canonicalize maps the dual-spelling mnemonics (ORA/ORB, and the
// single-accumulator shorthands LDA/STA) onto the canonical table entries
// (ORAA/ORAB, LDAA/STAA).
func canonicalize(mnemonic string) string {
	switch strings.ToUpper(mnemonic) {
	case "ORA":
		return "ORAA"
	case "ORB":
		return "ORAB"
	case "LDA":
		return "LDAA"
	case "STA":
		return "STAA"
	default:
		return strings.ToUpper(mnemonic)
	}
}

// Known reports whether mnemonic names an instruction in the table at all,
// in any addressing mode. Lookup failing does not distinguish "no such
// instruction" from "not in this mode"; Known lets a caller tell them apart.
func Known(mnemonic string) bool {
	return mnemonics[canonicalize(mnemonic)]
}

// Lookup finds the opcode entry for a mnemonic in a given addressing mode.
func Lookup(mnemonic string, mode Mode) (Entry, error) {
	e, ok := byEncode[key(canonicalize(mnemonic), mode)]
	if !ok {
		return Entry{}, fmt.Errorf("%s does not support %s addressing", strings.ToUpper(mnemonic), mode)
	}
	return e, nil
}

// Supports reports whether mnemonic has an encoding in mode.
func Supports(mnemonic string, mode Mode) bool {
	_, err := Lookup(mnemonic, mode)
	return err == nil
}

// IsBranch reports whether mnemonic is a relative branch (including BSR).
func IsBranch(mnemonic string) bool {
	return Supports(mnemonic, Relative)
}

// Decode reverses an opcode byte to its table entry.
func Decode(op byte) (Entry, error) {
	e := byDecode[op]
	if !e.Valid {
		return Entry{}, fmt.Errorf("unknown opcode %02X", op)
	}
	return e, nil
}
