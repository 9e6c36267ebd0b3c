package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6800/opcode"
)

// normalizeAccumulatorForm rewrites the generic "CLR A" / "CLR B" operand
// form, accepted for the memory read-modify-write mnemonics that also have
// dedicated accumulator opcodes, into the compound CLRA/CLRB mnemonic the
// opcode table actually indexes.
func normalizeAccumulatorForm(mnemonic, operand string) (string, string) {
	up := strings.ToUpper(mnemonic)
	trimmed := strings.TrimSpace(operand)
	if trimmed == "A" || trimmed == "B" {
		switch up {
		case "NEG", "COM", "LSR", "ROR", "ASR", "ASL", "ROL", "DEC", "INC", "TST", "CLR":
			return up + trimmed, ""
		}
	}
	return up, operand
}

// splitIndexed recognises the "offset,X" surface form and returns the offset
// text alone.
func splitIndexed(operand string) (string, bool) {
	idx := strings.LastIndexByte(operand, ',')
	if idx == -1 {
		return "", false
	}
	reg := strings.TrimSpace(operand[idx+1:])
	if strings.EqualFold(reg, "X") {
		return strings.TrimSpace(operand[:idx]), true
	}
	return "", false
}

// fitsDirectPage reports whether operand currently resolves to a value that
// fits in the zero page (0..255). known is false for a label that has not
// been defined yet; per the forward-reference rule, an unknown label is
// assumed not to fit so that Extended is chosen.
func fitsDirectPage(operand string, symtab *SymbolTable) (fits bool, known bool) {
	if val, err := parseNumber(operand); err == nil {
		return val >= 0 && val <= 0xFF, true
	}
	if val, ok := symtab.Lookup(operand); ok {
		return val <= 0xFF, true
	}
	return false, false
}

// inferMode determines the addressing mode for one instruction's operand
// text. It consults the symbol table only for the Direct/Extended
// tie-break; it never fully resolves the operand to a number.
func inferMode(mnemonic, operand string, symtab *SymbolTable) (opcode.Mode, error) {
	if operand == "" {
		if opcode.Supports(mnemonic, opcode.Accumulator) {
			return opcode.Accumulator, nil
		}
		return opcode.Inherent, nil
	}

	if strings.HasPrefix(operand, "#") {
		return opcode.Immediate, nil
	}

	if _, ok := splitIndexed(operand); ok {
		return opcode.Indexed, nil
	}

	if opcode.IsBranch(mnemonic) {
		return opcode.Relative, nil
	}

	fits, known := fitsDirectPage(operand, symtab)
	supportsDirect := opcode.Supports(mnemonic, opcode.Direct)
	supportsExtended := opcode.Supports(mnemonic, opcode.Extended)

	switch {
	case known && fits && supportsDirect:
		return opcode.Direct, nil
	case supportsExtended:
		return opcode.Extended, nil
	case supportsDirect:
		return opcode.Direct, nil
	default:
		return 0, fmt.Errorf("%s does not accept operand %q", mnemonic, operand)
	}
}
