package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6800/opcode"
)

// runPassTwo encodes every pass-one line against the now-frozen symbol
// table. It never re-derives an addressing mode: the mode each Pass1Line
// carries is authoritative, so a forward reference that turned out to fit
// in the zero page still encodes as Extended, preserving the addresses pass
// one already committed to.
func runPassTwo(p1 []*Pass1Line, symtab *SymbolTable) ([]*AssemblyLine, []*AssembleError) {
	var out []*AssemblyLine
	var errs []*AssembleError

	for _, line := range p1 {
		sl := line.Source
		al := &AssemblyLine{Source: sl, Address: line.Address, Mode: line.Mode, Size: line.Size}

		switch sl.Kind {
		case BodyEmpty:
			continue

		case BodyPseudo:
			code, err := encodePseudo(sl, symtab)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			al.MachineCode = code

		case BodyInstruction:
			code, resolved, hasOperand, err := encodeInstruction(sl, line, symtab)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			al.MachineCode = code
			al.ResolvedOperand = resolved
			al.HasOperand = hasOperand
		}

		out = append(out, al)
	}
	return out, errs
}

func encodePseudo(sl *SourceLine, symtab *SymbolTable) ([]byte, *AssembleError) {
	switch sl.Mnemonic {
	case "ORG", "EQU", "END":
		return nil, nil
	case "FCB":
		return encodeFCB(sl, symtab)
	case "FDB":
		return encodeFDB(sl, symtab)
	default:
		return nil, &AssembleError{Kind: ErrUnknownPseudoOp, Line: sl.LineNumber, Message: fmt.Sprintf("unknown pseudo-op %q", sl.Mnemonic)}
	}
}

func encodeFCB(sl *SourceLine, symtab *SymbolTable) ([]byte, *AssembleError) {
	items := splitList(sl.OperandText)
	out := make([]byte, 0, len(items))
	for _, item := range items {
		val, err := resolveExpr(item, symtab, sl.LineNumber)
		if err != nil {
			return nil, err
		}
		if val < 0 || val > 0xFF {
			return nil, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("FCB value %d out of range 0..255", val)}
		}
		out = append(out, byte(val))
	}
	return out, nil
}

func encodeFDB(sl *SourceLine, symtab *SymbolTable) ([]byte, *AssembleError) {
	items := splitList(sl.OperandText)
	out := make([]byte, 0, len(items)*2)
	for _, item := range items {
		val, err := resolveExpr(item, symtab, sl.LineNumber)
		if err != nil {
			return nil, err
		}
		if val < 0 || val > 0xFFFF {
			return nil, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("FDB value %d out of range 0..65535", val)}
		}
		out = append(out, byte(val>>8), byte(val))
	}
	return out, nil
}

func encodeInstruction(sl *SourceLine, p1 *Pass1Line, symtab *SymbolTable) ([]byte, int64, bool, *AssembleError) {
	mnemonic, operand := normalizeAccumulatorForm(sl.Mnemonic, sl.OperandText)
	operand = strings.TrimSpace(operand)
	mode := p1.Mode

	entry, err := opcode.Lookup(mnemonic, mode)
	if err != nil {
		return nil, 0, false, &AssembleError{Kind: ErrUnsupportedMode, Line: sl.LineNumber, Message: err.Error()}
	}

	switch mode {
	case opcode.Inherent, opcode.Accumulator:
		return []byte{entry.Opcode}, 0, false, nil

	case opcode.Immediate:
		text := strings.TrimPrefix(operand, "#")
		val, rerr := resolveExpr(text, symtab, sl.LineNumber)
		if rerr != nil {
			return nil, 0, false, rerr
		}
		if entry.Length == 3 {
			if val < 0 || val > 0xFFFF {
				return nil, 0, false, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("immediate value %d out of range 0..65535", val)}
			}
			return []byte{entry.Opcode, byte(val >> 8), byte(val)}, val, true, nil
		}
		if val < 0 || val > 0xFF {
			return nil, 0, false, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("immediate value %d out of range 0..255", val)}
		}
		return []byte{entry.Opcode, byte(val)}, val, true, nil

	case opcode.Direct:
		val, rerr := resolveExpr(operand, symtab, sl.LineNumber)
		if rerr != nil {
			return nil, 0, false, rerr
		}
		if val < 0 || val > 0xFF {
			return nil, 0, false, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("direct address %d out of range 0..255", val)}
		}
		return []byte{entry.Opcode, byte(val)}, val, true, nil

	case opcode.Extended:
		val, rerr := resolveExpr(operand, symtab, sl.LineNumber)
		if rerr != nil {
			return nil, 0, false, rerr
		}
		if val < 0 || val > 0xFFFF {
			return nil, 0, false, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("extended address %d out of range 0..65535", val)}
		}
		return []byte{entry.Opcode, byte(val >> 8), byte(val)}, val, true, nil

	case opcode.Indexed:
		offsetText, ok := splitIndexed(operand)
		if !ok {
			return nil, 0, false, &AssembleError{Kind: ErrMalformedOperand, Line: sl.LineNumber, Message: fmt.Sprintf("indexed operand %q must be of the form offset,X", operand)}
		}
		val, rerr := resolveExpr(offsetText, symtab, sl.LineNumber)
		if rerr != nil {
			return nil, 0, false, rerr
		}
		if val < 0 || val > 0xFF {
			return nil, 0, false, &AssembleError{Kind: ErrOperandRange, Line: sl.LineNumber, Message: fmt.Sprintf("indexed offset %d out of range 0..255", val)}
		}
		return []byte{entry.Opcode, byte(val)}, val, true, nil

	case opcode.Relative:
		target, rerr := resolveExpr(operand, symtab, sl.LineNumber)
		if rerr != nil {
			return nil, 0, false, rerr
		}
		disp := target - int64(p1.Address) - 2
		if disp < -128 || disp > 127 {
			return nil, 0, false, &AssembleError{Kind: ErrBranchRange, Line: sl.LineNumber, Message: fmt.Sprintf("branch target %q out of range (displacement %d)", operand, disp)}
		}
		return []byte{entry.Opcode, byte(int8(disp))}, target, true, nil

	default:
		return nil, 0, false, &AssembleError{Kind: ErrMalformedOperand, Line: sl.LineNumber, Message: "unhandled addressing mode"}
	}
}
