package assembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6800/opcode"
)

type passOneResult struct {
	lines   []*Pass1Line
	symbols *SymbolTable
	errors  []*AssembleError
	entry   uint16
}

// runPassOne walks the lexed source once, assigning each line an address,
// binding labels in the symbol table, and — for instructions — committing to
// an addressing mode that pass two must reuse unchanged. A line after END is
// flagged and otherwise ignored, matching the grammar's "rest of file is not
// assembled" rule.
func runPassOne(sources []*SourceLine) *passOneResult {
	res := &passOneResult{symbols: NewSymbolTable()}
	var lc uint32
	haveEntry := false
	sawEnd := false

	for _, sl := range sources {
		if sawEnd {
			if sl.Kind != BodyEmpty {
				res.errors = append(res.errors, &AssembleError{
					Kind: ErrUnknownPseudoOp, Line: sl.LineNumber,
					Message: "line follows END and will not be assembled",
				})
			}
			continue
		}

		if sl.Kind == BodyEmpty {
			continue
		}

		isEqu := sl.Kind == BodyPseudo && sl.Mnemonic == "EQU"
		if sl.Label != "" && !isEqu {
			if err := res.symbols.Define(sl.Label, uint16(lc), sl.LineNumber); err != nil {
				res.errors = append(res.errors, err.(*AssembleError))
			}
		}

		switch sl.Kind {
		case BodyPseudo:
			switch sl.Mnemonic {
			case "ORG":
				val, err := resolveExpr(sl.OperandText, res.symbols, sl.LineNumber)
				if err != nil {
					res.errors = append(res.errors, err)
					continue
				}
				lc = uint32(val) & 0xFFFF
				if !haveEntry {
					res.entry = uint16(lc)
					haveEntry = true
				}
				res.lines = append(res.lines, &Pass1Line{Source: sl, Address: uint16(lc), Mode: opcode.Inherent, Size: 0})

			case "EQU":
				if sl.Label == "" {
					res.errors = append(res.errors, &AssembleError{Kind: ErrBadDirective, Line: sl.LineNumber, Message: "EQU requires a label"})
					continue
				}
				val, err := resolveExpr(sl.OperandText, res.symbols, sl.LineNumber)
				if err != nil {
					res.errors = append(res.errors, err)
					continue
				}
				if err := res.symbols.Define(sl.Label, uint16(val), sl.LineNumber); err != nil {
					res.errors = append(res.errors, err.(*AssembleError))
					continue
				}
				res.lines = append(res.lines, &Pass1Line{Source: sl, Address: uint16(lc), Mode: opcode.Inherent, Size: 0})

			case "FCB":
				n := uint16(len(splitList(sl.OperandText)))
				res.lines = append(res.lines, &Pass1Line{Source: sl, Address: uint16(lc), Mode: opcode.Inherent, Size: n})
				lc += uint32(n)

			case "FDB":
				n := uint16(len(splitList(sl.OperandText)))
				res.lines = append(res.lines, &Pass1Line{Source: sl, Address: uint16(lc), Mode: opcode.Inherent, Size: n * 2})
				lc += uint32(n) * 2

			case "END":
				sawEnd = true
				res.lines = append(res.lines, &Pass1Line{Source: sl, Address: uint16(lc), Mode: opcode.Inherent, Size: 0})

			default:
				res.errors = append(res.errors, &AssembleError{
					Kind: ErrUnknownPseudoOp, Line: sl.LineNumber,
					Message: fmt.Sprintf("unknown pseudo-op %q", sl.Mnemonic),
				})
			}

		case BodyInstruction:
			mode, size, err := sizeInstruction(sl, res.symbols)
			if err != nil {
				res.errors = append(res.errors, err)
				continue
			}
			res.lines = append(res.lines, &Pass1Line{Source: sl, Address: uint16(lc), Mode: mode, Size: size})
			lc += uint32(size)
		}
	}

	return res
}

// sizeInstruction infers the addressing mode for sl and looks up its byte
// length in the opcode table.
func sizeInstruction(sl *SourceLine, symtab *SymbolTable) (opcode.Mode, uint16, *AssembleError) {
	mnemonic, operand := normalizeAccumulatorForm(sl.Mnemonic, sl.OperandText)
	operand = strings.TrimSpace(operand)

	if !opcode.Known(mnemonic) {
		return 0, 0, &AssembleError{Kind: ErrUnknownMnemonic, Line: sl.LineNumber, Message: fmt.Sprintf("unknown mnemonic %q", sl.Mnemonic)}
	}

	mode, err := inferMode(mnemonic, operand, symtab)
	if err != nil {
		return 0, 0, &AssembleError{Kind: ErrMalformedOperand, Line: sl.LineNumber, Message: err.Error()}
	}

	entry, lookErr := opcode.Lookup(mnemonic, mode)
	if lookErr != nil {
		return 0, 0, &AssembleError{Kind: ErrUnsupportedMode, Line: sl.LineNumber, Message: lookErr.Error()}
	}
	return mode, uint16(entry.Length), nil
}

// splitList splits a comma-separated FCB/FDB operand list, dropping empty
// entries caused by stray whitespace.
func splitList(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		p := strings.TrimSpace(part)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveExpr evaluates a single literal-or-symbol expression. The grammar
// never requires more than this.
func resolveExpr(text string, symtab *SymbolTable, line int) (int64, *AssembleError) {
	text = strings.TrimSpace(text)
	val, perr := parseNumber(text)
	if perr == nil {
		return val, nil
	}
	// Identifiers start with a letter or '_', so anything starting with a
	// literal prefix, a sign or a digit is a malformed number, not a symbol.
	if text != "" && strings.IndexByte("$%+-0123456789", text[0]) != -1 {
		return 0, &AssembleError{Kind: ErrBadNumber, Line: line, Message: perr.Error()}
	}
	if val, ok := symtab.Lookup(text); ok {
		return int64(val), nil
	}
	return 0, &AssembleError{Kind: ErrUndefinedSymbol, Line: line, Message: fmt.Sprintf("undefined symbol %q", text)}
}
