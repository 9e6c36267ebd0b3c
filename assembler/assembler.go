package assembler

import "strings"

// Result is the outcome of Assemble: either a valid Program (Errors is
// empty) or the complete set of diagnostics found across both passes.
type Result struct {
	Program *Program
	Errors  []*AssembleError
}

// OK reports whether assembly produced no errors.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Program is the fully assembled output. Segments holds contiguous runs of
// machine code keyed by their start address; Lines carries every encoded
// source line, in file order, for listings.
type Program struct {
	EntryAddress uint16
	Segments     map[uint16][]byte
	Order        []uint16
	Lines        []*AssemblyLine
	Symbols      *SymbolTable
}

// Assemble lexes src, then runs pass one (addresses and symbols) followed by
// pass two (opcode and operand encoding), accumulating errors from every
// stage rather than stopping at the first one.
func Assemble(src string) *Result {
	sources, lexErrs := lexSource(src)

	p1 := runPassOne(sources)
	errs := append(lexErrs, p1.errors...)

	assembled, p2errs := runPassTwo(p1.lines, p1.symbols)
	errs = append(errs, p2errs...)

	program := buildProgram(assembled, p1.symbols, p1.entry)
	return &Result{Program: program, Errors: errs}
}

func lexSource(src string) ([]*SourceLine, []*AssembleError) {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	rawLines := strings.Split(normalized, "\n")

	sources := make([]*SourceLine, 0, len(rawLines))
	var errs []*AssembleError
	for i, raw := range rawLines {
		sl, err := lexLine(raw, i+1)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sources = append(sources, sl)
	}
	return sources, errs
}

// buildProgram coalesces consecutive encoded lines into contiguous memory
// segments, so the format package can render a binary image or Intel HEX
// file without re-walking the line list.
func buildProgram(lines []*AssemblyLine, symtab *SymbolTable, entry uint16) *Program {
	p := &Program{EntryAddress: entry, Segments: make(map[uint16][]byte), Lines: lines, Symbols: symtab}

	var curStart uint16
	var curBytes []byte
	have := false
	flush := func() {
		if have && len(curBytes) > 0 {
			p.Segments[curStart] = curBytes
			p.Order = append(p.Order, curStart)
		}
		have = false
		curBytes = nil
	}

	for _, l := range lines {
		if len(l.MachineCode) == 0 {
			continue
		}
		if have && l.Address == curStart+uint16(len(curBytes)) {
			curBytes = append(curBytes, l.MachineCode...)
			continue
		}
		flush()
		curStart = l.Address
		curBytes = append([]byte{}, l.MachineCode...)
		have = true
	}
	flush()

	return p
}
