package assembler

import (
	"encoding/hex"
	"testing"
)

func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	result := Assemble(src)
	if !result.OK() {
		t.Fatalf("%s: unexpected errors: %v", name, result.Errors)
	}

	want, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("%s: bad expected hex fixture: %v", name, err)
	}

	var got []byte
	for _, addr := range result.Program.Order {
		got = append(got, result.Program.Segments[addr]...)
	}

	if len(got) != len(want) {
		t.Fatalf("%s: got %d byte(s), want %d\n got: % X\nwant: % X", name, len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: byte %d mismatch: got %02X, want %02X\n got: % X\nwant: % X", name, i, got[i], want[i], got, want)
		}
	}
}

func TestBasicEncodings(t *testing.T) {
	cases := []struct {
		name string
		src  string
		hex  string
	}{
		{"immediate-load", "\tORG $1000\n\tLDAA #$05\n", "8605"},
		{"direct-store", "\tORG $0010\n\tSTAA $20\n", "9720"},
		{"extended-load", "\tORG $1000\n\tLDAB $2000\n", "F62000"},
		{"indexed-add", "\tORG $1000\n\tADDA $04,X\n", "AB04"},
		{"inherent", "\tNOP\n\tABA\n\tRTS\n", "011B39"},
		{"accumulator-op", "\tCLRA\n\tINCB\n", "4F5C"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assembleAndMatchHex(t, c.name, c.src, c.hex)
		})
	}
}

func TestCounterLoop(t *testing.T) {
	src := "" +
		"\tORG $1000\n" +
		"\tLDAA #$05\n" +
		"LOOP\tDECA\n" +
		"\tBNE LOOP\n" +
		"\tSWI\n"
	assembleAndMatchHex(t, "counter-loop", src, "86054A26FD3F")
}

// TestSpecScenarioCounterLoopUsesLdaShorthand reproduces scenario 1 from
// the spec's end-to-end examples verbatim, including its use of the bare
// LDA shorthand for LDAA.
func TestSpecScenarioCounterLoopUsesLdaShorthand(t *testing.T) {
	src := "" +
		"\tORG $1000\n" +
		"\tLDA #$05\n" +
		"LOOP\tDECA\n" +
		"\tBNE LOOP\n" +
		"\tSWI\n" +
		"\tEND\n"
	assembleAndMatchHex(t, "spec-scenario-1-lda", src, "86054A26FD3F")
}

// TestSpecScenarioFillMemoryUsesStaShorthand reproduces the addressing
// forms from scenario 2, including the bare STA shorthand for STAA.
func TestSpecScenarioFillMemoryUsesStaShorthand(t *testing.T) {
	src := "" +
		"\tORG $1000\n" +
		"\tLDX #$2000\n" +
		"\tLDA #$01\n" +
		"LOOP\tSTA 0,X\n" +
		"\tINCA\n" +
		"\tINX\n" +
		"\tCMPA #$0B\n" +
		"\tBNE LOOP\n" +
		"\tSWI\n" +
		"\tEND\n"
	// CE 2000 | 86 01 | (LOOP:) A7 00 | 4C | 08 | 81 0B | 26 F8 | 3F
	assembleAndMatchHex(t, "spec-scenario-2-sta", src, "CE20008601A7004C08810B26F83F")
}

// TestSpecScenarioIndexedLoadUsesLdaShorthand reproduces scenario 6: LDA
// with an indexed operand.
func TestSpecScenarioIndexedLoadUsesLdaShorthand(t *testing.T) {
	src := "\tORG $0000\n\tLDA $05,X\n"
	assembleAndMatchHex(t, "spec-scenario-6-lda-indexed", src, "A605")
}

func TestForwardReferenceAssumesExtended(t *testing.T) {
	src := "" +
		"\tORG $0000\n" +
		"\tLDAA TARGET\n" +
		"TARGET\tNOP\n"
	// LDAA of a forward label must encode Extended (B6) even though the
	// label turns out to live at $0003, inside the zero page where a
	// backward reference would get Direct: forward references default to
	// Extended regardless of the eventual value.
	assembleAndMatchHex(t, "forward-ref-extended", src, "B6000301")
}

func TestBackwardReferenceDirect(t *testing.T) {
	src := "" +
		"\tORG $0000\n" +
		"HERE\tNOP\n" +
		"\tLDAA HERE\n"
	assembleAndMatchHex(t, "backward-ref-direct", src, "019600")
}

func TestDirectivesEncodings(t *testing.T) {
	cases := []struct {
		name string
		src  string
		hex  string
	}{
		{"fcb-list", "\tORG $0000\n\tFCB $01,$02,$03\n", "010203"},
		{"fdb-list", "\tORG $0000\n\tFDB $1234,$5678\n", "12345678"},
		{"equ-reference", "CONST\tEQU $42\n\tORG $0000\n\tLDAA #CONST\n", "8642"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assembleAndMatchHex(t, c.name, c.src, c.hex)
		})
	}
}

func TestDuplicateSymbolIsError(t *testing.T) {
	src := "" +
		"\tORG $0000\n" +
		"LOOP\tNOP\n" +
		"LOOP\tNOP\n"
	result := Assemble(src)
	if result.OK() {
		t.Fatalf("expected a duplicate-symbol error, got none")
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == ErrDuplicateSymbol {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrDuplicateSymbol, got %v", result.Errors)
	}
}

func TestUndefinedSymbolIsError(t *testing.T) {
	src := "\tORG $0000\n\tLDAA #MISSING\n"
	result := Assemble(src)
	if result.OK() {
		t.Fatalf("expected an undefined-symbol error, got none")
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == ErrUndefinedSymbol {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrUndefinedSymbol, got %v", result.Errors)
	}
}

func TestUnknownMnemonicIsError(t *testing.T) {
	src := "\tORG $0000\n\tFROB #$01\n"
	result := Assemble(src)
	if result.OK() {
		t.Fatalf("expected an unknown-mnemonic error, got none")
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == ErrUnknownMnemonic {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrUnknownMnemonic, got %v", result.Errors)
	}
}

func TestBranchOutOfRangeIsError(t *testing.T) {
	var src string
	src = "\tORG $0000\n\tBRA FAR\n"
	for i := 0; i < 200; i++ {
		src += "\tNOP\n"
	}
	src += "FAR\tNOP\n"

	result := Assemble(src)
	if result.OK() {
		t.Fatalf("expected a branch-range error, got none")
	}
	found := false
	for _, e := range result.Errors {
		if e.Kind == ErrBranchRange {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ErrBranchRange, got %v", result.Errors)
	}
}

func TestSymbolTableIdempotentAcrossAssembles(t *testing.T) {
	src := "\tORG $1000\nLOOP\tNOP\n\tBRA LOOP\n"
	r1 := Assemble(src)
	r2 := Assemble(src)
	if !r1.OK() || !r2.OK() {
		t.Fatalf("unexpected errors: %v / %v", r1.Errors, r2.Errors)
	}
	v1, _ := r1.Program.Symbols.Lookup("LOOP")
	v2, _ := r2.Program.Symbols.Lookup("LOOP")
	if v1 != v2 {
		t.Fatalf("repeated assembly of identical source produced different addresses: %04X vs %04X", v1, v2)
	}
}
