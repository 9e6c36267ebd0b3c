package disassembler

import "testing"

func TestDisassembleBasicSequence(t *testing.T) {
	code := []byte{0x86, 0x05, 0x4A, 0x26, 0xFD, 0x3F} // LDAA #$05 / DECA / BNE -3 / SWI
	instrs := Disassemble(code, 0)
	if len(instrs) != 4 {
		t.Fatalf("got %d instructions, want 4: %+v", len(instrs), instrs)
	}

	want := []string{"LDAA #$05", "DECA", "BNE $0002", "SWI"}
	for i, in := range instrs {
		if in.Text != want[i] {
			t.Fatalf("instr[%d] = %q, want %q", i, in.Text, want[i])
		}
	}

	if instrs[0].Address != 0 || instrs[1].Address != 2 || instrs[2].Address != 3 || instrs[3].Address != 5 {
		t.Fatalf("unexpected addresses: %+v", instrs)
	}
}

func TestDisassembleExtendedAndIndexed(t *testing.T) {
	code := []byte{0xB6, 0x12, 0x34, 0xA6, 0x05} // LDAA $1234 / LDAA $05,X
	instrs := Disassemble(code, 0x1000)
	if len(instrs) != 2 {
		t.Fatalf("got %d instructions, want 2", len(instrs))
	}
	if instrs[0].Text != "LDAA $1234" {
		t.Fatalf("instr[0] = %q, want LDAA $1234", instrs[0].Text)
	}
	if instrs[1].Text != "LDAA $05,X" {
		t.Fatalf("instr[1] = %q, want LDAA $05,X", instrs[1].Text)
	}
}

func TestDisassembleUnknownOpcodeFallsBackToFCB(t *testing.T) {
	code := []byte{0x02, 0x01} // unassigned, then NOP
	instrs := Disassemble(code, 0)
	if len(instrs) != 2 {
		t.Fatalf("got %d instructions, want 2", len(instrs))
	}
	if instrs[0].Text != "FCB $02" {
		t.Fatalf("instr[0] = %q, want FCB $02", instrs[0].Text)
	}
	if instrs[1].Text != "NOP" {
		t.Fatalf("instr[1] = %q, want NOP", instrs[1].Text)
	}
}

func TestListingFormatsHexAndText(t *testing.T) {
	instrs := Disassemble([]byte{0x01}, 0)
	out := Listing(instrs)
	if out == "" {
		t.Fatalf("Listing returned empty string")
	}
	want := "0000  01        NOP\n"
	if out != want {
		t.Fatalf("Listing = %q, want %q", out, want)
	}
}
