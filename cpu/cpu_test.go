package cpu

import "testing"

func newLoadedCPU(code []byte, at uint16) *CPU {
	c := New()
	for i, b := range code {
		c.Mem.WriteByte(at+uint16(i), b)
	}
	c.PC = at
	return c
}

func TestLoadImmediateSetsFlags(t *testing.T) {
	c := newLoadedCPU([]byte{0x86, 0x00}, 0) // LDAA #$00
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 0 {
		t.Fatalf("A = %02X, want 00", c.A)
	}
	if !c.CCR.Z {
		t.Fatalf("Z flag not set for zero load")
	}
	if c.CCR.N {
		t.Fatalf("N flag incorrectly set for zero load")
	}
}

func TestAddSetsCarryWithoutOverflow(t *testing.T) {
	c := newLoadedCPU([]byte{0x8B, 0x01}, 0) // ADDA #$01
	c.A = 0xFF
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 0x00 {
		t.Fatalf("A = %02X, want 00", c.A)
	}
	if !c.CCR.C {
		t.Fatalf("carry not set for 0xFF + 0x01")
	}
	if !c.CCR.Z {
		t.Fatalf("zero not set for 0xFF + 0x01 = 0x00")
	}
	if c.CCR.V {
		t.Fatalf("overflow incorrectly set for 0xFF + 0x01")
	}
}

func TestAddSignedOverflow(t *testing.T) {
	c := newLoadedCPU([]byte{0x8B, 0x10}, 0) // ADDA #$10
	c.A = 0x70
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 0x80 {
		t.Fatalf("A = %02X, want 80", c.A)
	}
	if !c.CCR.V {
		t.Fatalf("overflow not set for 0x70 + 0x10 = 0x80")
	}
	if !c.CCR.N {
		t.Fatalf("negative not set for result 0x80")
	}
}

func TestStoreAndLoadRoundTrip(t *testing.T) {
	c := newLoadedCPU([]byte{
		0x86, 0x7E, // LDAA #$7E
		0x97, 0x50, // STAA $50
		0x96, 0x50, // LDAA $50
	}, 0)
	for i := 0; i < 3; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}
	if c.A != 0x7E {
		t.Fatalf("A = %02X, want 7E after store/load round trip", c.A)
	}
	if c.Mem.ReadByte(0x50) != 0x7E {
		t.Fatalf("memory at $50 = %02X, want 7E", c.Mem.ReadByte(0x50))
	}
}

func TestBranchTakenAndNotTaken(t *testing.T) {
	// BEQ +2 when Z set should land past the following NOP.
	c := newLoadedCPU([]byte{0x27, 0x02, 0x01, 0x01}, 0)
	c.CCR.Z = true
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PC != 4 {
		t.Fatalf("PC = %04X, want 0004 after taken branch", c.PC)
	}

	c2 := newLoadedCPU([]byte{0x27, 0x02, 0x01, 0x01}, 0)
	c2.CCR.Z = false
	if _, err := c2.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c2.PC != 2 {
		t.Fatalf("PC = %04X, want 0002 after non-taken branch", c2.PC)
	}
}

func TestJsrAndRts(t *testing.T) {
	c := newLoadedCPU([]byte{
		0xBD, 0x00, 0x10, // JSR $0010
	}, 0)
	c.Mem.WriteByte(0x0010, 0x39) // RTS
	if _, err := c.Step(); err != nil {
		t.Fatalf("JSR: unexpected error: %v", err)
	}
	if c.PC != 0x0010 {
		t.Fatalf("PC = %04X, want 0010 after JSR", c.PC)
	}
	if _, err := c.Step(); err != nil {
		t.Fatalf("RTS: unexpected error: %v", err)
	}
	if c.PC != 0x0003 {
		t.Fatalf("PC = %04X, want 0003 after RTS", c.PC)
	}
	if c.SP != 0x01FF {
		t.Fatalf("SP = %04X, want 01FF after matched JSR/RTS", c.SP)
	}
}

func TestSwiHaltsAndPushesState(t *testing.T) {
	c := newLoadedCPU([]byte{0x3F}, 0x2000) // SWI
	c.A, c.B, c.X = 0x11, 0x22, 0x3344
	status, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusHalted {
		t.Fatalf("status = %v, want StatusHalted", status)
	}
	if !c.Halted {
		t.Fatalf("CPU not marked halted after SWI")
	}
	if !c.CCR.I {
		t.Fatalf("I flag not set after SWI")
	}
	// PC (low, high), X (low, high), A, B, CCR pushed downward from $01FF.
	if c.SP != 0x01F8 {
		t.Fatalf("SP = %04X, want 01F8 after pushing seven bytes", c.SP)
	}
	stack := []byte{0x01, 0x20, 0x44, 0x33, 0x11, 0x22, 0xC0}
	for i, want := range stack {
		addr := uint16(0x01FF - i)
		if got := c.Mem.ReadByte(addr); got != want {
			t.Fatalf("stack[%04X] = %02X, want %02X", addr, got, want)
		}
	}
}

func TestDecrementAndIncrementOverflow(t *testing.T) {
	c := newLoadedCPU([]byte{0x4A}, 0) // DECA
	c.A = 0x80
	if _, err := c.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.CCR.V {
		t.Fatalf("overflow not set decrementing 0x80")
	}
	if c.A != 0x7F {
		t.Fatalf("A = %02X, want 7F", c.A)
	}

	c2 := newLoadedCPU([]byte{0x4C}, 0) // INCA
	c2.A = 0x7F
	if _, err := c2.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c2.CCR.V {
		t.Fatalf("overflow not set incrementing 0x7F")
	}
	if c2.A != 0x80 {
		t.Fatalf("A = %02X, want 80", c2.A)
	}
}

func TestUnknownOpcodeHalts(t *testing.T) {
	c := newLoadedCPU([]byte{0x02}, 0) // unassigned opcode
	status, err := c.Step()
	if err == nil {
		t.Fatalf("expected an error decoding an unassigned opcode")
	}
	if status != StatusHalted {
		t.Fatalf("status = %v, want StatusHalted", status)
	}
}
