package format

import (
	"strconv"
	"strings"
	"testing"

	"github.com/Urethramancer/m6800/assembler"
)

func assembleOrFatal(t *testing.T, src string) *assembler.Program {
	t.Helper()
	res := assembler.Assemble(src)
	if !res.OK() {
		t.Fatalf("assembly errors: %v", res.Errors)
	}
	return res.Program
}

func TestBinaryImageContiguous(t *testing.T) {
	p := assembleOrFatal(t, `
	ORG $0000
	LDAA #$05
	SWI
`)
	img := BinaryImage(p)
	want := []byte{0x86, 0x05, 0x3F}
	if len(img) != len(want) {
		t.Fatalf("image length = %d, want %d (% X)", len(img), len(want), img)
	}
	for i := range want {
		if img[i] != want[i] {
			t.Fatalf("image[%d] = %02X, want %02X", i, img[i], want[i])
		}
	}
}

func TestBinaryImageFillsGap(t *testing.T) {
	p := assembleOrFatal(t, `
	ORG $0000
	NOP
	ORG $0010
	SWI
`)
	img := BinaryImage(p)
	if len(img) != 0x11 {
		t.Fatalf("image length = %d, want 17", len(img))
	}
	if img[0] != 0x01 {
		t.Fatalf("img[0] = %02X, want 01 (NOP)", img[0])
	}
	if img[0x10] != 0x3F {
		t.Fatalf("img[0x10] = %02X, want 3F (SWI)", img[0x10])
	}
	for i := 1; i < 0x10; i++ {
		if img[i] != 0 {
			t.Fatalf("img[%d] = %02X, want 00 in gap", i, img[i])
		}
	}
}

func TestIntelHexChecksum(t *testing.T) {
	p := assembleOrFatal(t, `
	ORG $0000
	LDAA #$05
	SWI
`)
	out := IntelHex(p)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d records, want 2 (one data, one EOF): %q", len(lines), out)
	}

	data := lines[0]
	if !strings.HasPrefix(data, ":03000000") {
		t.Fatalf("data record = %q, want prefix :03000000", data)
	}
	if !strings.Contains(strings.ToUpper(data), "8605") {
		t.Fatalf("data record = %q, want it to carry payload 8605", data)
	}

	if lines[1] != ":00000001FF" {
		t.Fatalf("EOF record = %q, want :00000001FF", lines[1])
	}

	verifyChecksum(t, data)
}

func verifyChecksum(t *testing.T, record string) {
	t.Helper()
	if record[0] != ':' {
		t.Fatalf("record %q missing leading colon", record)
	}
	body := record[1:]
	var sum int64
	for i := 0; i+2 <= len(body); i += 2 {
		b, err := strconv.ParseInt(body[i:i+2], 16, 16)
		if err != nil {
			t.Fatalf("invalid hex byte in %q: %v", record, err)
		}
		sum += b
	}
	if sum&0xFF != 0 {
		t.Fatalf("record %q checksum does not sum to 0 mod 256 (sum=%d)", record, sum)
	}
}

func TestListingIncludesSourceText(t *testing.T) {
	p := assembleOrFatal(t, `
	ORG $0000
	LDAA #$05
	SWI
`)
	out := Listing(p)
	if !strings.Contains(out, "LDAA") {
		t.Fatalf("listing missing source text: %q", out)
	}
	if !strings.Contains(out, "8605") {
		t.Fatalf("listing missing machine code: %q", out)
	}
}
