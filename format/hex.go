package format

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6800/assembler"
)

const hexRecordDataLen = 16

// IntelHex renders p as Intel HEX: one data record per 16-byte chunk of
// each segment, in ascending address order, terminated by an end-of-file
// record.
func IntelHex(p *assembler.Program) string {
	var b strings.Builder
	for _, addr := range sortedSegmentAddrs(p) {
		data := p.Segments[addr]
		for off := 0; off < len(data); off += hexRecordDataLen {
			end := off + hexRecordDataLen
			if end > len(data) {
				end = len(data)
			}
			writeRecord(&b, addr+uint16(off), data[off:end])
		}
	}
	b.WriteString(":00000001FF\n")
	return b.String()
}

// writeRecord appends one Intel HEX data record for chunk, starting at
// addr, to b.
func writeRecord(b *strings.Builder, addr uint16, chunk []byte) {
	sum := byte(len(chunk))
	sum += byte(addr >> 8)
	sum += byte(addr)
	// record type is 00 (data), contributing nothing to the checksum

	fmt.Fprintf(b, ":%02X%04X00", len(chunk), addr)
	for _, c := range chunk {
		fmt.Fprintf(b, "%02X", c)
		sum += c
	}
	checksum := byte(0x100 - int(sum))
	fmt.Fprintf(b, "%02X\n", checksum)
}
