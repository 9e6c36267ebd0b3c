package format

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6800/assembler"
)

// Listing renders p as a traditional assembler listing: one line per
// entry of p.Lines, showing its address and encoded bytes alongside the
// original source text. Blank and comment-only source lines, and lines
// after END, are not in p.Lines and so do not appear.
func Listing(p *assembler.Program) string {
	var b strings.Builder
	for _, l := range p.Lines {
		hex := strings.Builder{}
		for _, c := range l.MachineCode {
			fmt.Fprintf(&hex, "%02X", c)
		}

		src := l.Source
		text := src.RawText
		if len(l.MachineCode) > 0 {
			fmt.Fprintf(&b, "%04X  %-12s  %s\n", l.Address, hex.String(), text)
		} else {
			fmt.Fprintf(&b, "%4s  %-12s  %s\n", "", "", text)
		}
	}
	return b.String()
}
