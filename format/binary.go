// Package format renders an assembled Program as a flat binary image, an
// Intel HEX file, or a human-readable listing.
package format

import (
	"sort"

	"github.com/Urethramancer/m6800/assembler"
)

// sortedSegmentAddrs returns the start addresses of p's segments in
// ascending order.
func sortedSegmentAddrs(p *assembler.Program) []uint16 {
	addrs := make([]uint16, 0, len(p.Segments))
	for addr := range p.Segments {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// BinaryImage renders p as a single flat byte slice spanning from its
// lowest segment address to the end of its highest one. Gaps between
// segments are filled with 0x00, since a flat image has no way to
// represent a hole.
func BinaryImage(p *assembler.Program) []byte {
	addrs := sortedSegmentAddrs(p)
	if len(addrs) == 0 {
		return nil
	}

	lo := addrs[0]
	var hi uint16
	for _, addr := range addrs {
		end := addr + uint16(len(p.Segments[addr]))
		if end > hi {
			hi = end
		}
	}

	img := make([]byte, int(hi)-int(lo))
	for _, addr := range addrs {
		data := p.Segments[addr]
		copy(img[int(addr)-int(lo):], data)
	}
	return img
}

// BinaryImageBase returns the start address BinaryImage's image is relative
// to, so callers can report absolute addresses alongside the flat bytes.
func BinaryImageBase(p *assembler.Program) uint16 {
	addrs := sortedSegmentAddrs(p)
	if len(addrs) == 0 {
		return 0
	}
	return addrs[0]
}
