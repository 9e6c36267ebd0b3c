// Package disassembler turns raw 6800 machine code back into mnemonic
// source text, one instruction at a time, using the same opcode catalogue
// the assembler and CPU simulator share.
package disassembler

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Urethramancer/m6800/opcode"
)

// Instruction is one decoded instruction: its address, its raw bytes, and
// the mnemonic/operand text it disassembles to.
type Instruction struct {
	Address uint16
	Bytes   []byte
	Text    string
}

// Disassemble walks code from address base, decoding one instruction after
// another until code is exhausted. An unassigned opcode byte is rendered
// as a raw FCB rather than stopping the walk, so a listing can still show
// what follows it.
func Disassemble(code []byte, base uint16) []Instruction {
	var out []Instruction
	addr := base
	i := 0
	for i < len(code) {
		entry, err := opcode.Decode(code[i])
		if err != nil {
			out = append(out, Instruction{
				Address: addr,
				Bytes:   code[i : i+1],
				Text:    fmt.Sprintf("FCB $%02X", code[i]),
			})
			i++
			addr++
			continue
		}

		length := int(entry.Length)
		if i+length > len(code) {
			// truncated instruction at the end of the buffer
			out = append(out, Instruction{
				Address: addr,
				Bytes:   code[i:],
				Text:    fmt.Sprintf("%s <truncated>", entry.Mnemonic),
			})
			break
		}

		operandBytes := code[i+1 : i+length]
		text := entry.Mnemonic
		if operand := formatOperand(entry, addr, operandBytes); operand != "" {
			text = text + " " + operand
		}

		out = append(out, Instruction{
			Address: addr,
			Bytes:   append([]byte{}, code[i:i+length]...),
			Text:    text,
		})
		i += length
		addr += uint16(length)
	}
	return out
}

// formatOperand renders the operand text for entry, given the operand
// bytes that follow its opcode and the address the instruction starts at
// (needed to resolve a Relative displacement to an absolute target).
func formatOperand(entry opcode.Entry, instrAddr uint16, operand []byte) string {
	switch entry.Mode {
	case opcode.Inherent, opcode.Accumulator:
		return ""

	case opcode.Immediate:
		if entry.Length == 3 {
			return fmt.Sprintf("#$%04X", binary.BigEndian.Uint16(operand))
		}
		return fmt.Sprintf("#$%02X", operand[0])

	case opcode.Direct:
		return fmt.Sprintf("$%02X", operand[0])

	case opcode.Extended:
		return fmt.Sprintf("$%04X", binary.BigEndian.Uint16(operand))

	case opcode.Indexed:
		return fmt.Sprintf("$%02X,X", operand[0])

	case opcode.Relative:
		disp := int8(operand[0])
		target := uint16(int32(instrAddr) + int32(entry.Length) + int32(disp))
		return fmt.Sprintf("$%04X", target)

	default:
		return ""
	}
}

// Listing renders a sequence of decoded instructions as one line per
// instruction: address, raw hex bytes, then mnemonic text.
func Listing(instrs []Instruction) string {
	var b strings.Builder
	for _, in := range instrs {
		hex := strings.Builder{}
		for _, c := range in.Bytes {
			fmt.Fprintf(&hex, "%02X", c)
		}
		fmt.Fprintf(&b, "%04X  %-8s  %s\n", in.Address, hex.String(), in.Text)
	}
	return b.String()
}
