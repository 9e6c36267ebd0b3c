package cpu

import (
	"errors"
	"fmt"

	"github.com/Urethramancer/m6800/opcode"
)

// Status describes the outcome of a single Step.
type Status int

const (
	StatusRunning Status = iota
	StatusHalted
)

// Step fetches, decodes and executes a single instruction. PC is advanced
// past the instruction before its handler runs, so handlers that push a
// return address (JSR, BSR) or compute a branch target already see the
// address of the next instruction in c.PC.
func (c *CPU) Step() (Status, error) {
	if c.Halted {
		return StatusHalted, nil
	}

	pc0 := c.PC
	op := c.Mem.ReadByte(pc0)
	entry, err := opcode.Decode(op)
	if err != nil {
		c.Halted = true
		c.HaltReason = err.Error()
		return StatusHalted, err
	}

	handler := dispatch[op]
	if handler == nil {
		c.Halted = true
		c.HaltReason = fmt.Sprintf("unimplemented opcode %02X (%s %s)", op, entry.Mnemonic, entry.Mode)
		return StatusHalted, errors.New(c.HaltReason)
	}

	ea := c.effectiveAddress(entry, pc0)
	c.PC = pc0 + uint16(entry.Length)

	handler(c, ea)
	c.Instructions++

	if c.Halted {
		return StatusHalted, nil
	}
	return StatusRunning, nil
}
