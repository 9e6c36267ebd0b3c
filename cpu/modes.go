package cpu

import "github.com/Urethramancer/m6800/opcode"

// rmwFunc reads a value, computes flags against it, and returns the value to
// write back. It is shared by every instruction that comes in accumulator
// (A/B) and memory (Indexed/Extended) flavours: the shift group, CLR, COM,
// NEG, INC, DEC, and TST.
type rmwFunc func(v byte, c *CPU) byte

// bindRMW registers fn under base+"A" and base+"B" in Accumulator mode, and
// under base itself in Indexed and Extended mode, mirroring the opcode
// table's layout for the read-modify-write instruction group.
func bindRMW(base string, fn rmwFunc) {
	bind(base+"A", opcode.Accumulator, func(c *CPU, ea EA) { c.A = fn(c.A, c) })
	bind(base+"B", opcode.Accumulator, func(c *CPU, ea EA) { c.B = fn(c.B, c) })
	bind(base, opcode.Indexed, func(c *CPU, ea EA) {
		v := c.Mem.ReadByte(ea.Addr)
		c.Mem.WriteByte(ea.Addr, fn(v, c))
	})
	bind(base, opcode.Extended, func(c *CPU, ea EA) {
		v := c.Mem.ReadByte(ea.Addr)
		c.Mem.WriteByte(ea.Addr, fn(v, c))
	})
}
