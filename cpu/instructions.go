package cpu

import "github.com/Urethramancer/m6800/opcode"

// handlerFunc executes one decoded instruction. ea has already been
// computed from the bytes following the opcode; PC has already been
// advanced past the whole instruction by the time the handler runs, so a
// handler that needs the return address (JSR, BSR) can read it straight
// from c.PC.
type handlerFunc func(c *CPU, ea EA)

// dispatch is a dense, byte-indexed function table: Step uses the opcode
// byte itself to find a handler, with no switch on mnemonic strings.
var dispatch [256]handlerFunc

// bind registers fn as the handler for mnemonic in mode. It panics on a
// mismatch between this package's registrations and the opcode package's
// table, which can only happen from a programming error in one of the two.
func bind(mnemonic string, mode opcode.Mode, fn handlerFunc) {
	entry, err := opcode.Lookup(mnemonic, mode)
	if err != nil {
		panic(err)
	}
	dispatch[entry.Opcode] = fn
}

func init() {
	registerLoadStore()
	registerArithmetic()
	registerLogic()
	registerShift()
	registerIncDec()
	registerTransfer()
	registerBranch()
	registerFlow()
	registerMisc()
}
