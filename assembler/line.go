package assembler

import "github.com/Urethramancer/m6800/opcode"

// BodyKind classifies what a source line contains once comments and labels
// have been stripped out.
type BodyKind byte

const (
	BodyEmpty BodyKind = iota
	BodyInstruction
	BodyPseudo
)

// SourceLine is the lexer's output for a single line of source text.
type SourceLine struct {
	RawText     string
	LineNumber  int
	Label       string
	Kind        BodyKind
	Mnemonic    string // uppercased instruction mnemonic or pseudo-op name
	OperandText string
	Comment     string
}

// Pass1Line is pass one's immutable output for one source line: the address
// it was assigned and, for instructions, the addressing mode committed to
// for pass two.
type Pass1Line struct {
	Source  *SourceLine
	Address uint16
	Mode    opcode.Mode
	Size    uint16
}

// AssemblyLine is pass two's immutable output: the fully encoded line, ready
// for the format package to render.
type AssemblyLine struct {
	Source          *SourceLine
	Address         uint16
	Mode            opcode.Mode
	ResolvedOperand int64
	HasOperand      bool
	MachineCode     []byte
	Size            uint16
}
