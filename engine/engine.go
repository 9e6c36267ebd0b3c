// Package engine drives a cpu.CPU: loading assembled programs into memory,
// stepping or running to completion, and managing breakpoints. It exists to
// give the run8 command line tool the surface it needs — load, step, run,
// dump registers — over a plain CPU.
package engine

import (
	"context"
	"fmt"

	"github.com/Urethramancer/m6800/assembler"
	"github.com/Urethramancer/m6800/cpu"
)

// Status describes the outcome of a Step or a Run.
type Status int

const (
	StatusRunning Status = iota
	StatusHalted
	StatusBreakpoint
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusHalted:
		return "halted"
	case StatusBreakpoint:
		return "breakpoint"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// DefaultExecutionLimit bounds a Run loop against a program that never
// halts.
const DefaultExecutionLimit = 1_000_000

// Result reports what happened after a Step or a Run.
type Result struct {
	Status  Status
	PC      uint16
	Message string
}

// Engine owns a CPU and a set of breakpoints.
type Engine struct {
	CPU          *cpu.CPU
	ExecutionCap int
	breakpoints  map[uint16]struct{}
}

// New returns an Engine with a freshly reset CPU.
func New() *Engine {
	return &Engine{
		CPU:          cpu.New(),
		ExecutionCap: DefaultExecutionLimit,
		breakpoints:  make(map[uint16]struct{}),
	}
}

// Load resets the CPU, writes every segment of p into memory, and sets PC to
// the program's entry address.
func (e *Engine) Load(p *assembler.Program) {
	e.CPU.Reset()
	for addr, data := range p.Segments {
		for i, b := range data {
			e.CPU.Mem.WriteByte(addr+uint16(i), b)
		}
	}
	e.CPU.PC = p.EntryAddress
}

// LoadRaw resets the CPU, writes code directly into memory at addr, and
// sets PC to addr. It exists for loading a flat binary image that never
// went through the assembler.
func (e *Engine) LoadRaw(addr uint16, code []byte) {
	e.CPU.Reset()
	for i, b := range code {
		e.CPU.Mem.WriteByte(addr+uint16(i), b)
	}
	e.CPU.PC = addr
}

// AddBreakpoint arms a breakpoint at addr.
func (e *Engine) AddBreakpoint(addr uint16) { e.breakpoints[addr] = struct{}{} }

// RemoveBreakpoint disarms the breakpoint at addr, if any.
func (e *Engine) RemoveBreakpoint(addr uint16) { delete(e.breakpoints, addr) }

// ClearBreakpoints disarms every breakpoint.
func (e *Engine) ClearBreakpoints() { e.breakpoints = make(map[uint16]struct{}) }

// Breakpoints returns the currently armed addresses, in no particular order.
func (e *Engine) Breakpoints() []uint16 {
	addrs := make([]uint16, 0, len(e.breakpoints))
	for a := range e.breakpoints {
		addrs = append(addrs, a)
	}
	return addrs
}

// Step executes a single instruction, unless PC sits on an armed breakpoint,
// in which case the CPU is left untouched and StatusBreakpoint is reported.
func (e *Engine) Step() Result {
	if _, hit := e.breakpoints[e.CPU.PC]; hit {
		return Result{Status: StatusBreakpoint, PC: e.CPU.PC, Message: "breakpoint"}
	}

	status, err := e.CPU.Step()
	if status == cpu.StatusHalted {
		msg := e.CPU.HaltReason
		if msg == "" && err != nil {
			msg = err.Error()
		}
		return Result{Status: StatusHalted, PC: e.CPU.PC, Message: msg}
	}
	return Result{Status: StatusRunning, PC: e.CPU.PC}
}

// Run steps repeatedly until the CPU halts, a breakpoint is hit, ctx is
// cancelled, or ExecutionCap instructions have run without either.
func (e *Engine) Run(ctx context.Context) Result {
	for i := 0; i < e.ExecutionCap; i++ {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return Result{Status: StatusError, PC: e.CPU.PC, Message: ctx.Err().Error()}
			default:
			}
		}

		res := e.Step()
		if res.Status != StatusRunning {
			return res
		}
	}
	return Result{Status: StatusError, PC: e.CPU.PC, Message: "execution limit exceeded"}
}

// DumpRegisters renders a one-line snapshot of the register file and CCR
// flags.
func (e *Engine) DumpRegisters() string {
	r := e.CPU.Registers
	return fmt.Sprintf("A=%02X B=%02X X=%04X SP=%04X PC=%04X CCR=%s", r.A, r.B, r.X, r.SP, r.PC, e.ccrString())
}

func (e *Engine) ccrString() string {
	c := e.CPU.CCR
	flag := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	return string([]byte{
		flag(c.H, 'H'),
		flag(c.I, 'I'),
		flag(c.N, 'N'),
		flag(c.Z, 'Z'),
		flag(c.V, 'V'),
		flag(c.C, 'C'),
	})
}
