package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Urethramancer/m6800/assembler"
	"github.com/Urethramancer/m6800/engine"
)

var (
	loadAddress = flag.Uint64("load", 0x0000, "Load address for binary files (decimal, or hex with a 0x prefix).")
	pcAddress   = flag.Uint64("pc", 0, "Initial program counter (decimal, or hex with a 0x prefix), overrides the file's entry address.")
	maxCycles   = flag.Int("cycles", engine.DefaultExecutionLimit, "Maximum number of instructions to execute.")
	breakAt     = flag.String("break", "", "Comma-separated list of breakpoint addresses (hex).")

	regA  = flag.String("a", "", "Set initial value for accumulator A (hex).")
	regB  = flag.String("b", "", "Set initial value for accumulator B (hex).")
	regX  = flag.String("x", "", "Set initial value for index register X (hex).")
	regSP = flag.String("sp", "", "Set initial value for the stack pointer (hex).")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Println("Usage: run8 [options] <filename>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	e := engine.New()

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".asm", ".s":
		log.Printf("Assembling %s...", filename)
		src, err := os.ReadFile(filename)
		if err != nil {
			log.Fatalf("Couldn't read source file: %v", err)
		}
		res := assembler.Assemble(string(src))
		if !res.OK() {
			for _, aerr := range res.Errors {
				log.Println(aerr.Error())
			}
			log.Fatalf("Assembly failed with %d error(s).", len(res.Errors))
		}
		e.Load(res.Program)

	case ".bin":
		log.Printf("Loading binary %s...", filename)
		code, err := os.ReadFile(filename)
		if err != nil {
			log.Fatalf("Couldn't read binary file: %v", err)
		}
		e.LoadRaw(uint16(*loadAddress), code)

	default:
		log.Fatalf("Unknown file extension: %s. Use .asm, .s, or .bin", ext)
	}

	if err := setRegisters(e); err != nil {
		log.Fatalf("Error setting registers: %v", err)
	}

	if *pcAddress != 0 {
		e.CPU.PC = uint16(*pcAddress)
	}

	if err := setBreakpoints(e, *breakAt); err != nil {
		log.Fatalf("Error setting breakpoints: %v", err)
	}

	e.ExecutionCap = *maxCycles

	log.Printf("Execution starts at $%04X", e.CPU.PC)
	log.Println(e.DumpRegisters())

	res := e.Run(context.Background())

	log.Printf("Stopped: %s (%s)", res.Status, res.Message)
	log.Println(e.DumpRegisters())
}

func setRegisters(e *engine.Engine) error {
	if *regA != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(*regA, "$"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid value for -a: %w", err)
		}
		e.CPU.A = byte(v)
	}
	if *regB != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(*regB, "$"), 16, 8)
		if err != nil {
			return fmt.Errorf("invalid value for -b: %w", err)
		}
		e.CPU.B = byte(v)
	}
	if *regX != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(*regX, "$"), 16, 16)
		if err != nil {
			return fmt.Errorf("invalid value for -x: %w", err)
		}
		e.CPU.X = uint16(v)
	}
	if *regSP != "" {
		v, err := strconv.ParseUint(strings.TrimPrefix(*regSP, "$"), 16, 16)
		if err != nil {
			return fmt.Errorf("invalid value for -sp: %w", err)
		}
		e.CPU.SP = uint16(v)
	}
	return nil
}

func setBreakpoints(e *engine.Engine, spec string) error {
	if spec == "" {
		return nil
	}
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(strings.TrimPrefix(part, "$"))
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return fmt.Errorf("invalid breakpoint address %q: %w", part, err)
		}
		e.AddBreakpoint(uint16(v))
	}
	return nil
}
