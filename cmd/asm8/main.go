package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/m6800/assembler"
	"github.com/Urethramancer/m6800/format"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <sourcefile> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	inputFile := os.Args[1]
	var outputFile string
	if len(os.Args) == 3 {
		outputFile = os.Args[2]
	}

	src, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading source file: %v\n", err)
		os.Exit(1)
	}

	res := assembler.Assemble(string(src))
	if !res.OK() {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "%s\n", e.Error())
		}
		os.Exit(1)
	}

	if outputFile == "" {
		fmt.Print(format.Listing(res.Program))
		return
	}

	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".hex":
		if err := os.WriteFile(outputFile, []byte(format.IntelHex(res.Program)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	default:
		if err := os.WriteFile(outputFile, format.BinaryImage(res.Program), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Assembled binary written to %s\n", outputFile)
}
