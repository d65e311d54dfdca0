package main

import (
	"fmt"
	"os"

	"github.com/Urethramancer/m6502/assembler"
	"github.com/Urethramancer/m6502/cpu"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <inputfile>\n", os.Args[0])
		os.Exit(1)
	}

	// Load the .s or .asm file specified as the first argument.
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	asm := assembler.New()
	code, err := asm.Assemble(string(data), cpu.Origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	// Print the machine code as hex bytes.
	for i, b := range code {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%02x", b)
	}
	fmt.Println()
}
