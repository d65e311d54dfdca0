package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Urethramancer/m6502/cpu"
)

// stepBudget keeps a runaway program from hanging the runner.
const stepBudget = 1_000_000

// This program provides a simple command-line interface to load and run
// a small 6502 program and inspect the results. Program bytes are given
// as hex values on the command line, e.g.:
//
//	run65 a9 05 00
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <hex byte> [hex byte ...]\n", os.Args[0])
		os.Exit(1)
	}

	program := make([]byte, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		b, err := strconv.ParseUint(arg, 16, 8)
		if err != nil {
			log.Fatalf("Bad byte value %q: %v", arg, err)
		}
		program = append(program, byte(b))
	}

	c := cpu.New()
	if err := c.Load(program); err != nil {
		log.Fatalf("Load failed: %v", err)
	}
	c.Reset()

	fmt.Printf("Loaded %d bytes at address %04X\n\n", len(program), cpu.Origin)

	fmt.Println("--- CPU State Before Execution ---")
	fmt.Println(c)

	if err := c.RunSteps(stepBudget); err != nil {
		log.Fatalf("CPU execution failed: %v", err)
	}

	fmt.Println("\n--- CPU State After Execution ---")
	fmt.Println(c)

	fmt.Println("\nExecution finished successfully.")
}
