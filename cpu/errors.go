package cpu

import "github.com/pkg/errors"

// Faults surfaced by Step, Run and Load. Execution faults end the
// current run; the machine must be reset before it is used again.
var (
	// ErrUnknownOpcode is returned when a fetched opcode byte has no
	// table entry.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrAddressingMode is returned when an effective address is
	// requested for an implicit-operand instruction.
	ErrAddressingMode = errors.New("unsupported addressing mode")

	// ErrStepLimit is returned by RunSteps when the budget runs out
	// before the program halts.
	ErrStepLimit = errors.New("step limit reached")

	// ErrProgramTooLarge is returned by Load when a program does not
	// fit in memory.
	ErrProgramTooLarge = errors.New("program too large")
)
