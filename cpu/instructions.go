package cpu

// Kind is the closed set of implemented instruction families. Dispatch
// in the execution loop happens on this tag, resolved once when the
// opcode table is built.
type Kind int

const (
	// KindLDA loads a byte from memory into the accumulator.
	KindLDA Kind = iota
	// KindSTA stores the accumulator to memory.
	KindSTA
	// KindTAX copies the accumulator to X.
	KindTAX
	// KindTAY copies the accumulator to Y.
	KindTAY
	// KindINX increments X with 8-bit wraparound.
	KindINX
	// KindBRK stops execution.
	KindBRK
)

// Opcode byte values for the implemented instruction set.
const (
	OPBRK     byte = 0x00
	OPLDAImm  byte = 0xA9
	OPLDAZp   byte = 0xA5
	OPLDAZpX  byte = 0xB5
	OPLDAAbs  byte = 0xAD
	OPLDAAbsX byte = 0xBD
	OPLDAAbsY byte = 0xB9
	OPLDAIndX byte = 0xA1
	OPLDAIndY byte = 0xB1
	OPSTAZp   byte = 0x85
	OPTAX     byte = 0xAA
	OPTAY     byte = 0xA8
	OPINX     byte = 0xE8
)

// Opcode describes one entry in the instruction table.
type Opcode struct {
	// Code is the opcode byte.
	Code byte
	// Name is the mnemonic.
	Name string
	// Kind selects the execution behaviour.
	Kind Kind
	// Bytes is the full instruction length, opcode byte included.
	Bytes byte
	// Cycles is the documented cycle cost. It is recorded for hosts
	// that care about timing; the execution loop does not consume it.
	Cycles byte
	// Mode is the addressing mode.
	Mode AddressingMode
}

// Opcodes is the instruction table. It is built once and never modified.
var Opcodes = []Opcode{
	{OPBRK, "brk", KindBRK, 1, 7, NoMode},
	{OPLDAImm, "lda", KindLDA, 2, 2, Immediate},
	{OPLDAZp, "lda", KindLDA, 2, 3, ZeroPage},
	{OPLDAZpX, "lda", KindLDA, 2, 4, ZeroPageX},
	{OPLDAAbs, "lda", KindLDA, 3, 4, Absolute},
	{OPLDAAbsX, "lda", KindLDA, 3, 4, AbsoluteX},
	{OPLDAAbsY, "lda", KindLDA, 3, 4, AbsoluteY},
	{OPLDAIndX, "lda", KindLDA, 2, 6, IndirectX},
	{OPLDAIndY, "lda", KindLDA, 2, 5, IndirectY},
	{OPSTAZp, "sta", KindSTA, 2, 3, ZeroPage},
	{OPTAX, "tax", KindTAX, 1, 2, NoMode},
	{OPTAY, "tay", KindTAY, 1, 2, NoMode},
	{OPINX, "inx", KindINX, 1, 2, NoMode},
}

var opcodeIndex = func() map[byte]*Opcode {
	m := make(map[byte]*Opcode, len(Opcodes))
	for i := range Opcodes {
		m[Opcodes[i].Code] = &Opcodes[i]
	}
	return m
}()

// Lookup returns the table entry for an opcode byte.
func Lookup(code byte) (*Opcode, bool) {
	op, ok := opcodeIndex[code]
	return op, ok
}

// Find returns the table entry for a mnemonic and addressing mode
// combination. Assemblers use this to pick an encoding.
func Find(name string, mode AddressingMode) (*Opcode, bool) {
	for i := range Opcodes {
		if Opcodes[i].Name == name && Opcodes[i].Mode == mode {
			return &Opcodes[i], true
		}
	}
	return nil, false
}
