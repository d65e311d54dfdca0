package cpu

// AddressingMode selects how an instruction derives the address of its
// operand from the bytes following the opcode and the index registers.
type AddressingMode int

const (
	// NoMode marks instructions with an implicit operand. It must never
	// reach the address resolver.
	NoMode AddressingMode = iota

	// Immediate — the operand byte itself is the value: #$nn
	Immediate

	// ZeroPage — single-byte address into the zero page: $nn
	ZeroPage

	// ZeroPageX — zero-page address plus X, wrapping mod 256: $nn,x
	ZeroPageX

	// ZeroPageY — zero-page address plus Y, wrapping mod 256: $nn,y
	ZeroPageY

	// Absolute — full little-endian 16-bit address: $nnnn
	Absolute

	// AbsoluteX — absolute address plus X: $nnnn,x
	AbsoluteX

	// AbsoluteY — absolute address plus Y: $nnnn,y
	AbsoluteY

	// IndirectX — zero-page pointer at operand+X, wrapping mod 256: ($nn,x)
	IndirectX

	// IndirectY — zero-page pointer at operand, plus Y after the
	// indirection: ($nn),y
	IndirectY
)

// String returns the conventional notation for the mode.
func (m AddressingMode) String() string {
	switch m {
	case NoMode:
		return "implied"
	case Immediate:
		return "#imm"
	case ZeroPage:
		return "zp"
	case ZeroPageX:
		return "zp,x"
	case ZeroPageY:
		return "zp,y"
	case Absolute:
		return "abs"
	case AbsoluteX:
		return "abs,x"
	case AbsoluteY:
		return "abs,y"
	case IndirectX:
		return "(zp,x)"
	case IndirectY:
		return "(zp),y"
	}
	return "unknown"
}
