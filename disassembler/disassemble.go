// Package disassembler renders 6502 machine code back into assembly
// source, driven by the cpu package's opcode table.
package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6502/cpu"
)

// Disassemble performs a linear sweep over the code, rendering one
// instruction per line starting at origin. Bytes with no table entry,
// and instructions cut off by the end of the code, render as byte
// directives.
func Disassemble(code []byte, origin uint16) string {
	var out strings.Builder

	pc := 0
	for pc < len(code) {
		addr := origin + uint16(pc)
		op, ok := cpu.Lookup(code[pc])
		if !ok || pc+int(op.Bytes) > len(code) {
			fmt.Fprintf(&out, "%04X  %-8s  byte $%02X\n", addr, hexBytes(code[pc:pc+1]), code[pc])
			pc++
			continue
		}

		raw := code[pc : pc+int(op.Bytes)]
		fmt.Fprintf(&out, "%04X  %-8s  %s%s\n", addr, hexBytes(raw), op.Name, formatOperand(op, raw[1:]))
		pc += int(op.Bytes)
	}

	return out.String()
}

// formatOperand renders an instruction's operand bytes in the syntax
// the assembler accepts.
func formatOperand(op *cpu.Opcode, operand []byte) string {
	switch op.Mode {
	case cpu.Immediate:
		return fmt.Sprintf(" #$%02X", operand[0])
	case cpu.ZeroPage:
		return fmt.Sprintf(" $%02X", operand[0])
	case cpu.ZeroPageX:
		return fmt.Sprintf(" $%02X,x", operand[0])
	case cpu.ZeroPageY:
		return fmt.Sprintf(" $%02X,y", operand[0])
	case cpu.Absolute:
		return fmt.Sprintf(" $%04X", word(operand))
	case cpu.AbsoluteX:
		return fmt.Sprintf(" $%04X,x", word(operand))
	case cpu.AbsoluteY:
		return fmt.Sprintf(" $%04X,y", word(operand))
	case cpu.IndirectX:
		return fmt.Sprintf(" ($%02X,x)", operand[0])
	case cpu.IndirectY:
		return fmt.Sprintf(" ($%02X),y", operand[0])
	}
	return ""
}

func word(b []byte) uint16 {
	return uint16(b[1])<<8 | uint16(b[0])
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}
