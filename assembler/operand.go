package assembler

import (
	"strconv"
	"strings"

	"github.com/Urethramancer/m6502/cpu"
	"github.com/pkg/errors"
)

// Operand is one parsed instruction operand.
type Operand struct {
	// Raw is the operand text as written.
	Raw string
	// Mode is the addressing mode derived from the syntax.
	Mode cpu.AddressingMode
	// Value is the operand value or address.
	Value uint16
	// Label holds a label name when the address comes from a label.
	Label string
}

// parseOperand derives an addressing mode and value from operand text.
// Label references always take the absolute form; their final address
// is filled in during emission.
func (asm *Assembler) parseOperand(raw string) (Operand, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	op := Operand{Raw: raw}

	switch {
	case s == "":
		op.Mode = cpu.NoMode

	case strings.HasPrefix(s, "#"):
		v, err := asm.parseConstant(s[1:])
		if err != nil {
			return op, errors.Wrapf(err, "immediate operand %q", raw)
		}
		if v > 0xFF {
			return op, errors.Errorf("immediate value $%X does not fit in a byte", v)
		}
		op.Mode, op.Value = cpu.Immediate, v

	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ",x)"):
		v, err := asm.zeroPageValue(s[1:len(s)-3], raw)
		if err != nil {
			return op, err
		}
		op.Mode, op.Value = cpu.IndirectX, v

	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, "),y"):
		v, err := asm.zeroPageValue(s[1:len(s)-3], raw)
		if err != nil {
			return op, err
		}
		op.Mode, op.Value = cpu.IndirectY, v

	case strings.HasSuffix(s, ",x"):
		if err := asm.indexedOperand(&op, s[:len(s)-2], cpu.ZeroPageX, cpu.AbsoluteX); err != nil {
			return op, err
		}

	case strings.HasSuffix(s, ",y"):
		if err := asm.indexedOperand(&op, s[:len(s)-2], cpu.ZeroPageY, cpu.AbsoluteY); err != nil {
			return op, err
		}

	default:
		if err := asm.indexedOperand(&op, s, cpu.ZeroPage, cpu.Absolute); err != nil {
			return op, err
		}
	}
	return op, nil
}

// indexedOperand fills in a direct or indexed operand, choosing the
// zero-page form for constants that fit in one byte.
func (asm *Assembler) indexedOperand(op *Operand, s string, zp, abs cpu.AddressingMode) error {
	if v, err := asm.parseConstant(s); err == nil {
		if v <= 0xFF {
			op.Mode, op.Value = zp, v
		} else {
			op.Mode, op.Value = abs, v
		}
		return nil
	}
	if !isIdentifier(s) {
		return errors.Errorf("invalid operand %q", op.Raw)
	}
	op.Mode = abs
	op.Label = s
	op.Value = asm.labels[s]
	return nil
}

// zeroPageValue parses an indirect operand's inner pointer, which must
// fit in the zero page.
func (asm *Assembler) zeroPageValue(s, raw string) (uint16, error) {
	v, err := asm.parseConstant(s)
	if err != nil {
		return 0, errors.Wrapf(err, "indirect operand %q", raw)
	}
	if v > 0xFF {
		return 0, errors.Errorf("indirect pointer $%X is outside the zero page", v)
	}
	return v, nil
}

// parseConstant resolves a symbol or parses a $hex, %binary or decimal
// number.
func (asm *Assembler) parseConstant(s string) (uint16, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := asm.symbols[s]; ok {
		return v, nil
	}

	var (
		v   uint64
		err error
	)
	switch {
	case strings.HasPrefix(s, "$"):
		v, err = strconv.ParseUint(s[1:], 16, 16)
	case strings.HasPrefix(s, "%"):
		v, err = strconv.ParseUint(s[1:], 2, 16)
	default:
		v, err = strconv.ParseUint(s, 10, 16)
	}
	if err != nil {
		return 0, errors.Errorf("invalid constant %q", s)
	}
	return uint16(v), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_', r == '.':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
