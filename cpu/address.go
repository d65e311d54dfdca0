package cpu

import "github.com/pkg/errors"

// operandAddress computes the effective address for the given mode.
// The program counter must point at the first operand byte; it is not
// advanced here. Index addition wraps unsigned, mod 256 within the
// zero page and mod 65536 elsewhere.
func (c *CPU) operandAddress(mode AddressingMode) (uint16, error) {
	switch mode {
	case Immediate:
		return c.PC, nil
	case ZeroPage:
		return uint16(c.Read(c.PC)), nil
	case ZeroPageX:
		return uint16(c.Read(c.PC) + c.X), nil
	case ZeroPageY:
		return uint16(c.Read(c.PC) + c.Y), nil
	case Absolute:
		return c.ReadU16(c.PC), nil
	case AbsoluteX:
		return c.ReadU16(c.PC) + uint16(c.X), nil
	case AbsoluteY:
		return c.ReadU16(c.PC) + uint16(c.Y), nil
	case IndirectX:
		ptr := c.Read(c.PC) + c.X
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(ptr + 1)))
		return hi<<8 | lo, nil
	case IndirectY:
		ptr := c.Read(c.PC)
		lo := uint16(c.Read(uint16(ptr)))
		hi := uint16(c.Read(uint16(ptr + 1)))
		return (hi<<8 | lo) + uint16(c.Y), nil
	default:
		return 0, errors.Wrapf(ErrAddressingMode, "%s", mode)
	}
}
