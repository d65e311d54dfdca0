package disassembler_test

import (
	"strings"
	"testing"

	"github.com/Urethramancer/m6502/disassembler"
)

func TestDisassemble(t *testing.T) {
	code := []byte{0xA9, 0x05, 0x85, 0x10, 0xAA, 0x00, 0xFF}
	want := strings.Join([]string{
		"8000  A9 05     lda #$05",
		"8002  85 10     sta $10",
		"8004  AA        tax",
		"8005  00        brk",
		"8006  FF        byte $FF",
		"",
	}, "\n")

	got := disassembler.Disassemble(code, 0x8000)
	if got != want {
		t.Errorf("unexpected disassembly\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestOperandFormats(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want string
	}{
		{"Immediate", []byte{0xA9, 0x42}, "lda #$42"},
		{"ZeroPage", []byte{0xA5, 0x42}, "lda $42"},
		{"ZeroPageX", []byte{0xB5, 0x42}, "lda $42,x"},
		{"Absolute", []byte{0xAD, 0x34, 0x12}, "lda $1234"},
		{"AbsoluteX", []byte{0xBD, 0x34, 0x12}, "lda $1234,x"},
		{"AbsoluteY", []byte{0xB9, 0x34, 0x12}, "lda $1234,y"},
		{"IndirectX", []byte{0xA1, 0x20}, "lda ($20,x)"},
		{"IndirectY", []byte{0xB1, 0x20}, "lda ($20),y"},
		{"Implied", []byte{0xE8}, "inx"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := disassembler.Disassemble(tc.code, 0x8000)
			if !strings.Contains(got, tc.want) {
				t.Errorf("expected output to contain %q, got:\n%s", tc.want, got)
			}
		})
	}
}

// An instruction cut off by the end of the code renders as data.
func TestTruncatedInstruction(t *testing.T) {
	got := disassembler.Disassemble([]byte{0xAD, 0x34}, 0x8000)
	want := strings.Join([]string{
		"8000  AD        byte $AD",
		"8001  34        byte $34",
		"",
	}, "\n")
	if got != want {
		t.Errorf("unexpected disassembly\nexpected:\n%s\ngot:\n%s", want, got)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := disassembler.Disassemble(nil, 0x8000); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
