package assembler_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Urethramancer/m6502/assembler"
	"github.com/Urethramancer/m6502/cpu"
)

// Assembles source and checks against an expected byte sequence (in hex).
// Automatically validates output length and content.
func assembleAndMatchHex(t *testing.T, name, src, expectedHex string) {
	t.Helper()

	expectedHex = strings.ToLower(strings.Join(strings.Fields(expectedHex), ""))
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		t.Fatalf("[%s] invalid expected hex string: %v", name, err)
	}

	asm := assembler.New()
	code, err := asm.Assemble(src, cpu.Origin)
	if err != nil {
		t.Fatalf("[%s] failed to assemble:\n%s\nerror: %v", name, src, err)
	}
	if len(code) != len(expected) {
		t.Fatalf("[%s] expected %d bytes, got %d\nexpected: % X\ngot:      % X",
			name, len(expected), len(code), expected, code)
	}
	for i := range code {
		if code[i] != expected[i] {
			t.Errorf("[%s] mismatch at byte %d\nexpected: % X\ngot:      % X",
				name, i, expected, code)
			break
		}
	}
}

// Core instruction encodings
func TestBasicEncodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		{"LDA_Immediate", "lda #$05", "a9 05"},
		{"LDA_ZeroPage", "lda $10", "a5 10"},
		{"LDA_ZeroPageX", "lda $10,x", "b5 10"},
		{"LDA_Absolute", "lda $1234", "ad 34 12"},
		{"LDA_AbsoluteX", "lda $1234,x", "bd 34 12"},
		{"LDA_AbsoluteY", "lda $1234,y", "b9 34 12"},
		{"LDA_IndirectX", "lda ($20,x)", "a1 20"},
		{"LDA_IndirectY", "lda ($20),y", "b1 20"},
		{"STA_ZeroPage", "sta $16", "85 16"},
		{"TAX", "tax", "aa"},
		{"TAY", "tay", "a8"},
		{"INX", "inx", "e8"},
		{"BRK", "brk", "00"},
		{"Decimal", "lda #16", "a9 10"},
		{"Binary", "lda #%10000000", "a9 80"},
		{"UpperCase", "LDA #$05", "a9 05"},
		{"ZeroPagePreferred", "lda $0010", "a5 10"},
		{"Comment", "lda #$05 ; load five", "a9 05"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestDirectives_Encodings(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		// byte — values emitted in order
		{"Byte", "byte $11,$22,$33", "11 22 33"},
		// word — each word stored little-endian
		{"Word", "word $1122,$3344", "22 11 44 33"},
		// Strings are written naturally (ASCII order)
		{"Byte_String", "byte 'AB',$00", "41 42 00"},
		{"MixedByte", "byte 'A',$42,'B',$00", "41 42 42 00"},
		// EQU defines a constant usable anywhere a number is
		{"EQU_Usage", "value equ $12\nlda #value", "a9 12"},
		{"EQU_Word", "addr equ $1234\nword addr", "34 12"},
		// ORG relocates label computation, emitting nothing itself
		{"ORG_Skip", "org $9000\ninx", "e8"},
		// Leading dots on directives are accepted
		{"DottedByte", ".byte $7f", "7f"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name, src, hex string
	}{
		// Forward label reference assembles to the absolute form.
		{"ForwardLabel", "lda data\nbrk\ndata: byte $55", "ad 04 80 00 55"},
		{"BackLabel", "data: byte $55\nlda data", "55 ad 00 80"},
		{"LabelWithCode", "start: lda #$01\nsta $02\nbrk", "a9 01 85 02 00"},
		// Labels follow an org relocation.
		{"LabelAfterOrg", "org $9000\nlda target\ntarget: byte $01", "ad 03 90 01"},
		{"LabelInWord", "word start\nstart: inx", "02 80 e8"},
	}
	for _, tc := range tests {
		assembleAndMatchHex(t, tc.name, tc.src, tc.hex)
	}
}

func TestAssembleErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"UnknownInstruction", "jmp $8000"},
		{"UnsupportedMode", "sta $1234"},
		{"ImmediateTooLarge", "lda #$1234"},
		{"UndefinedLabel", "lda nowhere"},
		{"BadConstant", "lda #$GG"},
		{"IndirectOutsideZeroPage", "lda ($1234,x)"},
		{"UnknownDirective", ".quad $00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			asm := assembler.New()
			if _, err := asm.Assemble(tc.src, cpu.Origin); err == nil {
				t.Errorf("expected an error assembling %q", tc.src)
			}
		})
	}
}

// Assembled output runs on the execution core.
func TestAssembleAndRun(t *testing.T) {
	src := `
; count up from $c0 and store the original value
	lda #$c0
	tax
	inx
	sta $10
	brk
`
	asm := assembler.New()
	code, err := asm.Assemble(src, cpu.Origin)
	if err != nil {
		t.Fatal(err)
	}

	c := cpu.New()
	if err := c.LoadAndRun(code); err != nil {
		t.Fatal(err)
	}
	if c.X != 0xC1 {
		t.Errorf("expected X=C1, got %02X", c.X)
	}
	if got := c.Read(0x10); got != 0xC0 {
		t.Errorf("expected memory at 10 to hold C0, got %02X", got)
	}
}
