package cpu

import "testing"

// The flag policy over the whole 8-bit domain: Z iff zero, N iff the
// high bit is set, everything else untouched.
func TestSetNZExhaustive(t *testing.T) {
	c := New()
	for v := 0; v < 256; v++ {
		c.SR = FlagC | FlagD
		c.setNZ(byte(v))

		if wantZ := v == 0; (c.SR&FlagZ != 0) != wantZ {
			t.Errorf("value %02X: zero flag wrong", v)
		}
		if wantN := v&0x80 != 0; (c.SR&FlagN != 0) != wantN {
			t.Errorf("value %02X: negative flag wrong", v)
		}
		if c.SR&(FlagC|FlagD) != FlagC|FlagD {
			t.Errorf("value %02X: unrelated bits changed: %08b", v, c.SR)
		}
	}
}
