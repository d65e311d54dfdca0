package cpu

// Read returns the byte at addr.
func (c *CPU) Read(addr uint16) byte {
	return c.mem[addr]
}

// Write stores b at addr.
func (c *CPU) Write(addr uint16, b byte) {
	c.mem[addr] = b
}

// ReadU16 reads a little-endian 16-bit word from memory at the given
// address. The second byte comes from addr+1, wrapping at the top of
// the address space.
func (c *CPU) ReadU16(addr uint16) uint16 {
	lo := uint16(c.Read(addr))
	hi := uint16(c.Read(addr + 1))
	return hi<<8 | lo
}

// WriteU16 writes a 16-bit word to memory at the given address in
// little-endian format.
func (c *CPU) WriteU16(addr uint16, val uint16) {
	c.Write(addr, byte(val))
	c.Write(addr+1, byte(val>>8))
}

// setNZ updates the Z and N flags in the SR from a result value. All
// other status bits keep their current state.
func (c *CPU) setNZ(value byte) {
	c.SR &^= FlagZ | FlagN

	if value == 0 {
		c.SR |= FlagZ
	}
	if value&0x80 != 0 {
		c.SR |= FlagN
	}
}
