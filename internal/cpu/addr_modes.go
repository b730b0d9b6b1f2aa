package cpu

// addrMode names one of the 13 addressing modes of spec.md §4.2.
type addrMode uint8

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirectX
	modeIndirectIndexedY
)

// evaluateOperand computes the effective operand for mode starting at the
// current PC (which points just past the opcode byte), advancing PC by the
// mode's operand length and setting c.operandAddr/operandValue/pageCrossed
// for the handler to consume. Every memory mode except relative and
// indirect also reads the byte at operandAddr into operandValue, even when
// the handler only writes there (STA/STX/STY); operandValue is left stale
// for the implied, relative (branches) and indirect (JMP) modes.
func (c *CPU) evaluateOperand(mode addrMode) {
	switch mode {
	case modeImplied:
		// no operand

	case modeAccumulator:
		c.operandValue = c.a

	case modeImmediate:
		c.operandAddr = c.pc
		c.operandValue = c.mem.Read(c.pc)
		c.pc++

	case modeZeroPage:
		zp := c.mem.Read(c.pc)
		c.pc++
		c.operandAddr = uint16(zp)
		c.operandValue = c.mem.Read(c.operandAddr)

	case modeZeroPageX:
		zp := c.mem.Read(c.pc)
		c.pc++
		c.operandAddr = uint16(zp + c.x)
		c.operandValue = c.mem.Read(c.operandAddr)

	case modeZeroPageY:
		zp := c.mem.Read(c.pc)
		c.pc++
		c.operandAddr = uint16(zp + c.y)
		c.operandValue = c.mem.Read(c.operandAddr)

	case modeRelative:
		offset := int8(c.mem.Read(c.pc))
		c.pc++
		// c.pc is now the address of the instruction after the branch, as
		// spec.md §4.2 defines the relative target.
		c.operandAddr = uint16(int32(c.pc) + int32(offset))

	case modeAbsolute:
		addr := c.mem.ReadWord(c.pc)
		c.pc += 2
		c.operandAddr = addr
		c.operandValue = c.mem.Read(addr)

	case modeAbsoluteX:
		base := c.mem.ReadWord(c.pc)
		c.pc += 2
		addr := base + uint16(c.x)
		c.pageCrossed = isDiffPage(base, addr)
		c.operandAddr = addr
		c.operandValue = c.mem.Read(addr)

	case modeAbsoluteY:
		base := c.mem.ReadWord(c.pc)
		c.pc += 2
		addr := base + uint16(c.y)
		c.pageCrossed = isDiffPage(base, addr)
		c.operandAddr = addr
		c.operandValue = c.mem.Read(addr)

	case modeIndirect:
		ptr := c.mem.ReadWord(c.pc)
		c.pc += 2
		c.operandAddr = c.mem.ReadWordIndirectBug(ptr)

	case modeIndexedIndirectX:
		zp := c.mem.Read(c.pc)
		c.pc++
		addr := c.mem.ReadWordZeroPage(zp + c.x)
		c.operandAddr = addr
		c.operandValue = c.mem.Read(addr)

	case modeIndirectIndexedY:
		zp := c.mem.Read(c.pc)
		c.pc++
		base := c.mem.ReadWordZeroPage(zp)
		addr := base + uint16(c.y)
		c.pageCrossed = isDiffPage(base, addr)
		c.operandAddr = addr
		c.operandValue = c.mem.Read(addr)
	}
}
