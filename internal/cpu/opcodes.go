package cpu

// writeResult stores a shift/rotate/inc/dec result either back to the
// accumulator (accumulator mode) or to the effective address in memory.
func (c *CPU) writeResult(v uint8) {
	if c.mode == modeAccumulator {
		c.a = v
	} else {
		c.mem.Write(c.operandAddr, v)
	}
}

// Loads/stores.

func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
}

func (c *CPU) sta() {
	c.mem.Write(c.operandAddr, c.a)
}

func (c *CPU) stx() {
	c.mem.Write(c.operandAddr, c.x)
}

func (c *CPU) sty() {
	c.mem.Write(c.operandAddr, c.y)
}

// Transfers.

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}

func (c *CPU) tsx() {
	c.x = c.s
	c.setFlagsZN(c.x)
}

func (c *CPU) txs() {
	c.s = c.x
}

// Stack.

func (c *CPU) pha() {
	c.push8(c.a)
}

func (c *CPU) pla() {
	c.a = c.pop8()
	c.setFlagsZN(c.a)
}

func (c *CPU) php() {
	c.push8(c.p | FlagB | FlagU)
}

func (c *CPU) plp() {
	c.p = (c.pop8() &^ FlagB) | FlagU
}

// Logical.

func (c *CPU) and() {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
}

// Arithmetic.

// addBinary implements spec.md §8's ADC flag law directly: it also backs
// SBC's binary mode, which spec.md §4.3 defines as ADC with M complemented.
func (c *CPU) addBinary(m uint8) {
	sum := uint16(c.a) + uint16(m)
	if c.getFlag(FlagC) {
		sum++
	}
	result := uint8(sum)
	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (c.a^result)&(m^result)&0x80 != 0)
	c.a = result
	c.setFlagsZN(c.a)
}

// addDecimal is the canonical NMOS 6502 decimal-mode ADC algorithm (Bruce
// Clark's derivation): correct the low nibble first, fold the carry into
// the high nibble, then correct the high nibble. Z and N come from the
// final corrected byte written to A, per spec.md §4.3's explicit mandate.
func (c *CPU) addDecimal(m uint8) {
	a := int(c.a)
	v := int(m)
	carry := 0
	if c.getFlag(FlagC) {
		carry = 1
	}

	al := (a & 0x0F) + (v & 0x0F) + carry
	if al >= 0x0A {
		al = ((al + 0x06) & 0x0F) + 0x10
	}
	sum := (a & 0xF0) + (v & 0xF0) + al
	if sum >= 0xA0 {
		sum += 0x60
	}
	c.setFlag(FlagC, sum >= 0x100)
	c.a = uint8(sum)
	c.setFlagsZN(c.a)
}

func (c *CPU) adc() {
	if c.getFlag(FlagD) {
		c.addDecimal(c.operandValue)
	} else {
		c.addBinary(c.operandValue)
	}
}

// subDecimal mirrors addDecimal's nibble-correction shape for subtraction.
// The carry flag still reflects the binary borrow (A - M - (1-C) >= 0),
// which is how the NMOS part actually behaves in decimal mode.
func (c *CPU) subDecimal(m uint8) {
	a := int(c.a)
	v := int(m)
	carry := 0
	if c.getFlag(FlagC) {
		carry = 1
	}

	al := (a & 0x0F) - (v & 0x0F) + carry - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0F) - 0x10
	}
	sum := (a & 0xF0) - (v & 0xF0) + al
	if sum < 0 {
		sum -= 0x60
	}
	result := uint8(sum & 0xFF)

	binSum := int32(a) + int32(uint8(^m)) + int32(carry)
	c.setFlag(FlagC, binSum > 0xFF)
	c.a = result
	c.setFlagsZN(c.a)
}

func (c *CPU) sbc() {
	if c.getFlag(FlagD) {
		c.subDecimal(c.operandValue)
	} else {
		c.addBinary(^c.operandValue)
	}
}

// Compare.

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagC, reg >= m)
	result := reg - m
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, result&0x80 != 0)
}

func (c *CPU) cmp() { c.compare(c.a, c.operandValue) }
func (c *CPU) cpx() { c.compare(c.x, c.operandValue) }
func (c *CPU) cpy() { c.compare(c.y, c.operandValue) }

// Increments/decrements.

func (c *CPU) inc() {
	v := c.operandValue + 1
	c.mem.Write(c.operandAddr, v)
	c.setFlagsZN(v)
}

func (c *CPU) dec() {
	v := c.operandValue - 1
	c.mem.Write(c.operandAddr, v)
	c.setFlagsZN(v)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

// Shifts/rotates.

func (c *CPU) asl() {
	v := c.operandValue
	c.setFlag(FlagC, v&0x80 != 0)
	result := v << 1
	c.writeResult(result)
	c.setFlagsZN(result)
}

func (c *CPU) lsr() {
	v := c.operandValue
	c.setFlag(FlagC, v&0x01 != 0)
	result := v >> 1
	c.writeResult(result)
	c.setFlagsZN(result)
}

func (c *CPU) rol() {
	v := c.operandValue
	carryIn := uint8(0)
	if c.getFlag(FlagC) {
		carryIn = 1
	}
	c.setFlag(FlagC, v&0x80 != 0)
	result := (v << 1) | carryIn
	c.writeResult(result)
	c.setFlagsZN(result)
}

func (c *CPU) ror() {
	v := c.operandValue
	carryIn := uint8(0)
	if c.getFlag(FlagC) {
		carryIn = 0x80
	}
	c.setFlag(FlagC, v&0x01 != 0)
	result := (v >> 1) | carryIn
	c.writeResult(result)
	c.setFlagsZN(result)
}

// Branches. branchIf implements the shared taken/page-cross bonus of
// spec.md §4.3: +1 cycle if taken, +1 more if the target lands on a
// different page than the instruction after the branch.
func (c *CPU) branchIf(cond bool) {
	if !cond {
		return
	}
	c.extraCycles++
	target := c.operandAddr
	if isDiffPage(c.pc, target) {
		c.extraCycles++
	}
	c.pc = target
}

func (c *CPU) bcc() { c.branchIf(!c.getFlag(FlagC)) }
func (c *CPU) bcs() { c.branchIf(c.getFlag(FlagC)) }
func (c *CPU) beq() { c.branchIf(c.getFlag(FlagZ)) }
func (c *CPU) bne() { c.branchIf(!c.getFlag(FlagZ)) }
func (c *CPU) bmi() { c.branchIf(c.getFlag(FlagN)) }
func (c *CPU) bpl() { c.branchIf(!c.getFlag(FlagN)) }
func (c *CPU) bvc() { c.branchIf(!c.getFlag(FlagV)) }
func (c *CPU) bvs() { c.branchIf(c.getFlag(FlagV)) }

// Jumps/calls.

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

func (c *CPU) jsr() {
	c.push16(c.pc - 1)
	c.pc = c.operandAddr
}

func (c *CPU) rts() {
	c.pc = c.pop16() + 1
}

// brk implements the 2-byte BRK convention spec.md §9 mandates: the byte
// after the opcode is padding, so the return address pushed is PC+1 from
// where the fetch left PC (already one past the opcode).
func (c *CPU) brk() {
	c.pc++
	c.push16(c.pc)
	c.push8(c.p | FlagB | FlagU)
	c.setFlag(FlagI, true)
	c.pc = c.mem.ReadWord(0xFFFE)
}

func (c *CPU) rti() {
	c.p = (c.pop8() &^ FlagB) | FlagU
	c.pc = c.pop16()
}

// Flags.

func (c *CPU) clc() { c.setFlag(FlagC, false) }
func (c *CPU) sec() { c.setFlag(FlagC, true) }
func (c *CPU) cli() { c.setFlag(FlagI, false) }
func (c *CPU) sei() { c.setFlag(FlagI, true) }
func (c *CPU) cld() { c.setFlag(FlagD, false) }
func (c *CPU) sed() { c.setFlag(FlagD, true) }
func (c *CPU) clv() { c.setFlag(FlagV, false) }

// Bit test.

func (c *CPU) bit() {
	m := c.operandValue
	c.setFlag(FlagZ, c.a&m == 0)
	c.setFlag(FlagN, m&0x80 != 0)
	c.setFlag(FlagV, m&0x40 != 0)
}

// No-op.

func (c *CPU) nop() {}
