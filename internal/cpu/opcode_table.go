package cpu

// instruction is one entry of the 256-slot decode table: a fixed binding of
// mnemonic, addressing mode, base cycle count and semantic handler. A zero
// value (handler == nil) marks an opcode byte outside the 151 documented
// opcodes; Tick's UnknownOpcode policy (spec.md §7) handles those.
type instruction struct {
	mnemonic       string
	mode           addrMode
	cycles         uint8
	handler        func(*CPU)
	pageCrossBonus bool // +1 cycle on page-crossing, read-style instructions only
	desc           string
}

// Describe returns a one-line human-readable description of the opcode
// byte, or "" if it isn't one of the 151 documented opcodes. This augments
// the disassembler's mnemonic-only output for tooling (cmd/sixctl disasm
// --verbose, cmd/sixmon's status bar); it changes no core semantics.
func (c *CPU) Describe(opcode byte) string {
	return c.instrs[opcode].desc
}

// Mnemonic returns the opcode byte's mnemonic, or "" if unknown.
func (c *CPU) Mnemonic(opcode byte) string {
	return c.instrs[opcode].mnemonic
}

func (c *CPU) initInstructions() {
	set := func(opcode byte, mnemonic string, mode addrMode, cycles uint8, fn func(*CPU), pageCross bool, desc string) {
		c.instrs[opcode] = instruction{mnemonic: mnemonic, mode: mode, cycles: cycles, handler: fn, pageCrossBonus: pageCross, desc: desc}
	}

	set(0x00, "BRK", modeImplied, 7, (*CPU).brk, false, "force break")
	set(0x01, "ORA", modeIndexedIndirectX, 6, (*CPU).ora, false, "OR A with memory")
	set(0x05, "ORA", modeZeroPage, 3, (*CPU).ora, false, "OR A with memory")
	set(0x06, "ASL", modeZeroPage, 5, (*CPU).asl, false, "shift left")
	set(0x08, "PHP", modeImplied, 3, (*CPU).php, false, "push processor status")
	set(0x09, "ORA", modeImmediate, 2, (*CPU).ora, false, "OR A with memory")
	set(0x0A, "ASL", modeAccumulator, 2, (*CPU).asl, false, "shift left accumulator")
	set(0x0D, "ORA", modeAbsolute, 4, (*CPU).ora, false, "OR A with memory")
	set(0x0E, "ASL", modeAbsolute, 6, (*CPU).asl, false, "shift left")
	set(0x10, "BPL", modeRelative, 2, (*CPU).bpl, false, "branch if positive")
	set(0x11, "ORA", modeIndirectIndexedY, 5, (*CPU).ora, true, "OR A with memory")
	set(0x15, "ORA", modeZeroPageX, 4, (*CPU).ora, false, "OR A with memory")
	set(0x16, "ASL", modeZeroPageX, 6, (*CPU).asl, false, "shift left")
	set(0x18, "CLC", modeImplied, 2, (*CPU).clc, false, "clear carry")
	set(0x19, "ORA", modeAbsoluteY, 4, (*CPU).ora, true, "OR A with memory")
	set(0x1D, "ORA", modeAbsoluteX, 4, (*CPU).ora, true, "OR A with memory")
	set(0x1E, "ASL", modeAbsoluteX, 7, (*CPU).asl, false, "shift left")

	set(0x20, "JSR", modeAbsolute, 6, (*CPU).jsr, false, "jump to subroutine")
	set(0x21, "AND", modeIndexedIndirectX, 6, (*CPU).and, false, "AND A with memory")
	set(0x24, "BIT", modeZeroPage, 3, (*CPU).bit, false, "bit test")
	set(0x25, "AND", modeZeroPage, 3, (*CPU).and, false, "AND A with memory")
	set(0x26, "ROL", modeZeroPage, 5, (*CPU).rol, false, "rotate left")
	set(0x28, "PLP", modeImplied, 4, (*CPU).plp, false, "pull processor status")
	set(0x29, "AND", modeImmediate, 2, (*CPU).and, false, "AND A with memory")
	set(0x2A, "ROL", modeAccumulator, 2, (*CPU).rol, false, "rotate left accumulator")
	set(0x2C, "BIT", modeAbsolute, 4, (*CPU).bit, false, "bit test")
	set(0x2D, "AND", modeAbsolute, 4, (*CPU).and, false, "AND A with memory")
	set(0x2E, "ROL", modeAbsolute, 6, (*CPU).rol, false, "rotate left")
	set(0x30, "BMI", modeRelative, 2, (*CPU).bmi, false, "branch if minus")
	set(0x31, "AND", modeIndirectIndexedY, 5, (*CPU).and, true, "AND A with memory")
	set(0x35, "AND", modeZeroPageX, 4, (*CPU).and, false, "AND A with memory")
	set(0x36, "ROL", modeZeroPageX, 6, (*CPU).rol, false, "rotate left")
	set(0x38, "SEC", modeImplied, 2, (*CPU).sec, false, "set carry")
	set(0x39, "AND", modeAbsoluteY, 4, (*CPU).and, true, "AND A with memory")
	set(0x3D, "AND", modeAbsoluteX, 4, (*CPU).and, true, "AND A with memory")
	set(0x3E, "ROL", modeAbsoluteX, 7, (*CPU).rol, false, "rotate left")

	set(0x40, "RTI", modeImplied, 6, (*CPU).rti, false, "return from interrupt")
	set(0x41, "EOR", modeIndexedIndirectX, 6, (*CPU).eor, false, "XOR A with memory")
	set(0x45, "EOR", modeZeroPage, 3, (*CPU).eor, false, "XOR A with memory")
	set(0x46, "LSR", modeZeroPage, 5, (*CPU).lsr, false, "shift right")
	set(0x48, "PHA", modeImplied, 3, (*CPU).pha, false, "push accumulator")
	set(0x49, "EOR", modeImmediate, 2, (*CPU).eor, false, "XOR A with memory")
	set(0x4A, "LSR", modeAccumulator, 2, (*CPU).lsr, false, "shift right accumulator")
	set(0x4C, "JMP", modeAbsolute, 3, (*CPU).jmp, false, "jump")
	set(0x4D, "EOR", modeAbsolute, 4, (*CPU).eor, false, "XOR A with memory")
	set(0x4E, "LSR", modeAbsolute, 6, (*CPU).lsr, false, "shift right")
	set(0x50, "BVC", modeRelative, 2, (*CPU).bvc, false, "branch if overflow clear")
	set(0x51, "EOR", modeIndirectIndexedY, 5, (*CPU).eor, true, "XOR A with memory")
	set(0x55, "EOR", modeZeroPageX, 4, (*CPU).eor, false, "XOR A with memory")
	set(0x56, "LSR", modeZeroPageX, 6, (*CPU).lsr, false, "shift right")
	set(0x58, "CLI", modeImplied, 2, (*CPU).cli, false, "clear interrupt disable")
	set(0x59, "EOR", modeAbsoluteY, 4, (*CPU).eor, true, "XOR A with memory")
	set(0x5D, "EOR", modeAbsoluteX, 4, (*CPU).eor, true, "XOR A with memory")
	set(0x5E, "LSR", modeAbsoluteX, 7, (*CPU).lsr, false, "shift right")

	set(0x60, "RTS", modeImplied, 6, (*CPU).rts, false, "return from subroutine")
	set(0x61, "ADC", modeIndexedIndirectX, 6, (*CPU).adc, false, "add with carry")
	set(0x65, "ADC", modeZeroPage, 3, (*CPU).adc, false, "add with carry")
	set(0x66, "ROR", modeZeroPage, 5, (*CPU).ror, false, "rotate right")
	set(0x68, "PLA", modeImplied, 4, (*CPU).pla, false, "pull accumulator")
	set(0x69, "ADC", modeImmediate, 2, (*CPU).adc, false, "add with carry")
	set(0x6A, "ROR", modeAccumulator, 2, (*CPU).ror, false, "rotate right accumulator")
	set(0x6C, "JMP", modeIndirect, 5, (*CPU).jmp, false, "jump indirect")
	set(0x6D, "ADC", modeAbsolute, 4, (*CPU).adc, false, "add with carry")
	set(0x6E, "ROR", modeAbsolute, 6, (*CPU).ror, false, "rotate right")
	set(0x70, "BVS", modeRelative, 2, (*CPU).bvs, false, "branch if overflow set")
	set(0x71, "ADC", modeIndirectIndexedY, 5, (*CPU).adc, true, "add with carry")
	set(0x75, "ADC", modeZeroPageX, 4, (*CPU).adc, false, "add with carry")
	set(0x76, "ROR", modeZeroPageX, 6, (*CPU).ror, false, "rotate right")
	set(0x78, "SEI", modeImplied, 2, (*CPU).sei, false, "set interrupt disable")
	set(0x79, "ADC", modeAbsoluteY, 4, (*CPU).adc, true, "add with carry")
	set(0x7D, "ADC", modeAbsoluteX, 4, (*CPU).adc, true, "add with carry")
	set(0x7E, "ROR", modeAbsoluteX, 7, (*CPU).ror, false, "rotate right")

	set(0x81, "STA", modeIndexedIndirectX, 6, (*CPU).sta, false, "store accumulator")
	set(0x84, "STY", modeZeroPage, 3, (*CPU).sty, false, "store Y")
	set(0x85, "STA", modeZeroPage, 3, (*CPU).sta, false, "store accumulator")
	set(0x86, "STX", modeZeroPage, 3, (*CPU).stx, false, "store X")
	set(0x88, "DEY", modeImplied, 2, (*CPU).dey, false, "decrement Y")
	set(0x8A, "TXA", modeImplied, 2, (*CPU).txa, false, "transfer X to A")
	set(0x8C, "STY", modeAbsolute, 4, (*CPU).sty, false, "store Y")
	set(0x8D, "STA", modeAbsolute, 4, (*CPU).sta, false, "store accumulator")
	set(0x8E, "STX", modeAbsolute, 4, (*CPU).stx, false, "store X")
	set(0x90, "BCC", modeRelative, 2, (*CPU).bcc, false, "branch if carry clear")
	set(0x91, "STA", modeIndirectIndexedY, 6, (*CPU).sta, false, "store accumulator")
	set(0x94, "STY", modeZeroPageX, 4, (*CPU).sty, false, "store Y")
	set(0x95, "STA", modeZeroPageX, 4, (*CPU).sta, false, "store accumulator")
	set(0x96, "STX", modeZeroPageY, 4, (*CPU).stx, false, "store X")
	set(0x98, "TYA", modeImplied, 2, (*CPU).tya, false, "transfer Y to A")
	set(0x99, "STA", modeAbsoluteY, 5, (*CPU).sta, false, "store accumulator")
	set(0x9A, "TXS", modeImplied, 2, (*CPU).txs, false, "transfer X to S")
	set(0x9D, "STA", modeAbsoluteX, 5, (*CPU).sta, false, "store accumulator")

	set(0xA0, "LDY", modeImmediate, 2, (*CPU).ldy, false, "load Y")
	set(0xA1, "LDA", modeIndexedIndirectX, 6, (*CPU).lda, false, "load accumulator")
	set(0xA2, "LDX", modeImmediate, 2, (*CPU).ldx, false, "load X")
	set(0xA4, "LDY", modeZeroPage, 3, (*CPU).ldy, false, "load Y")
	set(0xA5, "LDA", modeZeroPage, 3, (*CPU).lda, false, "load accumulator")
	set(0xA6, "LDX", modeZeroPage, 3, (*CPU).ldx, false, "load X")
	set(0xA8, "TAY", modeImplied, 2, (*CPU).tay, false, "transfer A to Y")
	set(0xA9, "LDA", modeImmediate, 2, (*CPU).lda, false, "load accumulator")
	set(0xAA, "TAX", modeImplied, 2, (*CPU).tax, false, "transfer A to X")
	set(0xAC, "LDY", modeAbsolute, 4, (*CPU).ldy, false, "load Y")
	set(0xAD, "LDA", modeAbsolute, 4, (*CPU).lda, false, "load accumulator")
	set(0xAE, "LDX", modeAbsolute, 4, (*CPU).ldx, false, "load X")
	set(0xB0, "BCS", modeRelative, 2, (*CPU).bcs, false, "branch if carry set")
	set(0xB1, "LDA", modeIndirectIndexedY, 5, (*CPU).lda, true, "load accumulator")
	set(0xB4, "LDY", modeZeroPageX, 4, (*CPU).ldy, false, "load Y")
	set(0xB5, "LDA", modeZeroPageX, 4, (*CPU).lda, false, "load accumulator")
	set(0xB6, "LDX", modeZeroPageY, 4, (*CPU).ldx, false, "load X")
	set(0xB8, "CLV", modeImplied, 2, (*CPU).clv, false, "clear overflow")
	set(0xB9, "LDA", modeAbsoluteY, 4, (*CPU).lda, true, "load accumulator")
	set(0xBA, "TSX", modeImplied, 2, (*CPU).tsx, false, "transfer S to X")
	set(0xBC, "LDY", modeAbsoluteX, 4, (*CPU).ldy, true, "load Y")
	set(0xBD, "LDA", modeAbsoluteX, 4, (*CPU).lda, true, "load accumulator")
	set(0xBE, "LDX", modeAbsoluteY, 4, (*CPU).ldx, true, "load X")

	set(0xC0, "CPY", modeImmediate, 2, (*CPU).cpy, false, "compare Y")
	set(0xC1, "CMP", modeIndexedIndirectX, 6, (*CPU).cmp, false, "compare A")
	set(0xC4, "CPY", modeZeroPage, 3, (*CPU).cpy, false, "compare Y")
	set(0xC5, "CMP", modeZeroPage, 3, (*CPU).cmp, false, "compare A")
	set(0xC6, "DEC", modeZeroPage, 5, (*CPU).dec, false, "decrement memory")
	set(0xC8, "INY", modeImplied, 2, (*CPU).iny, false, "increment Y")
	set(0xC9, "CMP", modeImmediate, 2, (*CPU).cmp, false, "compare A")
	set(0xCA, "DEX", modeImplied, 2, (*CPU).dex, false, "decrement X")
	set(0xCC, "CPY", modeAbsolute, 4, (*CPU).cpy, false, "compare Y")
	set(0xCD, "CMP", modeAbsolute, 4, (*CPU).cmp, false, "compare A")
	set(0xCE, "DEC", modeAbsolute, 6, (*CPU).dec, false, "decrement memory")
	set(0xD0, "BNE", modeRelative, 2, (*CPU).bne, false, "branch if not equal")
	set(0xD1, "CMP", modeIndirectIndexedY, 5, (*CPU).cmp, true, "compare A")
	set(0xD5, "CMP", modeZeroPageX, 4, (*CPU).cmp, false, "compare A")
	set(0xD6, "DEC", modeZeroPageX, 6, (*CPU).dec, false, "decrement memory")
	set(0xD8, "CLD", modeImplied, 2, (*CPU).cld, false, "clear decimal mode")
	set(0xD9, "CMP", modeAbsoluteY, 4, (*CPU).cmp, true, "compare A")
	set(0xDD, "CMP", modeAbsoluteX, 4, (*CPU).cmp, true, "compare A")
	set(0xDE, "DEC", modeAbsoluteX, 7, (*CPU).dec, false, "decrement memory")

	set(0xE0, "CPX", modeImmediate, 2, (*CPU).cpx, false, "compare X")
	set(0xE1, "SBC", modeIndexedIndirectX, 6, (*CPU).sbc, false, "subtract with carry")
	set(0xE4, "CPX", modeZeroPage, 3, (*CPU).cpx, false, "compare X")
	set(0xE5, "SBC", modeZeroPage, 3, (*CPU).sbc, false, "subtract with carry")
	set(0xE6, "INC", modeZeroPage, 5, (*CPU).inc, false, "increment memory")
	set(0xE8, "INX", modeImplied, 2, (*CPU).inx, false, "increment X")
	set(0xE9, "SBC", modeImmediate, 2, (*CPU).sbc, false, "subtract with carry")
	set(0xEA, "NOP", modeImplied, 2, (*CPU).nop, false, "no operation")
	set(0xEC, "CPX", modeAbsolute, 4, (*CPU).cpx, false, "compare X")
	set(0xED, "SBC", modeAbsolute, 4, (*CPU).sbc, false, "subtract with carry")
	set(0xEE, "INC", modeAbsolute, 6, (*CPU).inc, false, "increment memory")
	set(0xF0, "BEQ", modeRelative, 2, (*CPU).beq, false, "branch if equal")
	set(0xF1, "SBC", modeIndirectIndexedY, 5, (*CPU).sbc, true, "subtract with carry")
	set(0xF5, "SBC", modeZeroPageX, 4, (*CPU).sbc, false, "subtract with carry")
	set(0xF6, "INC", modeZeroPageX, 6, (*CPU).inc, false, "increment memory")
	set(0xF8, "SED", modeImplied, 2, (*CPU).sed, false, "set decimal mode")
	set(0xF9, "SBC", modeAbsoluteY, 4, (*CPU).sbc, true, "subtract with carry")
	set(0xFD, "SBC", modeAbsoluteX, 4, (*CPU).sbc, true, "subtract with carry")
	set(0xFE, "INC", modeAbsoluteX, 7, (*CPU).inc, false, "increment memory")
}
