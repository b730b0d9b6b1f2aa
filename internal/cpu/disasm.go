package cpu

import "fmt"

// Disassemble walks mem starting at start, producing n lines in the format
// of spec.md §4.4: `AAAA  BB [BB [BB]]  MNEM OPERAND`. Address arithmetic
// wraps modulo 0x10000 (spec.md §7's DisassembleOutOfRange policy); the
// walk always stops after exactly n lines regardless of wraparound.
//
// Disassemble reads mem directly rather than going through c, so it can be
// called without disturbing the live CPU's PC or pending-cycle state.
func (c *CPU) Disassemble(mem interface {
	Read(addr uint16) uint8
}, start uint16, n int) map[uint16]string {
	out := make(map[uint16]string, n)
	addr := start

	for i := 0; i < n; i++ {
		lineAddr := addr
		opcode := mem.Read(addr)
		entry := c.instrs[opcode]

		if entry.handler == nil {
			out[lineAddr] = fmt.Sprintf("%04X  %02X        ???", lineAddr, opcode)
			addr++
			continue
		}

		operandLen := operandLength(entry.mode)
		bytes := make([]byte, 1+operandLen)
		bytes[0] = opcode
		for j := 0; j < operandLen; j++ {
			bytes[1+j] = mem.Read(addr + 1 + uint16(j))
		}

		operandStr := formatOperand(entry.mode, addr, bytes)
		out[lineAddr] = fmt.Sprintf("%04X  %-8s  %s %s", lineAddr, hexBytes(bytes), c.Mnemonic(opcode), operandStr)
		addr += uint16(1 + operandLen)
	}

	return out
}

// DescribeAt returns Describe's one-line text for the opcode byte at addr,
// for callers (cmd/sixctl disasm --verbose, cmd/sixmon's status bar) that
// only have an address, not the raw opcode byte, in hand.
func (c *CPU) DescribeAt(mem interface {
	Read(addr uint16) uint8
}, addr uint16) string {
	return c.Describe(mem.Read(addr))
}

func operandLength(mode addrMode) int {
	switch mode {
	case modeImplied, modeAccumulator:
		return 0
	case modeImmediate, modeZeroPage, modeZeroPageX, modeZeroPageY,
		modeRelative, modeIndexedIndirectX, modeIndirectIndexedY:
		return 1
	case modeAbsolute, modeAbsoluteX, modeAbsoluteY, modeIndirect:
		return 2
	default:
		return 0
	}
}

func hexBytes(b []byte) string {
	s := ""
	for i, v := range b {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%02X", v)
	}
	return s
}

// formatOperand renders the operand text per addressing mode, following
// spec.md §4.4's grammar (`#$nn`, `$nn`, `$nn,X`, `$nnnn`, `($nnnn)`,
// `($nn,X)`, `($nn),Y`, `$rrrr` for relative targets).
func formatOperand(mode addrMode, instrAddr uint16, bytes []byte) string {
	switch mode {
	case modeImplied:
		return ""
	case modeAccumulator:
		return "A"
	case modeImmediate:
		return fmt.Sprintf("#$%02X", bytes[1])
	case modeZeroPage:
		return fmt.Sprintf("$%02X", bytes[1])
	case modeZeroPageX:
		return fmt.Sprintf("$%02X,X", bytes[1])
	case modeZeroPageY:
		return fmt.Sprintf("$%02X,Y", bytes[1])
	case modeRelative:
		offset := int8(bytes[1])
		target := uint16(int32(instrAddr+2) + int32(offset))
		return fmt.Sprintf("$%04X", target)
	case modeAbsolute:
		return fmt.Sprintf("$%04X", uint16(bytes[1])|uint16(bytes[2])<<8)
	case modeAbsoluteX:
		return fmt.Sprintf("$%04X,X", uint16(bytes[1])|uint16(bytes[2])<<8)
	case modeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", uint16(bytes[1])|uint16(bytes[2])<<8)
	case modeIndirect:
		return fmt.Sprintf("($%04X)", uint16(bytes[1])|uint16(bytes[2])<<8)
	case modeIndexedIndirectX:
		return fmt.Sprintf("($%02X,X)", bytes[1])
	case modeIndirectIndexedY:
		return fmt.Sprintf("($%02X),Y", bytes[1])
	default:
		return ""
	}
}
