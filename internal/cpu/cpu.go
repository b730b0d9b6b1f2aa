// Package cpu implements the MOS 6502 instruction set interpreter: registers
// and status flags, the 13 addressing modes, the 256-entry opcode decode
// table, and the cycle-stepped clock that drives it one tick at a time.
package cpu

import (
	"github.com/sixfiveohtwo/core/internal/logx"
	"github.com/sixfiveohtwo/core/internal/memory"
)

// Status flag bit positions within P.
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagZ uint8 = 1 << 1 // Zero
	FlagI uint8 = 1 << 2 // Interrupt Disable
	FlagD uint8 = 1 << 3 // Decimal Mode
	FlagB uint8 = 1 << 4 // Break (only meaningful in the byte pushed by BRK/PHP)
	FlagU uint8 = 1 << 5 // Unused, always reads as 1
	FlagV uint8 = 1 << 6 // Overflow
	FlagN uint8 = 1 << 7 // Negative
)

const stackBase = uint16(0x0100)

// Registers is a read-only snapshot of CPU state, used by the disassembler's
// caller, the CLI's status command, and the monitor.
type Registers struct {
	A, X, Y, S uint8
	PC         uint16
	P          uint8
}

// CPU is a MOS 6502 core. It owns no memory: it is constructed over a
// *memory.Memory and mutates it through Read/Write.
type CPU struct {
	mem *memory.Memory
	log *logx.Logger

	a, x, y, s uint8
	pc         uint16
	p          uint8

	pending   int
	resetDone bool

	instrs [256]instruction

	// scratch state for the in-flight instruction, valid only between the
	// evaluate and execute steps of a single Tick.
	mode         addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool
	extraCycles  int

	// unknownAt records addresses fetched with a byte outside the decode
	// table, for IsUnknownOpcode and UnknownOpcodeCount.
	unknownAt map[uint16]bool
}

// New returns a power-on CPU wired to mem: A=X=Y=0, S=0xFD, P=0x24 (I and U
// set), pending cycles 0. PC stays at 0 until the first Tick performs the
// reset sequence and loads it from the reset vector.
func New(mem *memory.Memory) *CPU {
	c := &CPU{
		mem:       mem,
		log:       logx.Default(),
		s:         0xFD,
		p:         0x24,
		unknownAt: make(map[uint16]bool),
	}
	c.initInstructions()
	return c
}

// SetLogger overrides the logger used for unknown-opcode warnings.
func (c *CPU) SetLogger(l *logx.Logger) {
	c.log = l
}

// Reset performs the power-on/reset sequence: PC is loaded from the reset
// vector, S=0xFD, P=0x24, A=X=Y=0, pending cycles cleared. Memory itself is
// left untouched; a ROM load already wrote the reset vector.
func (c *CPU) Reset() {
	c.a, c.x, c.y = 0, 0, 0
	c.s = 0xFD
	c.p = 0x24
	c.pending = 0
	c.pc = c.mem.ReadWord(memory.ResetVectorAddr)
	c.resetDone = true
	c.log.Infof("reset: pc=%04X", c.pc)
}

// Registers returns a snapshot of the visible register file. The U flag
// always reads as 1, matching the live-P convention.
func (c *CPU) Registers() Registers {
	return Registers{A: c.a, X: c.x, Y: c.y, S: c.s, PC: c.pc, P: c.p | FlagU}
}

// PendingCycles returns the number of clock cycles left before the next
// instruction is fetched.
func (c *CPU) PendingCycles() int {
	return c.pending
}

func (c *CPU) getFlag(flag uint8) bool {
	return c.p&flag != 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
	} else {
		c.p &^= flag
	}
}

func (c *CPU) setFlagsZN(v uint8) {
	c.setFlag(FlagZ, v == 0)
	c.setFlag(FlagN, v&0x80 != 0)
}

func (c *CPU) push8(v uint8) {
	c.mem.Write(stackBase|uint16(c.s), v)
	c.s--
}

func (c *CPU) pop8() uint8 {
	c.s++
	return c.mem.Read(stackBase | uint16(c.s))
}

func (c *CPU) push16(v uint16) {
	c.push8(uint8(v >> 8))
	c.push8(uint8(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop8())
	hi := uint16(c.pop8())
	return lo | hi<<8
}

// Tick advances the clock by one cycle, per spec.md §4.5: while an
// instruction's pending cycles remain, a tick just burns one of them; once
// none remain, the next opcode is fetched, its addressing mode is
// evaluated, its handler runs to completion (memory writes and all), and
// its total cycle cost (base + page-cross + branch bonus) is pre-charged
// minus the one cycle this tick already spent. Returns pending cycles left.
func (c *CPU) Tick() int {
	if !c.resetDone {
		c.Reset()
	}

	if c.pending > 0 {
		c.pending--
		return c.pending
	}

	opcodeAddr := c.pc
	opcode := c.mem.Read(c.pc)
	c.pc++
	c.log.Debugf("fetch %02X at %04X", opcode, opcodeAddr)

	entry := c.instrs[opcode]
	if entry.handler == nil {
		c.markUnknown(opcodeAddr, opcode)
		c.pending = 2 - 1
		return c.pending
	}

	c.mode = entry.mode
	c.pageCrossed = false
	c.extraCycles = 0
	c.evaluateOperand(entry.mode)

	entry.handler(c)

	total := int(entry.cycles) + c.extraCycles
	if entry.pageCrossBonus && c.pageCrossed {
		total++
	}
	c.pending = total - 1
	return c.pending
}

// markUnknown implements spec.md §7's UnknownOpcode policy: treat the byte
// as a 1-byte, 2-cycle NOP instead of halting the core, and remember the
// address (logging only its first occurrence). Disassemble renders "???"
// for any byte outside the decode table, whether or not it was fetched.
func (c *CPU) markUnknown(addr uint16, opcode byte) {
	if !c.unknownAt[addr] {
		c.unknownAt[addr] = true
		c.log.Warnf("unknown opcode %02X at %04X, treating as NOP", opcode, addr)
	}
}

// IsUnknownOpcode reports whether the byte at addr was ever fetched as an
// opcode not present in the decode table.
func (c *CPU) IsUnknownOpcode(addr uint16) bool {
	return c.unknownAt[addr]
}

// UnknownOpcodeCount returns the number of distinct addresses where an
// unrecognized opcode byte has been fetched since the CPU was created.
func (c *CPU) UnknownOpcodeCount() int {
	return len(c.unknownAt)
}

// StatusLEDs returns each status flag's current on/off state keyed by its
// canonical single-letter name, for front ends that render flags as a row
// of LEDs rather than a packed byte.
func (c *CPU) StatusLEDs() map[string]bool {
	p := c.p | FlagU
	return map[string]bool{
		"N": p&FlagN != 0,
		"V": p&FlagV != 0,
		"U": p&FlagU != 0,
		"B": p&FlagB != 0,
		"D": p&FlagD != 0,
		"I": p&FlagI != 0,
		"Z": p&FlagZ != 0,
		"C": p&FlagC != 0,
	}
}

func isDiffPage(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
