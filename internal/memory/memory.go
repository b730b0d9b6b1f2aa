// Package memory implements the MOS 6502 address space: a flat 64 KiB byte
// array with a fixed, named-region map. All 65536 addresses are always
// valid; there is no access control and no bus fan-out to other devices.
package memory

const size = 0x10000

// Region names, fixed at construction per spec.
const (
	RegionZeroPage   = "zero page"
	RegionStack      = "stack"
	RegionRAM        = "general RAM"
	RegionROM        = "secondary storage"
	RegionResetVec   = "reset vector"
	RegionIRQBRKVec  = "irq/brk vector"
)

// ResetVectorAddr is where the little-endian address of the first
// instruction is stored; that word is loaded into PC on the first clock tick.
const ResetVectorAddr = 0xFFFC

// IRQVectorAddr is where the little-endian word loaded into PC by BRK is
// stored (this core has no hardware IRQ line, so only BRK ever reads it).
const IRQVectorAddr = 0xFFFE

// bound is an inclusive [start, end] span used for introspection.
type bound struct {
	start uint16
	end   uint16
}

var regionOrder = []string{
	RegionZeroPage,
	RegionStack,
	RegionRAM,
	RegionROM,
	RegionResetVec,
	RegionIRQBRKVec,
}

var regionBounds = map[string]bound{
	RegionZeroPage:  {0x0000, 0x00FF},
	RegionStack:     {0x0100, 0x01FF},
	RegionRAM:       {0x0200, 0x7FFF},
	RegionROM:       {0x8000, 0xFFFB},
	RegionResetVec:  {0xFFFC, 0xFFFD},
	RegionIRQBRKVec: {0xFFFE, 0xFFFF},
}

// Memory is the 6502's flat address space.
type Memory struct {
	cells [size]uint8
}

// New returns a Memory with every cell zeroed, as on power-on.
func New() *Memory {
	return &Memory{}
}

// Read returns the byte at addr. Reads never fail: every address is valid.
func (m *Memory) Read(addr uint16) uint8 {
	return m.cells[addr]
}

// Write replaces the byte at addr.
func (m *Memory) Write(addr uint16, v uint8) {
	m.cells[addr] = v
}

// ReadWord reads a little-endian word: low byte at addr, high byte at
// addr+1, with address arithmetic wrapping modulo 0x10000.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.Read(addr)
	hi := m.Read(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// ReadWordIndirectBug reads a little-endian word the way JMP (indirect)
// does: if the low byte of addr is 0xFF, the high byte is fetched from
// addr&0xFF00 (the start of the same page) instead of addr+1. This quirk
// is exclusive to the JMP indirect addressing mode; every other 16-bit
// fetch in this core uses ReadWord.
func (m *Memory) ReadWordIndirectBug(addr uint16) uint16 {
	lo := m.Read(addr)
	hiAddr := addr + 1
	if addr&0x00FF == 0x00FF {
		hiAddr = addr & 0xFF00
	}
	hi := m.Read(hiAddr)
	return uint16(lo) | uint16(hi)<<8
}

// ReadWordZeroPage reads a little-endian word out of the zero page where
// the pointer itself wraps within the page: the high byte comes from
// (zpAddr+1) mod 256, never crossing into page 1.
func (m *Memory) ReadWordZeroPage(zpAddr uint8) uint16 {
	lo := m.Read(uint16(zpAddr))
	hi := m.Read(uint16(zpAddr + 1))
	return uint16(lo) | uint16(hi)<<8
}

// WriteWord writes a little-endian word: low byte at addr, high byte at
// addr+1.
func (m *Memory) WriteWord(addr uint16, v uint16) {
	m.Write(addr, uint8(v))
	m.Write(addr+1, uint8(v>>8))
}

// LoadBytes bulk-writes data starting at start, wrapping address arithmetic
// modulo 0x10000. Used by the ROM loader.
func (m *Memory) LoadBytes(start uint16, data []byte) {
	addr := start
	for _, b := range data {
		m.Write(addr, b)
		addr++
	}
}

// RegionOf returns the name of the region addr belongs to. Every address
// belongs to exactly one region.
func RegionOf(addr uint16) string {
	for _, name := range regionOrder {
		b := regionBounds[name]
		if addr >= b.start && addr <= b.end {
			return name
		}
	}
	// unreachable: regionBounds covers 0x0000-0xFFFF
	return RegionRAM
}

// Regions returns the fixed region table as name -> [start, end].
func Regions() map[string][2]uint16 {
	out := make(map[string][2]uint16, len(regionOrder))
	for _, name := range regionOrder {
		b := regionBounds[name]
		out[name] = [2]uint16{b.start, b.end}
	}
	return out
}
