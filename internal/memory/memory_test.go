package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ReadWrite(t *testing.T) {
	m := New()
	assert.Equal(t, uint8(0), m.Read(0x1234), "unwritten cell reads as zero")

	m.Write(0x1234, 0xAB)
	assert.Equal(t, uint8(0xAB), m.Read(0x1234))
}

func Test_WordRoundTrip(t *testing.T) {
	m := New()
	m.WriteWord(0x0200, 0xBEEF)
	assert.Equal(t, uint8(0xEF), m.Read(0x0200), "low byte first")
	assert.Equal(t, uint8(0xBE), m.Read(0x0201), "high byte second")
	assert.Equal(t, uint16(0xBEEF), m.ReadWord(0x0200))
}

func Test_ReadWordIndirectBug(t *testing.T) {
	t.Run("page boundary bug", func(t *testing.T) {
		m := New()
		m.Write(0x02FF, 0x34)
		m.Write(0x0200, 0x12) // NOT 0x0300
		m.Write(0x0300, 0x99)
		assert.Equal(t, uint16(0x1234), m.ReadWordIndirectBug(0x02FF))
	})

	t.Run("no page boundary, behaves like ReadWord", func(t *testing.T) {
		m := New()
		m.WriteWord(0x0200, 0xCAFE)
		assert.Equal(t, uint16(0xCAFE), m.ReadWordIndirectBug(0x0200))
	})
}

func Test_ReadWordZeroPage_WrapsWithinPage(t *testing.T) {
	m := New()
	m.Write(0x00FF, 0x34)
	m.Write(0x0000, 0x12) // wraps to zero page start, not 0x0100
	assert.Equal(t, uint16(0x1234), m.ReadWordZeroPage(0xFF))
}

func Test_LoadBytes(t *testing.T) {
	m := New()
	m.LoadBytes(0x8000, []byte{0xA9, 0x01, 0x8D, 0x00, 0x02})
	assert.Equal(t, uint8(0xA9), m.Read(0x8000))
	assert.Equal(t, uint8(0x02), m.Read(0x8004))
}

func Test_LoadBytes_WrapsAtTopOfAddressSpace(t *testing.T) {
	m := New()
	m.LoadBytes(0xFFFE, []byte{0x11, 0x22, 0x33})
	assert.Equal(t, uint8(0x11), m.Read(0xFFFE))
	assert.Equal(t, uint8(0x22), m.Read(0xFFFF))
	assert.Equal(t, uint8(0x33), m.Read(0x0000), "address arithmetic wraps modulo 0x10000")
}

func Test_RegionOf(t *testing.T) {
	cases := []struct {
		addr uint16
		want string
	}{
		{0x0000, RegionZeroPage},
		{0x00FF, RegionZeroPage},
		{0x0100, RegionStack},
		{0x01FF, RegionStack},
		{0x0200, RegionRAM},
		{0x7FFF, RegionRAM},
		{0x8000, RegionROM},
		{0xFFF9, RegionROM},
		{0xFFFC, RegionResetVec},
		{0xFFFD, RegionResetVec},
		{0xFFFE, RegionIRQBRKVec},
		{0xFFFF, RegionIRQBRKVec},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RegionOf(c.addr), "address %04X", c.addr)
	}
}

func Test_Regions_CoverEveryAddressExactlyOnce(t *testing.T) {
	regions := Regions()
	assert.Len(t, regions, 6)

	seen := make(map[uint16]string)
	for name, bounds := range regions {
		for addr := uint32(bounds[0]); addr <= uint32(bounds[1]); addr++ {
			a := uint16(addr)
			if prev, ok := seen[a]; ok {
				t.Fatalf("address %04X claimed by both %q and %q", a, prev, name)
			}
			seen[a] = name
		}
	}
	assert.Len(t, seen, 0x10000, "every address must belong to exactly one region")
}
