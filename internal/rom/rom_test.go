package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixfiveohtwo/core/internal/memory"
)

func Test_Load_WritesAtSecondaryStorageBaseAndResetVector(t *testing.T) {
	mem := memory.New()

	err := Load(mem, "A9 01 8D 00 02", 0x8000)

	assert.NoError(t, err)
	assert.Equal(t, uint8(0xA9), mem.Read(0x8000))
	assert.Equal(t, uint8(0x01), mem.Read(0x8001))
	assert.Equal(t, uint8(0x8D), mem.Read(0x8002))
	assert.Equal(t, uint16(0x8000), mem.ReadWord(memory.ResetVectorAddr))
}

func Test_Load_ToleratesConcatenatedHex(t *testing.T) {
	mem := memory.New()

	err := Load(mem, "A9018D0002", 0x8000)

	assert.NoError(t, err)
	assert.Equal(t, uint8(0xA9), mem.Read(0x8000))
	assert.Equal(t, uint8(0x8D), mem.Read(0x8002))
}

func Test_Load_StripsNewlinesAndTabs(t *testing.T) {
	mem := memory.New()

	err := Load(mem, "A9\t01\n8D 00\r02", 0x8000)

	assert.NoError(t, err)
	assert.Equal(t, uint8(0xA9), mem.Read(0x8000))
}

func Test_Load_RejectsOddDigitCount(t *testing.T) {
	mem := memory.New()
	before := mem.Read(0x8000)

	err := Load(mem, "A9 1", 0x8000)

	assert.ErrorIs(t, err, ErrInvalidHex)
	assert.Equal(t, before, mem.Read(0x8000), "no partial write")
}

func Test_Load_RejectsNonHexCharacters(t *testing.T) {
	mem := memory.New()
	before := mem.Read(0x8000)

	err := Load(mem, "A9 ZZ", 0x8000)

	assert.ErrorIs(t, err, ErrInvalidHex)
	assert.Equal(t, before, mem.Read(0x8000), "no partial write")
}

func Test_Load_DistinctStartAddressFromLoadBase(t *testing.T) {
	mem := memory.New()

	err := Load(mem, "EA", 0x8010)

	assert.NoError(t, err)
	assert.Equal(t, uint8(0xEA), mem.Read(0x8000), "bytes always load at the secondary-storage base")
	assert.Equal(t, uint16(0x8010), mem.ReadWord(memory.ResetVectorAddr), "reset vector may point elsewhere in ROM")
}
