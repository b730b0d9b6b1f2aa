// Package rom implements the ROM loader: parsing a hex-string program image
// and writing it into the secondary-storage region of a memory.Memory.
package rom

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/sixfiveohtwo/core/internal/logx"
	"github.com/sixfiveohtwo/core/internal/memory"
)

// ErrInvalidHex is returned when the input string, after whitespace is
// stripped, contains a non-hex character or an odd digit count. spec.md
// §7's InvalidHexInput policy: reject the whole load, write nothing.
var ErrInvalidHex = errors.New("rom: input is not a whitespace-separated or concatenated run of hex byte pairs")

// secondaryStorageBase is the fixed address ROM bytes are always loaded at,
// per spec.md §6 (`load_rom` writes "starting at the secondary-storage
// base" regardless of where the reset vector points).
const secondaryStorageBase = 0x8000

// Load parses hexString per spec.md §6's grammar (one or more hex byte
// pairs, whitespace-separated or concatenated; odd digit counts or
// non-hex characters reject the whole load with no partial write), writes
// the decoded bytes starting at the secondary-storage base, and points the
// reset vector at start so the next CPU reset begins execution there.
func Load(mem *memory.Memory, hexString string, start uint16) error {
	stripped := stripWhitespace(hexString)

	data, err := hex.DecodeString(stripped)
	if err != nil {
		logx.Default().Warnf("rom: rejected load: %v", err)
		return ErrInvalidHex
	}

	mem.LoadBytes(secondaryStorageBase, data)
	mem.WriteWord(memory.ResetVectorAddr, start)
	return nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
