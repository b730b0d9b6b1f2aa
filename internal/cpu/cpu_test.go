package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixfiveohtwo/core/internal/logx"
	"github.com/sixfiveohtwo/core/internal/memory"
)

func newLoaded(t *testing.T, resetVector uint16, program []byte, loadAt uint16) (*CPU, *memory.Memory) {
	t.Helper()
	mem := memory.New()
	mem.LoadBytes(loadAt, program)
	mem.WriteWord(memory.ResetVectorAddr, resetVector)
	return New(mem), mem
}

func tickN(c *CPU, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func Test_ResetFromROM_Scenario1(t *testing.T) {
	c, mem := newLoaded(t, 0x8000, []byte{0xA9, 0x01, 0x8D, 0x00, 0x02}, 0x8000)

	tickN(c, 2)
	regs := c.Registers()
	assert.Equal(t, uint16(0x8002), regs.PC)
	assert.Equal(t, uint8(0x01), regs.A)
	assert.False(t, c.getFlag(FlagZ))
	assert.False(t, c.getFlag(FlagN))

	tickN(c, 4)
	assert.Equal(t, uint8(0x01), mem.Read(0x0200))
	assert.Equal(t, uint16(0x8005), c.Registers().PC)
}

func Test_ADC_BinaryOverflow_Scenario2(t *testing.T) {
	c, _ := newLoaded(t, 0x8000, []byte{0x69, 0x50}, 0x8000)
	c.Reset()
	c.a = 0x50
	c.setFlag(FlagC, false)
	c.setFlag(FlagD, false)

	tickN(c, 2)

	regs := c.Registers()
	assert.Equal(t, uint8(0xA0), regs.A)
	assert.False(t, c.getFlag(FlagC))
	assert.True(t, c.getFlag(FlagV))
	assert.True(t, c.getFlag(FlagN))
	assert.False(t, c.getFlag(FlagZ))
}

func Test_Branch_Taken_Scenario3(t *testing.T) {
	// BEQ +127 at 0x80FE: the instruction after the branch is 0x8100, and
	// 0x8100+127=0x817F shares its page (0x81xx), so only the taken bonus
	// applies here, not a page-cross bonus (see DESIGN.md on scenario 3).
	c, _ := newLoaded(t, 0x80FE, []byte{0xF0, 0x7F}, 0x80FE)
	c.Reset()
	c.setFlag(FlagZ, true)

	total := 1 + c.Tick()

	assert.Equal(t, uint16(0x817F), c.Registers().PC)
	assert.Equal(t, 3, total, "base 2 + taken 1")
}

func Test_Branch_Taken_PageCross(t *testing.T) {
	// BEQ -128 at 0x8002: the instruction after the branch is 0x8004, and
	// 0x8004-128=0x7F84 lands on the previous page, so both the taken bonus
	// and the page-cross bonus apply.
	c, _ := newLoaded(t, 0x8002, []byte{0xF0, 0x80}, 0x8002)
	c.Reset()
	c.setFlag(FlagZ, true)

	total := 1 + c.Tick()

	assert.Equal(t, uint16(0x7F84), c.Registers().PC)
	assert.Equal(t, 4, total, "base 2 + taken 1 + page-cross 1")
}

func Test_IndirectJMP_PageBug_Scenario4(t *testing.T) {
	c, mem := newLoaded(t, 0x8000, []byte{0x6C, 0xFF, 0x02}, 0x8000)
	mem.Write(0x02FF, 0x34)
	mem.Write(0x0200, 0x12) // not 0x0300
	mem.Write(0x0300, 0x99)
	c.Reset()

	tickN(c, 5)

	assert.Equal(t, uint16(0x1234), c.Registers().PC)
}

func Test_StackWrap_Scenario5(t *testing.T) {
	c, mem := newLoaded(t, 0x8000, []byte{0x48}, 0x8000)
	c.Reset()
	c.s = 0x00
	c.a = 0xAB

	tickN(c, 3)

	assert.Equal(t, uint8(0xAB), mem.Read(0x0100))
	assert.Equal(t, uint8(0xFF), c.Registers().S)
}

func Test_DecimalADC_Scenario6(t *testing.T) {
	t.Run("0x15 + 0x27", func(t *testing.T) {
		c, _ := newLoaded(t, 0x8000, []byte{0x69, 0x27}, 0x8000)
		c.Reset()
		c.a = 0x15
		c.setFlag(FlagD, true)
		c.setFlag(FlagC, false)

		tickN(c, 2)

		assert.Equal(t, uint8(0x42), c.Registers().A)
		assert.False(t, c.getFlag(FlagC))
		assert.False(t, c.getFlag(FlagZ))
	})

	t.Run("0x81 + 0x92", func(t *testing.T) {
		c, _ := newLoaded(t, 0x8000, []byte{0x69, 0x92}, 0x8000)
		c.Reset()
		c.a = 0x81
		c.setFlag(FlagD, true)
		c.setFlag(FlagC, false)

		tickN(c, 2)

		assert.Equal(t, uint8(0x73), c.Registers().A)
		assert.True(t, c.getFlag(FlagC))
	})
}

func Test_PushPull_RoundTrip(t *testing.T) {
	c, _ := newLoaded(t, 0x8000, []byte{0xA9, 0x7F, 0x48, 0xA9, 0x00, 0x68}, 0x8000)
	c.Reset()
	startS := c.Registers().S

	tickN(c, 2) // LDA #$7F
	tickN(c, 3) // PHA
	tickN(c, 2) // LDA #$00
	assert.Equal(t, uint8(0x00), c.Registers().A)
	tickN(c, 4) // PLA

	regs := c.Registers()
	assert.Equal(t, uint8(0x7F), regs.A)
	assert.False(t, c.getFlag(FlagZ))
	assert.False(t, c.getFlag(FlagN))
	assert.Equal(t, startS, regs.S)
}

func Test_PHP_PLP_RoundTrip(t *testing.T) {
	c, _ := newLoaded(t, 0x8000, []byte{0x08, 0x28}, 0x8000)
	c.Reset()
	c.setFlag(FlagC, true)
	c.setFlag(FlagV, true)
	startS := c.Registers().S
	wantP := c.p

	tickN(c, 3) // PHP
	c.setFlag(FlagC, false)
	c.setFlag(FlagV, false)
	tickN(c, 4) // PLP

	regs := c.Registers()
	assert.Equal(t, wantP|FlagU, regs.P)
	assert.Equal(t, startS, regs.S)
}

func Test_JSR_RTS_RoundTrip(t *testing.T) {
	// 8000: JSR $8003 ; 8003: RTS
	c, _ := newLoaded(t, 0x8000, []byte{0x20, 0x03, 0x80, 0x60}, 0x8000)
	c.Reset()

	tickN(c, 6) // JSR
	assert.Equal(t, uint16(0x8003), c.Registers().PC)

	tickN(c, 6) // RTS
	assert.Equal(t, uint16(0x8003), c.Registers().PC, "returns to the instruction following JSR")
}

func Test_CMP_FlagLaws(t *testing.T) {
	cases := []struct {
		name       string
		reg, m     uint8
		wantC      bool
		wantZ      bool
		wantNegBit bool
	}{
		{"equal", 0x40, 0x40, true, true, false},
		{"greater", 0x50, 0x10, true, false, false},
		{"less, result negative bit set", 0x10, 0x50, false, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newLoaded(t, 0x8000, []byte{0xC9, tc.m}, 0x8000)
			c.Reset()
			c.a = tc.reg

			tickN(c, 2)

			assert.Equal(t, tc.wantC, c.getFlag(FlagC), "carry")
			assert.Equal(t, tc.wantZ, c.getFlag(FlagZ), "zero")
			assert.Equal(t, tc.wantNegBit, c.getFlag(FlagN), "negative")
		})
	}
}

func Test_UnknownOpcode_TreatedAsNOP(t *testing.T) {
	c, _ := newLoaded(t, 0x8000, []byte{0x02}, 0x8000) // 0x02 is not a documented opcode
	c.Reset()

	pending := c.Tick()
	assert.Equal(t, 1, pending, "2-cycle NOP policy")
	assert.Equal(t, uint16(0x8001), c.Registers().PC)
	assert.True(t, c.IsUnknownOpcode(0x8000))
}

func Test_CycleAccounting_SampleOpcodes(t *testing.T) {
	cases := []struct {
		name    string
		program []byte
		want    int // total cycles including the fetch tick
	}{
		{"LDA immediate", []byte{0xA9, 0x01}, 2},
		{"LDA zero page", []byte{0xA5, 0x10}, 3},
		{"LDA absolute", []byte{0xAD, 0x00, 0x02}, 4},
		{"ASL accumulator", []byte{0x0A}, 2},
		{"JSR", []byte{0x20, 0x00, 0x80}, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newLoaded(t, 0x8000, tc.program, 0x8000)
			c.Reset()

			total := 1
			total += c.Tick()
			assert.Equal(t, tc.want, total)
		})
	}
}

func Test_LDA_AbsoluteX_PageCrossBonus(t *testing.T) {
	c, mem := newLoaded(t, 0x8000, []byte{0xBD, 0xFF, 0x02}, 0x8000)
	mem.Write(0x0300, 0x42) // 0x02FF + 0x01 (X) crosses into page 3
	c.Reset()
	c.x = 1

	total := 1
	total += c.Tick()

	assert.Equal(t, uint8(0x42), c.Registers().A)
	assert.Equal(t, 5, total, "base 4 + 1 page-cross bonus")
}

func Test_Registers_UBitAlwaysSet(t *testing.T) {
	c, _ := newLoaded(t, 0x8000, []byte{0xEA}, 0x8000)
	c.Reset()
	c.p &^= FlagU

	assert.True(t, c.Registers().P&FlagU != 0)
}

func Test_SetLogger_ReceivesResetAndUnknownOpcodeLines(t *testing.T) {
	c, _ := newLoaded(t, 0x8000, []byte{0x02}, 0x8000) // 0x02 is not documented

	var buf bytes.Buffer
	logger := logx.New()
	logger.SetLevel(logx.Debug)
	logger.SetOutput(&buf)
	c.SetLogger(logger)

	c.Reset()
	assert.Contains(t, buf.String(), "reset: pc=8000")

	c.Tick()
	assert.Contains(t, buf.String(), "fetch 02 at 8000")
	assert.Contains(t, buf.String(), "unknown opcode 02 at 8000")
}

func Test_Mnemonic_And_Describe(t *testing.T) {
	c, mem := newLoaded(t, 0x8000, []byte{0xA9, 0x01}, 0x8000)

	assert.Equal(t, "LDA", c.Mnemonic(0xA9))
	assert.Equal(t, "load accumulator", c.Describe(0xA9))
	assert.Equal(t, "load accumulator", c.DescribeAt(mem, 0x8000))

	assert.Equal(t, "", c.Mnemonic(0x02), "0x02 is not a documented opcode")
	assert.Equal(t, "", c.Describe(0x02))
}
