package main

import (
	"fmt"
	"os"

	"github.com/sixfiveohtwo/core/internal/cpu"
	"github.com/sixfiveohtwo/core/internal/logx"
	"github.com/sixfiveohtwo/core/internal/memory"
	"github.com/sixfiveohtwo/core/internal/rom"
)

// newMachine wires a fresh memory.Memory and cpu.CPU, optionally loading
// romFile (a text file containing a hex ROM image per spec.md §6's
// grammar) at the secondary-storage base with the reset vector pointing at
// cfg.ROMLoadAddr, and resets the CPU so its registers are
// observable immediately without ticking. The CPU gets its own logger
// (rather than sharing logx.Default()) so a --log-file redirect on one
// invocation never affects another caller of this package.
func newMachine(romFile string) (*cpu.CPU, *memory.Memory, error) {
	logger := logx.New()
	logger.SetLevel(logx.ParseLevel(cfg.LogLevel))
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("sixctl: open log file: %w", err)
		}
		logger.SetOutput(f)
	}

	mem := memory.New()

	if romFile != "" {
		data, err := os.ReadFile(romFile)
		if err != nil {
			return nil, nil, fmt.Errorf("sixctl: read rom file: %w", err)
		}
		if err := rom.Load(mem, string(data), uint16(cfg.ROMLoadAddr)); err != nil {
			return nil, nil, fmt.Errorf("sixctl: load rom: %w", err)
		}
	}

	c := cpu.New(mem)
	c.SetLogger(logger)
	c.Reset()
	return c, mem, nil
}

func printRegisters(c *cpu.CPU) {
	r := c.Registers()
	fmt.Printf("A=%02X X=%02X Y=%02X S=%02X PC=%04X P=%02X [%s]\n",
		r.A, r.X, r.Y, r.S, r.PC, r.P, flagString(r.P))
}

func flagString(p uint8) string {
	flags := []struct {
		bit  uint8
		name byte
	}{
		{cpu.FlagN, 'N'}, {cpu.FlagV, 'V'}, {cpu.FlagU, 'U'}, {cpu.FlagB, 'B'},
		{cpu.FlagD, 'D'}, {cpu.FlagI, 'I'}, {cpu.FlagZ, 'Z'}, {cpu.FlagC, 'C'},
	}
	out := make([]byte, len(flags))
	for i, f := range flags {
		if p&f.bit != 0 {
			out[i] = f.name
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}
