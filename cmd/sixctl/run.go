package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sixfiveohtwo/core/internal/cpu"
)

var (
	runTicks   int
	runStep    bool
	runProfile bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "load a ROM and drive the clock",
	RunE:  runE,
}

func init() {
	runCmd.Flags().IntVar(&runTicks, "ticks", 0, "number of clock ticks to run")
	runCmd.Flags().BoolVar(&runStep, "step", false, "single-step interactively: space/enter advances one instruction, q quits")
	runCmd.Flags().BoolVar(&runProfile, "profile", false, "wrap the run in a CPU profile written to a temporary directory")
}

func runE(cmd *cobra.Command, args []string) error {
	if runProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	c, _, err := newMachine(romFile)
	if err != nil {
		return err
	}

	if runStep {
		return runInteractive(c)
	}
	return runTicksN(c, runTicks)
}

// runTicksN advances the clock exactly n cycles, printing the register
// state once the current instruction has fully retired (pending cycles
// reach 0) — spec.md §9 notes that state is only meaningfully observed
// between ticks, not mid-instruction.
func runTicksN(c *cpu.CPU, n int) error {
	for i := 0; i < n; i++ {
		if pending := c.Tick(); pending == 0 {
			printRegisters(c)
		}
	}
	return nil
}

// runInteractive puts stdin into raw mode (as jfigge-logic-ctl's terminal
// display and IntuitionAmiga-IntuitionEngine's terminal host both do to
// read individual keystrokes) and single-steps the clock one full
// instruction per keypress: space or enter advances, q quits.
func runInteractive(c *cpu.CPU) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("sixctl: enter raw terminal mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	printRegisters(c)
	r := bufio.NewReader(os.Stdin)
	for {
		key, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("sixctl: read key: %w", err)
		}
		switch key {
		case 'q', 'Q', 3: // 3 = Ctrl-C
			return nil
		case ' ', '\r', '\n':
			stepOneInstruction(c)
			printRegisters(c)
		}
	}
}

// stepOneInstruction runs ticks until the in-flight instruction retires,
// so one keypress always corresponds to one instruction regardless of its
// cycle cost.
func stepOneInstruction(c *cpu.CPU) {
	c.Tick()
	for c.PendingCycles() > 0 {
		c.Tick()
	}
}
