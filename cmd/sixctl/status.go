package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "load a ROM, reset the CPU, and print its register state",
	RunE:  statusE,
}

func statusE(cmd *cobra.Command, args []string) error {
	c, _, err := newMachine(romFile)
	if err != nil {
		return err
	}

	printRegisters(c)

	fmt.Print("LEDs:")
	for _, name := range []string{"N", "V", "U", "B", "D", "I", "Z", "C"} {
		state := "off"
		if c.StatusLEDs()[name] {
			state = "on"
		}
		fmt.Printf(" %s=%s", name, state)
	}
	fmt.Println()

	if n := c.UnknownOpcodeCount(); n > 0 {
		fmt.Printf("%d unknown opcode(s) encountered so far\n", n)
	}
	return nil
}
