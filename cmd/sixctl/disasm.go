package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	disasmStart   uint16
	disasmN       int
	disasmVerbose bool
)

var disasmCmd = &cobra.Command{
	Use:   "disasm",
	Short: "disassemble a loaded ROM image",
	RunE:  disasmE,
}

func init() {
	disasmCmd.Flags().Uint16Var(&disasmStart, "start", 0x8000, "address to start disassembling from")
	disasmCmd.Flags().IntVar(&disasmN, "n", 0, "number of instructions to disassemble (0 = use disassembly_window from config)")
	disasmCmd.Flags().BoolVar(&disasmVerbose, "verbose", false, "append each opcode's one-line description")
}

func disasmE(cmd *cobra.Command, args []string) error {
	c, mem, err := newMachine(romFile)
	if err != nil {
		return err
	}

	n := disasmN
	if n <= 0 {
		n = cfg.DisassemblyWindow
	}

	lines := c.Disassemble(mem, disasmStart, n)

	addrs := make([]uint16, 0, len(lines))
	for addr := range lines {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	for _, addr := range addrs {
		if disasmVerbose {
			fmt.Printf("%-40s ; %s\n", lines[addr], c.DescribeAt(mem, addr))
			continue
		}
		fmt.Println(lines[addr])
	}
	return nil
}
