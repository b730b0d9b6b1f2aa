// Command sixctl is a terminal front end for the mos6502 core: it loads a
// ROM image, drives the clock, and prints registers, flags, and
// disassembly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
