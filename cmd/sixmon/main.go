// Command sixmon is a graphical debug monitor for the mos6502 core: a
// scrolling disassembly window centered on PC, live registers and flags,
// and a hex dump of zero page and the stack, driven by ebiten the same way
// the NES emulator this package is descended from drove its PPU debug view.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sixfiveohtwo/core/internal/config"
	"github.com/sixfiveohtwo/core/internal/cpu"
	"github.com/sixfiveohtwo/core/internal/logx"
	"github.com/sixfiveohtwo/core/internal/memory"
	"github.com/sixfiveohtwo/core/internal/rom"
)

func main() {
	cfgFile := flag.String("config", "", "configuration file")
	romFile := flag.String("rom", "", "hex-encoded ROM file")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sixmon:", err)
		os.Exit(1)
	}
	logx.Default().SetLevel(logx.ParseLevel(cfg.LogLevel))

	mem := memory.New()
	if *romFile != "" {
		data, err := os.ReadFile(*romFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sixmon:", err)
			os.Exit(1)
		}
		if err := rom.Load(mem, string(data), uint16(cfg.ROMLoadAddr)); err != nil {
			fmt.Fprintln(os.Stderr, "sixmon:", err)
			os.Exit(1)
		}
	}

	c := cpu.New(mem)
	c.Reset()

	mon := New(c, mem, cfg)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Monitor.Width, cfg.Monitor.Height)
	ebiten.SetWindowTitle("sixmon")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(mon); err != nil {
		fmt.Fprintln(os.Stderr, "sixmon:", err)
		os.Exit(1)
	}
}
