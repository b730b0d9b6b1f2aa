package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"image/color"

	"github.com/sixfiveohtwo/core/internal/config"
	"github.com/sixfiveohtwo/core/internal/cpu"
	"github.com/sixfiveohtwo/core/internal/memory"
)

// tables cycled by Tab, in the order jfigge-logic-ctl's terminal display
// cycles its panes.
var tableRegions = []string{memory.RegionZeroPage, memory.RegionStack, memory.RegionROM}

// Monitor is the ebiten game loop: it drives the clock and renders a debug
// view of registers, flags, and a disassembly window scrolled to PC. It
// owns no core state itself beyond what it needs to draw.
type Monitor struct {
	c   *cpu.CPU
	mem *memory.Memory
	cfg *config.Config

	paused     bool
	tableIndex int
}

// New wires a Monitor over an already-reset CPU.
func New(c *cpu.CPU, mem *memory.Memory, cfg *config.Config) *Monitor {
	return &Monitor{c: c, mem: mem, cfg: cfg}
}

// Update runs once per tick (60 TPS): P toggles running/paused, R
// single-steps one instruction while paused, Space/Enter also single-steps,
// Tab cycles the byte-table pane between zero page, stack, and ROM. While
// running, it drives the clock fast enough to retire several instructions
// per frame so the view doesn't crawl.
func (m *Monitor) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		m.paused = !m.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		m.tableIndex = (m.tableIndex + 1) % len(tableRegions)
	}

	if m.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			m.stepOneInstruction()
		}
		return nil
	}

	for i := 0; i < 200; i++ {
		m.c.Tick()
	}
	for m.c.PendingCycles() > 0 {
		m.c.Tick()
	}
	return nil
}

func (m *Monitor) stepOneInstruction() {
	m.c.Tick()
	for m.c.PendingCycles() > 0 {
		m.c.Tick()
	}
}

// Draw renders registers, flags, and a disassembly window centered on PC.
func (m *Monitor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{24, 24, 28, 255})

	r := m.c.Registers()

	var b strings.Builder
	fmt.Fprintf(&b, " FPS: %0.0f\n", ebiten.ActualFPS())
	if m.paused {
		fmt.Fprint(&b, " STATE: PAUSED (R/Space to step, P to resume)\n")
	} else {
		fmt.Fprint(&b, " STATE: RUNNING (P to pause)\n")
	}
	fmt.Fprintf(&b, " PC: $%04X  %s\n", r.PC, m.c.DescribeAt(m.mem, r.PC))
	fmt.Fprintf(&b, " A:  $%02X [%3d]\n", r.A, r.A)
	fmt.Fprintf(&b, " X:  $%02X [%3d]\n", r.X, r.X)
	fmt.Fprintf(&b, " Y:  $%02X [%3d]\n", r.Y, r.Y)
	fmt.Fprintf(&b, " S:  $%02X\n", r.S)
	fmt.Fprintf(&b, " P:  %s\n", flagString(r.P))
	fmt.Fprintf(&b, " PENDING CYCLES: %d\n", m.c.PendingCycles())
	b.WriteString("\n")

	region := tableRegions[m.tableIndex]
	bounds := memory.Regions()[region]
	fmt.Fprintf(&b, " [Tab] TABLE: %s ($%04X-$%04X)\n", region, bounds[0], bounds[1])
	for row := bounds[0]; row < bounds[0]+32 && row <= bounds[1]; row += 8 {
		fmt.Fprintf(&b, " $%04X:", row)
		for col := uint16(0); col < 8 && row+col <= bounds[1]; col++ {
			fmt.Fprintf(&b, " %02X", m.mem.Read(row+col))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	window := m.cfg.DisassemblyWindow
	before := window / 2
	start := r.PC - uint16(before)
	lines := m.c.Disassemble(m.mem, start, window)
	for i := 0; i < window; i++ {
		addr := start + uint16(i)
		line, ok := lines[addr]
		if !ok {
			continue
		}
		marker := "  "
		if addr == r.PC {
			marker = "->"
		}
		fmt.Fprintf(&b, "%s%s\n", marker, line)
	}

	vector.DrawFilledRect(screen, 0, 0, float32(m.cfg.Monitor.Width), float32(m.cfg.Monitor.Height), color.RGBA{24, 24, 28, 255}, false)
	ebitenutil.DebugPrintAt(screen, b.String(), 10, 10)
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

// Layout reports the fixed window size from configuration.
func (m *Monitor) Layout(_, _ int) (int, int) {
	return m.cfg.Monitor.Width, m.cfg.Monitor.Height
}
