// Package debug draws runtime overlays: FPS, heap usage and simulation
// counters. All overlays are off by default.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the overlay state. Counters are pushed in by the simulation
// each tick via SetCounts.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowCounts   bool

	bodies       int
	contacts     int
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastCntText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetCounts records the body and contact totals shown by the counters
// overlay. Call once per simulation tick.
func (d *Debug) SetCounts(bodies, contacts int) {
	d.bodies = bodies
	d.contacts = contacts
}

// Draw renders any enabled overlays at the top-right. Call last in the draw
// loop so the text sits above the scene. Text is only recomputed every
// updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.ShowCounts && d.lastCntText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRightAligned(d.lastFpsText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRightAligned(d.lastMemText, screenW, y, rl.Green)
		y += lineHeight
	}

	if d.ShowCounts {
		if update {
			d.lastCntText = fmt.Sprintf("Bodies: %d  Contacts: %d", d.bodies, d.contacts)
		}
		drawRightAligned(d.lastCntText, screenW, y, rl.Green)
	}
}

func drawRightAligned(text string, screenW, y int32, col rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, col)
}
