// Command hovercraft flies a twin-thruster craft. Holding W/S fires both
// thrusters up/down, Q/E fires them differentially to spin the craft.
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/config"
	"physics-playground/internal/debug"
	"physics-playground/internal/graphics"
)

// heldFrames counts how many consecutive frames a key has been down, so
// thrust ramps up instead of snapping to full.
type heldFrames struct {
	up, down, cw, ccw int
}

func (h *heldFrames) poll() {
	h.up = bump(h.up, rl.IsKeyDown(rl.KeyW))
	h.down = bump(h.down, rl.IsKeyDown(rl.KeyS))
	h.cw = bump(h.cw, rl.IsKeyDown(rl.KeyQ))
	h.ccw = bump(h.ccw, rl.IsKeyDown(rl.KeyE))
}

func bump(count int, down bool) int {
	if !down {
		return 0
	}
	return count + 1
}

func main() {
	prefs := config.Load()

	craft, err := newCraft(prefs.Gravity)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hovercraft:", err)
		os.Exit(1)
	}
	groundY := -float64(prefs.Window.Height) / 8

	canvas := graphics.NewCanvas(prefs.Window.Width, prefs.Window.Height)
	canvas.Scale = 4

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMem

	var keys heldFrames
	update := func() {
		keys.poll()
		craft.setInput(keys.up, keys.down, keys.cw, keys.ccw)
		craft.update(graphics.FrameTime())
		craft.clampToGround(groundY)
	}
	draw := func() {
		craft.draw(canvas, groundY)
		dbg.Draw()
	}
	graphics.Run("hover craft", int32(prefs.Window.Width), int32(prefs.Window.Height), int32(prefs.FPS), update, draw)
}
