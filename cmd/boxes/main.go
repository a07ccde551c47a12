// Command boxes is a rigid-body sandbox: boxes bounce around a walled arena
// under gravity and collide with each other. Click to drop a new box at the
// mouse.
package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/config"
	"physics-playground/internal/debug"
	"physics-playground/internal/graphics"
	"physics-playground/internal/telemetry"
)

func main() {
	prefs := config.Load()

	s, err := newSim(prefs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "boxes:", err)
		os.Exit(1)
	}

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMem
	dbg.ShowCounts = prefs.ShowCounts

	timer := telemetry.NewTimer()

	update := func() {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			s.spawnAt(s.canvas.MouseWorld())
		}
		timer.Start("tick")
		s.step(graphics.FrameTime())
		timer.End("tick")
		dbg.SetCounts(s.world.Len(), s.world.Contacts())
	}
	draw := func() {
		s.draw()
		dbg.Draw()
	}
	graphics.Run("boxes", int32(prefs.Window.Width), int32(prefs.Window.Height), int32(prefs.FPS), update, draw)

	timer.Describe(os.Stdout)
}
