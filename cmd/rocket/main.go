// Command rocket simulates a gimballed-nozzle rocket over a landing pad.
// An autopilot flies a hover-land-hover plan; press G to take manual
// control (W/S throttle, A/D nozzle), N to skip to the next stage.
package main

import (
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/config"
	"physics-playground/internal/debug"
	"physics-playground/internal/graphics"
	"physics-playground/internal/sprite"
	"physics-playground/internal/telemetry"
	"physics-playground/internal/vec"
)

func main() {
	prefs := config.Load()

	flight := telemetry.NewRecorder(100 * time.Millisecond)
	flight.AddSeries("position_y", 0, 400)
	flight.AddSeries("velocity_y", -100, 100)
	flight.AddSeries("ang_velocity", -6, 6)

	r, err := newRocket(flight)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rocket:", err)
		os.Exit(1)
	}
	pad := newLaunchPad(vec.Vector{X: 0, Y: -300})
	pad.settle(r)
	r.onGround = true

	flightLog := telemetry.NewFlightLog("logs/flight.txt")
	g := newGuidance(pad, r, flightLog)

	canvas := graphics.NewCanvas(prefs.Window.Width, prefs.Window.Height)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMem

	timer := telemetry.NewTimer()
	physicsDT := 1.0 / float64(prefs.PhysicsRate)

	update := func() {
		if rl.IsKeyPressed(rl.KeyG) {
			g.disabled = !g.disabled
			flightLog.Log(fmt.Sprintf("guidance enabled: %v", !g.disabled))
		}
		if rl.IsKeyPressed(rl.KeyN) {
			g.nextStage()
		}
		if g.disabled {
			r.setInput(rl.IsKeyDown(rl.KeyW), rl.IsKeyDown(rl.KeyS), rl.IsKeyDown(rl.KeyD), rl.IsKeyDown(rl.KeyA))
		}

		timer.Start("physics")
		cycles := int(graphics.FrameTime() / physicsDT)
		for i := 0; i < cycles; i++ {
			if !g.disabled {
				g.run(r)
			}
			r.update(physicsDT)
			pad.checkGround(r)
		}
		timer.End("physics")
	}
	draw := func() {
		pad.draw(canvas, float64(prefs.Window.Width))
		r.draw(canvas)
		if !g.disabled {
			g.draw(canvas)
		}
		drawHUD(canvas, r)
		drawCharts(canvas, flight, prefs.Window.Width)
		dbg.Draw()
	}
	graphics.Run("rocket sim", int32(prefs.Window.Width), int32(prefs.Window.Height), int32(prefs.FPS), update, draw)

	timer.Describe(os.Stdout)
}

var hudColor = sprite.Color{R: 255, G: 255, B: 255, A: 255}

func drawHUD(canvas *graphics.Canvas, r *rocket) {
	lines := []string{
		fmt.Sprintf("p: %.1f, %.1f m", r.body.Position.X, r.body.Position.Y),
		fmt.Sprintf("v: %.1f, %.1f m/s", r.body.Velocity.X, r.body.Velocity.Y),
		fmt.Sprintf("angle: %.2f rad", r.body.Angle),
		fmt.Sprintf("w: %.2f rad/s", r.body.AngularVelocity),
		fmt.Sprintf("thrust: %.2f", r.thrustFactor),
		fmt.Sprintf("nozzle: %.2f", r.nozzleFactor),
		fmt.Sprintf("on ground: %v", r.onGround),
	}
	for i, line := range lines {
		canvas.TextScreen(line, 12, int32(12+i*22), 18, hudColor)
	}
}

// drawCharts renders each telemetry series as a strip chart down the right
// edge of the screen.
func drawCharts(canvas *graphics.Canvas, flight *telemetry.Recorder, screenWidth int) {
	const (
		chartW   = 200
		chartH   = 100
		chartGap = 30
	)
	chartBG := sprite.Color{R: 40, G: 40, B: 40, A: 255}
	x := int32(screenWidth - chartW - 30)
	y := int32(chartGap)
	for _, s := range flight.Series() {
		rl.DrawRectangle(x, y, chartW, chartH, rl.NewColor(chartBG.R, chartBG.G, chartBG.B, chartBG.A))
		canvas.TextScreen(s.Name, x, y-14, 12, hudColor)

		samples := s.Samples()
		shift := telemetry.MaxSamples - len(samples)
		var prev rl.Vector2
		for i, v := range samples {
			px := vec.Map(float64(i+shift), 0, telemetry.MaxSamples-1, float64(x), float64(x+chartW))
			py := vec.Map(vec.Clamp(v, s.Min, s.Max), s.Min, s.Max, float64(y+chartH), float64(y))
			cur := rl.NewVector2(float32(px), float32(py))
			if i > 0 {
				rl.DrawLineV(prev, cur, rl.White)
			}
			prev = cur
		}
		y += chartH + chartGap
	}
}
