// Package graphics owns the window loop and a small world-space canvas on
// top of raylib. Simulations draw in their own coordinates (y up, origin
// wherever they like) and the canvas maps them to screen pixels.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens a window and drives the main loop. Each frame it calls update
// (input and simulation stepping), then clears the screen and calls draw.
func Run(title string, width, height, fps int32, update, draw func()) {
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// FrameTime returns the seconds elapsed for the last frame.
func FrameTime() float64 {
	return float64(rl.GetFrameTime())
}
