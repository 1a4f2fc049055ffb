// Package view is a thin top-down renderer of the simulation grid: it
// draws agent positions and a HUD, and exposes play/pause/step
// controls. It is a consumer of the core's get_population_locations
// surface (§6), not part of the simulation core itself.
package view

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pelagic-labs/biotope/camera"
	"github.com/pelagic-labs/biotope/peeps"
)

// View owns the raylib window, the toroidal camera, and render state
// for one simulation run.
type View struct {
	cam     *camera.Camera
	screenW int32
	screenH int32

	Paused bool
	Step   bool // one-shot request to advance a single step while paused
}

// New opens a window sized to fit a sizeX x sizeY grid at cellSize
// pixels per cell, plus a HUD strip, and centers a toroidal camera on
// the grid.
func New(sizeX, sizeY, cellSize int) *View {
	const hudHeight = 40
	w := int32(sizeX * cellSize)
	h := int32(sizeY*cellSize) + hudHeight

	rl.InitWindow(w, h, "biotope")
	rl.SetTargetFPS(60)

	cam := camera.New(w, h-hudHeight, sizeX, sizeY, float32(cellSize))

	return &View{
		cam:     cam,
		screenW: w,
		screenH: h,
	}
}

// Close tears down the raylib window.
func (v *View) Close() {
	rl.CloseWindow()
}

// ShouldClose reports whether the user asked to close the window.
func (v *View) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// PollInput updates Paused/Step from keyboard state, and pan/zoom from
// the W/A/S/D keys and the mouse wheel. Space toggles pause; Right
// advances one step while paused.
func (v *View) PollInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.Paused = !v.Paused
	}
	v.Step = v.Paused && rl.IsKeyPressed(rl.KeyRight)

	const panSpeed = 8
	if rl.IsKeyDown(rl.KeyA) {
		v.cam.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyD) {
		v.cam.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyW) {
		v.cam.Pan(0, -panSpeed)
	}
	if rl.IsKeyDown(rl.KeyS) {
		v.cam.Pan(0, panSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.ZoomBy(1 + wheel*0.1)
	}
}

// Locations returns every live agent's grid position, the core's
// get_population_locations() surface (§6).
func Locations(p *peeps.Peeps) []rl.Vector2 {
	locs := make([]rl.Vector2, 0, p.Len())
	for i := 1; i <= p.Len(); i++ {
		ind := p.Pop[i]
		if ind == nil || !ind.Alive {
			continue
		}
		loc := ind.Location()
		locs = append(locs, rl.Vector2{X: float32(loc.X), Y: float32(loc.Y)})
	}
	return locs
}

// Draw renders one frame: agent cells (with wraparound ghost copies
// near world edges, via the toroidal camera) plus a HUD strip with
// generation/step/population counters and a pause/resume button.
func (v *View) Draw(p *peeps.Peeps, generationIndex int) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	const radiusCells = 0.5
	cellPx := v.cam.CellSize * v.cam.Zoom
	for _, loc := range Locations(p) {
		cellX, cellY := loc.X+radiusCells, loc.Y+radiusCells

		sx, sy := v.cam.WorldToScreen(cellX, cellY)
		rl.DrawRectangle(int32(sx-cellPx/2), int32(sy-cellPx/2), int32(cellPx), int32(cellPx), rl.Green)

		for _, ghost := range v.cam.GhostPositions(cellX, cellY, radiusCells) {
			rl.DrawRectangle(int32(ghost.X-cellPx/2), int32(ghost.Y-cellPx/2), int32(cellPx), int32(cellPx), rl.Green)
		}
	}

	hudY := v.screenH - 40
	rl.DrawRectangle(0, hudY, v.screenW, 40, rl.DarkGray)
	rl.DrawText(
		fmt.Sprintf("gen %d  step %d  pop %d  zoom %.1fx", generationIndex, p.Step(), p.Len(), v.cam.Zoom),
		10, hudY+12, 16, rl.RayWhite,
	)

	pauseLabel := "Pause"
	if v.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(v.screenW) - 110, Y: float32(hudY) + 5, Width: 100, Height: 30}, pauseLabel) {
		v.Paused = !v.Paused
	}

	rl.EndDrawing()
}
