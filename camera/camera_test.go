package camera

import (
	"math"
	"testing"
)

// gridCam builds a camera over a gridW x gridH grid at 1 pixel per
// cell, so grid-cell coordinates and pixel coordinates coincide and
// the assertions below can reuse the same numbers as a pixel camera.
func gridCam(viewportW, viewportH int32, gridW, gridH int) *Camera {
	return New(viewportW, viewportH, gridW, gridH, 1)
}

func TestNew(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)

	// Should be centered on the grid.
	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected camera at (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)

	// Camera center should map to screen center.
	sx, sy := cam.WorldToScreen(1280, 720)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		cellX, cellY := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(cellX, cellY)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, cellX, cellY, sx, sy)
		}
	}
}

func TestToroidalWrap(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)
	cam.X = 100 // near the left edge of the grid

	// An agent near the grid's right edge should appear on the left
	// side of the screen (closer via toroidal wraparound distance).
	sx, _ := cam.WorldToScreen(2500, 720)

	if sx >= 640 {
		t.Errorf("expected cell on left of screen, got x=%f", sx)
	}
}

func TestPanWraps(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)
	cam.X = 100

	// Panning left should wrap the camera to the right side of the grid.
	cam.Pan(-200, 0)

	if cam.X < 2000 {
		t.Errorf("expected X to wrap around, got %f", cam.X)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)

	// MinZoom should be max(1280/2560, 720/1440) = max(0.5, 0.5) = 0.5
	if cam.MinZoom != 0.5 {
		t.Errorf("expected MinZoom 0.5, got %f", cam.MinZoom)
	}

	cam.SetZoom(0.1) // below min
	if cam.Zoom != 0.5 {
		t.Errorf("expected zoom clamped to 0.5, got %f", cam.Zoom)
	}

	cam.SetZoom(10.0) // above max
	if cam.Zoom != 4.0 {
		t.Errorf("expected zoom clamped to 4.0, got %f", cam.Zoom)
	}
}

func TestMinZoomPreventsDeadSpace(t *testing.T) {
	// Asymmetric grid/viewport ratios.
	cam := gridCam(800, 600, 1600, 800)

	// MinZoom should be max(800/1600, 600/800) = max(0.5, 0.75) = 0.75
	if math.Abs(float64(cam.MinZoom-0.75)) > 0.001 {
		t.Errorf("expected MinZoom 0.75, got %f", cam.MinZoom)
	}

	// At min zoom, the visible extent should exactly fit the grid in
	// the limiting dimension.
	cam.SetZoom(cam.MinZoom)
	visibleH := cam.ViewportH / (cam.Zoom * cam.CellSize) // 600 / 0.75 = 800 = GridH
	if math.Abs(float64(visibleH-cam.GridH)) > 0.01 {
		t.Errorf("at min zoom, visible height %f should equal grid height %f", visibleH, cam.GridH)
	}
}

func TestIsVisible(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)

	// Camera centered at (1280, 720), viewport 1280x720.
	// Visible range in cell coords: (640, 360) to (1920, 1080).

	if !cam.IsVisible(1280, 720, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(2400, 1300, 10) {
		t.Error("far cell should not be visible")
	}
	if !cam.IsVisible(600, 720, 100) {
		t.Error("edge cell with large radius should be visible")
	}
}

func TestReset(t *testing.T) {
	cam := gridCam(1280, 720, 2560, 1440)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	if cam.X != 1280 || cam.Y != 720 {
		t.Errorf("expected position (1280, 720), got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

// TestCellSizeScalesScreenMapping checks that CellSize (pixels per
// grid cell), not just Zoom, scales the world-to-screen projection --
// the dimension a generic pixel camera wouldn't have, and the one that
// lets view.go hand it raw grid coordinates directly.
func TestCellSizeScalesScreenMapping(t *testing.T) {
	cam := New(640, 480, 64, 64, 8) // 8 screen pixels per grid cell

	sx, sy := cam.WorldToScreen(33, 32) // one cell right of center
	if math.Abs(float64(sx-(320+8))) > 0.01 || math.Abs(float64(sy-240)) > 0.01 {
		t.Errorf("expected one cell (8px) right of screen center, got (%f, %f)", sx, sy)
	}
}
