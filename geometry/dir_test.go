package geometry

import "testing"

func TestRotateInverse(t *testing.T) {
	for d := Center; d <= NW; d++ {
		for k := -8; k <= 8; k++ {
			got := d.Rotate(k).Rotate(-k)
			if got != d {
				t.Errorf("Rotate(%d).Rotate(%d) on %v = %v, want %v", k, -k, d, got, d)
			}
		}
	}
}

func TestRotateFullCircle(t *testing.T) {
	for d := Center; d <= NW; d++ {
		if got := d.Rotate(8); got != d {
			t.Errorf("Rotate(8) on %v = %v, want %v", d, got, d)
		}
	}
}

func TestCoordDirRoundTrip(t *testing.T) {
	for _, d := range []Dir{N, NE, E, SE, S, SW, W, NW} {
		c := d.Coord()
		got := c.ToDir()
		if got != d {
			t.Errorf("Coord(%v)=%v .ToDir() = %v, want %v", d, c, got, d)
		}
	}
}

func TestCenterIsZero(t *testing.T) {
	if got := (Coord{0, 0}).ToDir(); got != Center {
		t.Errorf("zero coord ToDir() = %v, want Center", got)
	}
}
