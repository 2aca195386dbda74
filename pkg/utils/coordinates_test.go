package utils

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCameraIdentityViewport(t *testing.T) {
	cam := NewCamera(800, 480, 800, 480)

	tests := []struct {
		name           string
		worldX, worldY float64
		wantX, wantY   float64
	}{
		{"bottom-left", 0, 0, 0, 480},
		{"top-left", 0, 480, 0, 0},
		{"center", 400, 240, 400, 240},
		{"ship muzzle", 400, 110, 400, 370},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := cam.Project(tt.worldX, tt.worldY)
			if !almostEqual(sx, tt.wantX) || !almostEqual(sy, tt.wantY) {
				t.Errorf("Project(%v, %v) = (%v, %v), want (%v, %v)",
					tt.worldX, tt.worldY, sx, sy, tt.wantX, tt.wantY)
			}
			wx, wy := cam.Unproject(sx, sy)
			if !almostEqual(wx, tt.worldX) || !almostEqual(wy, tt.worldY) {
				t.Errorf("Unproject round trip = (%v, %v), want (%v, %v)", wx, wy, tt.worldX, tt.worldY)
			}
		})
	}
}

func TestCameraScaledViewport(t *testing.T) {
	// 80x24 终端
	cam := NewCamera(800, 480, 80, 24)

	if !almostEqual(cam.ScaleX(), 0.1) || !almostEqual(cam.ScaleY(), 0.05) {
		t.Fatalf("unexpected scale (%v, %v)", cam.ScaleX(), cam.ScaleY())
	}

	wx, wy := cam.Unproject(40, 12)
	if !almostEqual(wx, 400) || !almostEqual(wy, 240) {
		t.Errorf("Unproject(40, 12) = (%v, %v), want (400, 240)", wx, wy)
	}

	// 飞船帧 120 高，底边在 0
	sx, sy := cam.RegionTopLeft(340, 0, 120)
	if !almostEqual(sx, 34) || !almostEqual(sy, 18) {
		t.Errorf("RegionTopLeft = (%v, %v), want (34, 18)", sx, sy)
	}
}

func TestCameraZeroViewport(t *testing.T) {
	cam := NewCamera(800, 480, 0, 0)
	wx, wy := cam.Unproject(10, 10)
	if wx != 0 || wy != 0 {
		t.Errorf("zero viewport should unproject to origin, got (%v, %v)", wx, wy)
	}
}
