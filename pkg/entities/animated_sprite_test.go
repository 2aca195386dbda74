package entities

import (
	"math"
	"testing"
)

func TestAnimatedSpriteFrameGrid(t *testing.T) {
	sprite := NewAnimatedSprite(shipTexture, newTestConfig())

	if sprite.Width() != 120 || sprite.Height() != 120 {
		t.Fatalf("expected 120x120 frames, got %vx%v", sprite.Width(), sprite.Height())
	}
	if len(sprite.frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(sprite.frames))
	}

	// 行优先：左上、右上、左下、右下
	want := []frameRegion{
		{0, 0, 120, 120},
		{120, 0, 120, 120},
		{0, 120, 120, 120},
		{120, 120, 120, 120},
	}
	for i, f := range sprite.frames {
		if f != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestSetPositionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"screen center", 400, 0},
		{"muzzle", 123.5, 110},
		{"negative", -30, -10},
		{"enemy row", 60, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sprite := NewAnimatedSprite(shipTexture, newTestConfig())
			sprite.SetPosition(tt.x, tt.y)

			if sprite.X() != tt.x {
				t.Errorf("X() = %v, want %v", sprite.X(), tt.x)
			}
			if sprite.Y() != tt.y {
				t.Errorf("Y() = %v, want %v", sprite.Y(), tt.y)
			}
			// 内部存储左边缘
			if sprite.Left() != tt.x-60 {
				t.Errorf("Left() = %v, want %v", sprite.Left(), tt.x-60)
			}
		})
	}
}

func TestMoveClampsHorizontally(t *testing.T) {
	tests := []struct {
		name     string
		startX   float64
		vx       float64
		dt       float64
		wantLeft float64
	}{
		{"free movement right", 400, 300, 0.1, 370},
		{"free movement left", 400, -300, 0.1, 310},
		{"clamp at left edge", 70, -300, 1, 0},
		{"clamp at right edge", 700, 300, 1, 680},
		{"exactly at right edge", 740, 0, 1, 680},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sprite := NewAnimatedSprite(shipTexture, newTestConfig())
			sprite.SetPosition(tt.startX, 0)
			sprite.SetVelocity(tt.vx, 0)

			sprite.Move(tt.dt)

			if math.Abs(sprite.Left()-tt.wantLeft) > 1e-9 {
				t.Errorf("Left() = %v, want %v", sprite.Left(), tt.wantLeft)
			}
			if sprite.Left() < 0 || sprite.Left() > 800-sprite.Width() {
				t.Errorf("Left() %v outside [0, %v]", sprite.Left(), 800-sprite.Width())
			}
		})
	}
}

func TestMoveVerticalIsNotClamped(t *testing.T) {
	shot := NewAnimatedSprite(shotTexture, newTestConfig())
	shot.SetPosition(400, 470)
	shot.SetVelocity(0, 300)

	shot.Move(1)

	if shot.Y() != 770 {
		t.Errorf("Y() = %v, want 770 (no vertical clamp)", shot.Y())
	}
	if shot.X() != 400 {
		t.Errorf("X() = %v, want 400 (horizontal clamp is a no-op for vertical shots)", shot.X())
	}
}

func TestTranslateIsUnclamped(t *testing.T) {
	sprite := NewAnimatedSprite(alienTexture, newTestConfig())
	sprite.SetPosition(760, 360)
	sprite.SetVelocity(250, 0)

	sprite.Translate(0.5)

	if sprite.X() != 885 {
		t.Errorf("X() = %v, want 885", sprite.X())
	}
}

func TestVelocityCommands(t *testing.T) {
	sprite := NewAnimatedSprite(shipTexture, newTestConfig())

	sprite.SetVelocity(10, 20)
	sprite.SetVelocity(5, 0)
	if vx, vy := sprite.Velocity(); vx != 5 || vy != 0 {
		t.Errorf("SetVelocity should replace, got (%v, %v)", vx, vy)
	}

	sprite.MoveRight()
	if vx, _ := sprite.Velocity(); vx != 300 {
		t.Errorf("MoveRight vx = %v, want 300", vx)
	}
	sprite.MoveLeft()
	if vx, _ := sprite.Velocity(); vx != -300 {
		t.Errorf("MoveLeft vx = %v, want -300", vx)
	}
	sprite.ChangeDirection()
	if vx, _ := sprite.Velocity(); vx != 300 {
		t.Errorf("ChangeDirection vx = %v, want 300", vx)
	}
}

func TestDrawAdvancesAnimation(t *testing.T) {
	sprite := NewAnimatedSprite(shipTexture, newTestConfig())
	sprite.SetPosition(400, 0)
	surface := &recordingSurface{}

	// 每次 0.06 秒，帧号 = int(累计时间/0.1) % 4
	// 注意 0.06*5 的浮点累加结果略小于 0.3
	wantFrames := []int{0, 1, 1, 2, 2, 3, 0, 0}
	for i, want := range wantFrames {
		sprite.Draw(surface, 0.06)
		if got := sprite.CurrentFrame(); got != want {
			t.Errorf("draw %d: frame = %d, want %d", i, got, want)
		}
	}

	if len(surface.calls) != len(wantFrames) {
		t.Fatalf("expected %d draw calls, got %d", len(wantFrames), len(surface.calls))
	}
	last := surface.calls[len(surface.calls)-1]
	if last.x != 340 || last.y != 0 {
		t.Errorf("drawn at (%v, %v), want (340, 0)", last.x, last.y)
	}
	if last.sw != 120 || last.sh != 120 {
		t.Errorf("drawn region %dx%d, want 120x120", last.sw, last.sh)
	}
}

func TestBoundingBoxFollowsPosition(t *testing.T) {
	sprite := NewAnimatedSprite(shotTexture, newTestConfig())
	sprite.SetPosition(100, 110)

	box := sprite.BoundingBox()
	if box.X != 90 || box.Y != 110 || box.Width != 20 || box.Height != 40 {
		t.Errorf("unexpected bounding box %+v", box)
	}

	sprite.SetVelocity(0, 300)
	sprite.Move(0.5)
	if got := sprite.BoundingBox().Y; got != 260 {
		t.Errorf("bounding box not recomputed, Y = %v, want 260", got)
	}
}

func TestDeadFlag(t *testing.T) {
	sprite := NewAnimatedSprite(shipTexture, newTestConfig())
	if sprite.IsDead() {
		t.Fatal("new sprite should be alive")
	}
	sprite.SetDead(true)
	if !sprite.IsDead() {
		t.Error("SetDead(true) should mark sprite dead")
	}
	sprite.SetDead(false)
	if sprite.IsDead() {
		t.Error("SetDead(false) should revive sprite")
	}
}
