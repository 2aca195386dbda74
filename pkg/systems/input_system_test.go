package systems

import (
	"testing"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/utils"
)

// recordingGun 记录开火请求
type recordingGun struct {
	requests []float64
	accept   bool
}

func (g *recordingGun) FirePlayerShot(x float64) bool {
	g.requests = append(g.requests, x)
	return g.accept
}

func newTestShip() *entities.AnimatedSprite {
	ship := entities.NewAnimatedSprite(shipTexture, config.DefaultGameConfig())
	ship.SetPosition(400, 0)
	return ship
}

func TestInputSystemSteering(t *testing.T) {
	tests := []struct {
		name   string
		view   [2]float64
		px, py int
		wantVX float64
	}{
		{"touch right of ship", [2]float64{800, 480}, 600, 200, 300},
		{"touch left of ship", [2]float64{800, 480}, 100, 450, -300},
		{"touch exactly at ship center", [2]float64{800, 480}, 400, 240, -300},
		{"scaled viewport right", [2]float64{1600, 960}, 1000, 100, 300},
		{"scaled viewport left", [2]float64{1600, 960}, 700, 100, -300},
		{"terminal cells right", [2]float64{80, 24}, 50, 10, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := utils.NewCamera(800, 480, tt.view[0], tt.view[1])
			ship := newTestShip()
			gun := &recordingGun{accept: true}
			input := NewInputSystem(camera, ship, gun)

			fired := input.Update(&fakePointer{touching: true, x: tt.px, y: tt.py})

			if vx, _ := ship.Velocity(); vx != tt.wantVX {
				t.Errorf("vx = %v, want %v", vx, tt.wantVX)
			}
			if !fired {
				t.Error("expected fire result to be passed through")
			}
			if len(gun.requests) != 1 || gun.requests[0] != 400 {
				t.Errorf("fire requests = %v, want [400]", gun.requests)
			}
		})
	}
}

func TestInputSystemNoTouch(t *testing.T) {
	camera := utils.NewCamera(800, 480, 800, 480)
	ship := newTestShip()
	gun := &recordingGun{accept: true}
	input := NewInputSystem(camera, ship, gun)

	if input.Update(&fakePointer{touching: false, x: 700, y: 100}) {
		t.Error("no touch should not fire")
	}
	if input.Update(engine.NoPointer{}) {
		t.Error("idle pointer should not fire")
	}
	if vx, _ := ship.Velocity(); vx != 0 {
		t.Errorf("ship should not be steered, vx = %v", vx)
	}
	if len(gun.requests) != 0 {
		t.Errorf("unexpected fire requests %v", gun.requests)
	}
}

func TestInputSystemVelocityPersistsAfterRelease(t *testing.T) {
	camera := utils.NewCamera(800, 480, 800, 480)
	ship := newTestShip()
	input := NewInputSystem(camera, ship, &recordingGun{})

	input.Update(&fakePointer{touching: true, x: 700, y: 100})
	input.Update(&fakePointer{touching: false})

	if vx, _ := ship.Velocity(); vx != 300 {
		t.Errorf("velocity should persist after release, vx = %v", vx)
	}
}

func TestInputSystemRespectsCooldown(t *testing.T) {
	camera := utils.NewCamera(800, 480, 800, 480)
	ship := newTestShip()
	shots, sound := newTestShotManager()
	input := NewInputSystem(camera, ship, shots)
	pointer := &fakePointer{touching: true, x: 700, y: 100}

	// 按住不放，60 帧共 1 秒
	fired := 0
	for i := 0; i < 60; i++ {
		if input.Update(pointer) {
			fired++
		}
		shots.Update(1.0 / 60)
	}

	if fired < 1 || fired > 2 {
		t.Errorf("holding for 1s fired %d shots, want 1 or 2", fired)
	}
	if len(sound.played) != fired {
		t.Errorf("played %d sounds for %d shots", len(sound.played), fired)
	}
}
