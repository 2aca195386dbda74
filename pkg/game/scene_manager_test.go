package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	id           int
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	restart      bool
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) WantsRestart() bool {
	return m.restart
}

// TestNewSceneManager verifies that NewSceneManager starts without a scene.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	// 没有场景时 Update/Draw 不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
}

// TestSceneManagerUpdateAndDraw verifies that calls reach the current scene.
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	sm.Draw(nil)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %.3f", mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerRestart verifies the factory is used for new sessions.
func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	created := 0
	sm.SetSceneFactory(func() (Scene, error) {
		created++
		return &MockScene{id: created}, nil
	})

	if err := sm.Restart(); err != nil {
		t.Fatalf("Restart() error: %v", err)
	}
	if sm.Restarts() != 0 {
		t.Errorf("first scene should not count as a restart, got %d", sm.Restarts())
	}

	first := sm.GetCurrentScene().(*MockScene)
	first.restart = true
	sm.Update(0.016)

	current := sm.GetCurrentScene().(*MockScene)
	if current.id != 2 {
		t.Errorf("expected scene 2 after restart request, got %d", current.id)
	}
	if sm.Restarts() != 1 {
		t.Errorf("Restarts() = %d, want 1", sm.Restarts())
	}

	// 新场景没有请求重开，不应再次替换
	sm.Update(0.016)
	if sm.GetCurrentScene().(*MockScene).id != 2 {
		t.Error("scene replaced without a restart request")
	}
}

// TestSceneManagerRestartErrors verifies failures keep the current scene.
func TestSceneManagerRestartErrors(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Restart(); err == nil {
		t.Error("Restart() without factory should fail")
	}

	existing := &MockScene{id: 1}
	sm.SwitchTo(existing)
	boom := errors.New("boom")
	sm.SetSceneFactory(func() (Scene, error) { return nil, boom })

	if err := sm.Restart(); !errors.Is(err, boom) {
		t.Errorf("Restart() error = %v, want %v", err, boom)
	}
	if sm.GetCurrentScene() != existing {
		t.Error("failed restart should keep the current scene")
	}
}
