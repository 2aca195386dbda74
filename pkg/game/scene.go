package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// RestartRequester 是一个可选接口，场景通过它请求重开一局
//
// SceneManager 在每次 Update 之后检查，返回 true 时用工厂函数创建新场景替换当前场景。
type RestartRequester interface {
	WantsRestart() bool
}
