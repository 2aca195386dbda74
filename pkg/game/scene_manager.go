package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建新一局的游戏场景，避免 game 包依赖 scenes 包
type SceneFactory func() (Scene, error)

var errNoSceneFactory = errors.New("scene factory not set")

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	restarts     int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Restart to set one.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restarts 已重开的次数（不含第一局）
func (sm *SceneManager) Restarts() int {
	return sm.restarts
}

// Restart 通过工厂函数创建新场景并切换过去
//
// 创建失败时保留当前场景并返回错误。
func (sm *SceneManager) Restart() error {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return errNoSceneFactory
	}

	newScene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %v", err)
		return err
	}

	if sm.currentScene != nil {
		sm.restarts++
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 新的一局开始 (restart #%d)", sm.restarts)
	return nil
}

// Update updates the currently active scene and handles restart requests.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)

	if r, ok := sm.currentScene.(RestartRequester); ok && r.WantsRestart() {
		if err := sm.Restart(); err != nil {
			log.Printf("[SceneManager] Warning: restart failed: %v", err)
		}
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
