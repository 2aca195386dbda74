// Package world 组合玩法核心，驱动一局游戏的逐帧更新与绘制
//
// World 拥有玩家飞船、外星飞船、射击管理器和碰撞管理器。
// 前端（Ebitengine 场景、终端循环、无头模拟）每帧调用一次 Tick，再调用 Draw。
// World 不是并发安全的，只能在游戏循环所在的 goroutine 中使用。
package world

import (
	"log"
	"math/rand"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/systems"
	"github.com/decker502/shooter/pkg/utils"
)

// Assets 一局游戏用到的纹理
type Assets struct {
	Background engine.Texture // 可为 nil
	Ship       engine.Texture
	Alien      engine.Texture
	Shot       engine.Texture
	AlienShot  engine.Texture
}

// World 一局游戏
type World struct {
	cfg    *config.GameConfig
	camera *utils.Camera

	background engine.Texture

	player     *entities.AnimatedSprite
	enemy      *entities.Enemy
	shots      *systems.ShotManager
	collisions *systems.CollisionManager
	input      *systems.InputSystem

	kills        int
	elapsed      float64
	gameOver     bool
	gameOverTime float64
}

// New 创建一局新游戏
//
// 玩家飞船位于屏幕底部中央，敌人立即生成。
// sound 可为 nil；rng 决定敌人行为，传入固定种子可复现整局。
func New(cfg *config.GameConfig, assets Assets, sound engine.SoundPlayer, rng *rand.Rand) *World {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	w := &World{
		cfg:        cfg,
		background: assets.Background,
		camera: utils.NewCamera(
			float64(cfg.Screen.Width), float64(cfg.Screen.Height),
			float64(cfg.Screen.Width), float64(cfg.Screen.Height),
		),
	}

	w.shots = systems.NewShotManager(assets.Shot, assets.AlienShot, sound, cfg)

	w.player = entities.NewAnimatedSprite(assets.Ship, cfg)
	w.player.SetPosition(float64(cfg.Screen.Width)/2, 0)

	w.enemy = entities.NewEnemy(assets.Alien, w.shots, cfg, rng)
	w.collisions = systems.NewCollisionManager(w.player, w.enemy, w.shots)
	w.input = systems.NewInputSystem(w.camera, w.player, w.shots)

	log.Printf("[World] New session: screen %dx%d, enemy at x=%.0f",
		cfg.Screen.Width, cfg.Screen.Height, w.enemy.Sprite().X())
	return w
}

// SetViewport 设置指针坐标所在的屏幕尺寸（窗口像素或终端字符格）
func (w *World) SetViewport(width, height float64) {
	w.camera.SetViewport(width, height)
}

// Camera 世界与屏幕坐标转换
func (w *World) Camera() *utils.Camera {
	return w.camera
}

// Tick 推进一帧
//
// 顺序：输入 → 玩家移动 → 敌人 AI/移动 → 子弹移动/剔除 → 碰撞。
// 玩家死亡后不再响应输入，也不再移动；敌人和子弹照常运行。
//
// pointer 为 nil 时按无触摸处理。
func (w *World) Tick(deltaTime float64, pointer engine.Pointer) {
	if pointer == nil {
		pointer = engine.NoPointer{}
	}
	w.elapsed += deltaTime

	if !w.player.IsDead() {
		w.input.Update(pointer)
		w.player.Move(deltaTime)
	}

	w.enemy.Update(deltaTime)
	w.shots.Update(deltaTime)

	result := w.collisions.HandleCollisions()
	if result.EnemyKilled {
		w.kills++
	}
	if result.PlayerHit && !w.gameOver {
		w.gameOver = true
		w.gameOverTime = w.elapsed
		log.Printf("[World] Game over after %.1fs, kills=%d", w.elapsed, w.kills)
	}
}

// Draw 绘制一帧：背景、玩家（存活时）、敌人、子弹
func (w *World) Draw(surface engine.Surface, frameTime float64) {
	if w.background != nil {
		surface.DrawRegion(w.background, 0, 0, w.background.Width(), w.background.Height(), 0, 0)
	}
	if !w.player.IsDead() {
		w.player.Draw(surface, frameTime)
	}
	w.enemy.Draw(surface, frameTime)
	w.shots.Draw(surface, frameTime)
}

// Kills 本局击落敌人数
func (w *World) Kills() int {
	return w.kills
}

// IsGameOver 玩家飞船是否已被击毁
func (w *World) IsGameOver() bool {
	return w.gameOver
}

// CanRestart 游戏结束并已超过重开等待时间
func (w *World) CanRestart() bool {
	return w.gameOver && w.elapsed-w.gameOverTime >= w.cfg.Session.RestartDelay
}

// Elapsed 本局已进行的时间（秒）
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Player 玩家飞船
func (w *World) Player() *entities.AnimatedSprite {
	return w.player
}

// Enemy 外星飞船
func (w *World) Enemy() *entities.Enemy {
	return w.enemy
}

// Shots 射击管理器
func (w *World) Shots() *systems.ShotManager {
	return w.shots
}

// Config 本局使用的配置
func (w *World) Config() *config.GameConfig {
	return w.cfg
}
