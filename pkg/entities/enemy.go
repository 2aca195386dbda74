package entities

import (
	"log"
	"math/rand"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/utils"
)

// timeEpsilon 吸收帧时间累减的浮点误差（如 120 × 1/60 不精确等于 2）
const timeEpsilon = 1e-9

// ShotFirer 能替敌人发射子弹的对象（由 ShotManager 实现）
type ShotFirer interface {
	FireEnemyShot(centerX float64)
}

// Enemy 外星飞船
//
// 状态机：存活 ⇄ 死亡等待重生
//   - 存活：每帧以 1/FlipChance 概率掉头、以 1/FireChance 概率开火，然后水平移动
//   - Hit()：进入死亡状态，重生计时器设为 RespawnDelay
//   - 死亡：计时器按帧时间递减，<= 0 时在新的随机位置重生
//
// 场上始终只有这一个敌人，不会永久消失。
type Enemy struct {
	texture engine.Texture
	shots   ShotFirer
	cfg     *config.GameConfig
	rng     *rand.Rand

	sprite       *AnimatedSprite
	spawnTimeout float64
	spawnCount   int
}

// NewEnemy 创建敌人并立即生成
//
// 参数:
//   - texture: 外星飞船精灵图
//   - shots: 开火目标（ShotManager）
//   - cfg: 游戏配置
//   - rng: 可设定种子的随机源，测试时传入固定种子
func NewEnemy(texture engine.Texture, shots ShotFirer, cfg *config.GameConfig, rng *rand.Rand) *Enemy {
	e := &Enemy{
		texture: texture,
		shots:   shots,
		cfg:     cfg,
		rng:     rng,
	}
	e.spawn()
	return e
}

// Update 更新敌人：存活时执行 AI 和移动，死亡时推进重生计时器
func (e *Enemy) Update(deltaTime float64) {
	if e.sprite.IsDead() {
		e.spawnTimeout -= deltaTime
		if e.spawnTimeout <= timeEpsilon {
			e.spawn()
		}
		return
	}

	if e.shouldChangeDirection() {
		e.sprite.ChangeDirection()
	}
	if e.shouldShoot() {
		e.shots.FireEnemyShot(e.sprite.X())
	}

	// 敌人不做硬性边界限制
	e.sprite.Translate(deltaTime)

	if e.cfg.Enemy.EdgeBounce {
		e.bounceAtEdge()
	}
}

// bounceAtEdge 越过屏幕边缘且仍向外移动时掉头
func (e *Enemy) bounceAtEdge() {
	vx, _ := e.sprite.Velocity()
	left := e.sprite.Left()
	right := left + e.sprite.Width()
	if (left < 0 && vx < 0) || (right > float64(e.cfg.Screen.Width) && vx > 0) {
		e.sprite.ChangeDirection()
	}
}

// Draw 绘制存活的敌人
func (e *Enemy) Draw(surface engine.Surface, frameTime float64) {
	if !e.sprite.IsDead() {
		e.sprite.Draw(surface, frameTime)
	}
}

// BoundingBox 敌人碰撞盒
func (e *Enemy) BoundingBox() utils.Rect {
	return e.sprite.BoundingBox()
}

// Hit 被击中：标记死亡并开始重生倒计时
func (e *Enemy) Hit() {
	e.sprite.SetDead(true)
	e.spawnTimeout = e.cfg.Enemy.RespawnDelay
	log.Printf("[Enemy] Hit at x=%.1f, respawn in %.1fs", e.sprite.X(), e.spawnTimeout)
}

// IsDead 是否处于死亡等待重生状态
func (e *Enemy) IsDead() bool {
	return e.sprite.IsDead()
}

// SpawnTimeout 剩余重生时间（存活时无意义）
func (e *Enemy) SpawnTimeout() float64 {
	return e.spawnTimeout
}

// SpawnCount 已生成次数（包括首次生成）
func (e *Enemy) SpawnCount() int {
	return e.spawnCount
}

// Sprite 返回当前精灵（每次重生都会替换）
func (e *Enemy) Sprite() *AnimatedSprite {
	return e.sprite
}

// spawn 创建新精灵并放到随机水平位置、屏幕顶部
func (e *Enemy) spawn() {
	e.sprite = NewAnimatedSprite(e.texture, e.cfg)
	x := e.createRandomPosition()

	e.sprite.SetPosition(x, float64(e.cfg.Screen.Height)-e.sprite.Height())
	e.sprite.SetVelocity(e.cfg.Enemy.Speed, 0)
	e.sprite.SetDead(false)
	e.spawnTimeout = 0
	e.spawnCount++
}

// createRandomPosition 返回 [frameWidth/2, screenWidth - frameWidth/2] 内的随机中心 X
// 保证整个飞船都在屏幕内
func (e *Enemy) createRandomPosition() float64 {
	width := int(e.sprite.Width())
	span := e.cfg.Screen.Width - width + 1
	if span < 1 {
		span = 1
	}
	return float64(e.rng.Intn(span) + width/2)
}

func (e *Enemy) shouldChangeDirection() bool {
	return e.rng.Intn(e.cfg.Enemy.FlipChance) == 0
}

func (e *Enemy) shouldShoot() bool {
	return e.rng.Intn(e.cfg.Enemy.FireChance) == 0
}
