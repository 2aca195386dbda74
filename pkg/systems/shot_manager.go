package systems

import (
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/utils"
)

// ShotManager 管理玩家和敌人的子弹
//
// 两组子弹分别保存在按发射顺序排列的切片中：
//   - 玩家子弹向上飞行，Y() 超过屏幕高度后剔除
//   - 敌人子弹向下飞行，Y() 低于 0 后剔除
//
// 玩家开火受冷却时间限制；敌人开火不受限制（由 Enemy 的随机判定控制频率）。
type ShotManager struct {
	cfg   *config.GameConfig
	sound engine.SoundPlayer

	shotTexture      engine.Texture
	enemyShotTexture engine.Texture

	shots      []*entities.AnimatedSprite // 玩家子弹
	enemyShots []*entities.AnimatedSprite // 敌人子弹

	timeSinceLastShot float64
}

// NewShotManager 创建射击管理器
//
// 参数:
//   - shotTexture: 玩家子弹精灵图
//   - enemyShotTexture: 敌人子弹精灵图
//   - sound: 开火音效播放器，可为 nil（静音）
//   - cfg: 游戏配置
func NewShotManager(shotTexture, enemyShotTexture engine.Texture, sound engine.SoundPlayer, cfg *config.GameConfig) *ShotManager {
	if sound == nil {
		sound = engine.NopSound{}
	}
	return &ShotManager{
		cfg:              cfg,
		sound:            sound,
		shotTexture:      shotTexture,
		enemyShotTexture: enemyShotTexture,
	}
}

// FirePlayerShot 在飞船中心发射玩家子弹
//
// 距上次成功开火不足冷却时间时忽略请求。
// 返回是否真正发射。
func (sm *ShotManager) FirePlayerShot(shipCenterX float64) bool {
	if !sm.canFireShot() {
		return false
	}

	shot := entities.NewAnimatedSprite(sm.shotTexture, sm.cfg)
	shot.SetPosition(shipCenterX, sm.cfg.Shot.PlayerMuzzleY)
	shot.SetVelocity(0, sm.cfg.Shot.Speed) // 只在 Y 轴移动
	sm.shots = append(sm.shots, shot)

	sm.timeSinceLastShot = 0
	sm.sound.PlaySound(engine.SoundLaser)
	return true
}

// FireEnemyShot 在外星飞船中心发射敌人子弹，无冷却限制
func (sm *ShotManager) FireEnemyShot(alienCenterX float64) {
	shot := entities.NewAnimatedSprite(sm.enemyShotTexture, sm.cfg)
	shot.SetPosition(alienCenterX, sm.cfg.Shot.EnemyMuzzleY)
	shot.SetVelocity(0, -sm.cfg.Shot.Speed) // 与玩家子弹方向相反
	sm.enemyShots = append(sm.enemyShots, shot)

	sm.sound.PlaySound(engine.SoundPlasma)
}

// Update 移动所有子弹，剔除飞出屏幕的子弹，并推进冷却计时
func (sm *ShotManager) Update(deltaTime float64) {
	screenHeight := float64(sm.cfg.Screen.Height)

	sm.shots = moveAndCull(sm.shots, deltaTime, func(shot *entities.AnimatedSprite) bool {
		return shot.Y() > screenHeight
	})
	// 0 是屏幕底部
	sm.enemyShots = moveAndCull(sm.enemyShots, deltaTime, func(shot *entities.AnimatedSprite) bool {
		return shot.Y() < 0
	})

	sm.timeSinceLastShot += deltaTime
}

// moveAndCull 原地移动并过滤子弹，保持剩余子弹的顺序
func moveAndCull(shots []*entities.AnimatedSprite, deltaTime float64, offScreen func(*entities.AnimatedSprite) bool) []*entities.AnimatedSprite {
	kept := shots[:0]
	for _, shot := range shots {
		shot.Move(deltaTime)
		if !offScreen(shot) {
			kept = append(kept, shot)
		}
	}
	// 清理尾部引用，便于回收
	for i := len(kept); i < len(shots); i++ {
		shots[i] = nil
	}
	return kept
}

// PlayerShotTouches 检查是否有玩家子弹与边界框重叠
//
// 命中时移除第一颗重叠的子弹并返回 true（查询即消耗）。
// 调用方无法在不消耗子弹的情况下探测命中。
func (sm *ShotManager) PlayerShotTouches(boundingBox utils.Rect) bool {
	var hit bool
	sm.shots, hit = consumeFirstHit(sm.shots, boundingBox)
	return hit
}

// EnemyShotTouches 检查是否有敌人子弹与边界框重叠，语义与 PlayerShotTouches 相同
func (sm *ShotManager) EnemyShotTouches(boundingBox utils.Rect) bool {
	var hit bool
	sm.enemyShots, hit = consumeFirstHit(sm.enemyShots, boundingBox)
	return hit
}

func consumeFirstHit(shots []*entities.AnimatedSprite, boundingBox utils.Rect) ([]*entities.AnimatedSprite, bool) {
	for i, shot := range shots {
		if shot.BoundingBox().Overlaps(boundingBox) {
			copy(shots[i:], shots[i+1:])
			shots[len(shots)-1] = nil
			return shots[:len(shots)-1], true
		}
	}
	return shots, false
}

// Draw 按发射顺序绘制所有子弹（先玩家后敌人）
func (sm *ShotManager) Draw(surface engine.Surface, frameTime float64) {
	for _, shot := range sm.shots {
		shot.Draw(surface, frameTime)
	}
	for _, shot := range sm.enemyShots {
		shot.Draw(surface, frameTime)
	}
}

// PlayerShots 当前飞行中的玩家子弹数
func (sm *ShotManager) PlayerShots() int {
	return len(sm.shots)
}

// EnemyShots 当前飞行中的敌人子弹数
func (sm *ShotManager) EnemyShots() int {
	return len(sm.enemyShots)
}

// PlayerShotSprites 返回玩家子弹（只读使用）
func (sm *ShotManager) PlayerShotSprites() []*entities.AnimatedSprite {
	return sm.shots
}

// EnemyShotSprites 返回敌人子弹（只读使用）
func (sm *ShotManager) EnemyShotSprites() []*entities.AnimatedSprite {
	return sm.enemyShots
}

// TimeSinceLastShot 距上次玩家开火的时间（秒）
func (sm *ShotManager) TimeSinceLastShot() float64 {
	return sm.timeSinceLastShot
}

// cooldownEpsilon 吸收帧时间累加的浮点误差（30 × 1/60 = 0.49999999999999994）
const cooldownEpsilon = 1e-9

// canFireShot 冷却时间是否已到
func (sm *ShotManager) canFireShot() bool {
	return sm.timeSinceLastShot+cooldownEpsilon >= sm.cfg.Shot.Cooldown
}
