package systems

import (
	"log"

	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/utils"
)

// ShotQuerier 子弹命中查询（查询即消耗，由 ShotManager 实现）
type ShotQuerier interface {
	PlayerShotTouches(boundingBox utils.Rect) bool
	EnemyShotTouches(boundingBox utils.Rect) bool
}

// CollisionResult 一帧碰撞检测的结果
type CollisionResult struct {
	EnemyHit    bool // 玩家子弹击中外星飞船的包围盒
	EnemyKilled bool // 被击中时敌人还活着
	PlayerHit   bool // 敌人子弹击中玩家飞船
}

// CollisionManager 每帧检测玩家与敌人之间的互射命中
//
// 除持有的三个引用外没有自己的可变状态。
type CollisionManager struct {
	player *entities.AnimatedSprite
	enemy  *entities.Enemy
	shots  ShotQuerier
}

// NewCollisionManager 创建碰撞管理器
func NewCollisionManager(player *entities.AnimatedSprite, enemy *entities.Enemy, shots ShotQuerier) *CollisionManager {
	return &CollisionManager{
		player: player,
		enemy:  enemy,
		shots:  shots,
	}
}

// HandleCollisions 检查双方是否被击中
//
// 先检查玩家子弹与敌人，再检查敌人子弹与玩家。两项检查相互独立，
// 同一帧内双方可以同时被击中。
//
// 检测不看存活状态：死亡敌人仍保留最后的包围盒，穿过它的玩家子弹会被消耗，
// 并让重生计时器重新从 RespawnDelay 开始。
func (cm *CollisionManager) HandleCollisions() CollisionResult {
	var result CollisionResult

	if cm.shots.PlayerShotTouches(cm.enemy.BoundingBox()) {
		result.EnemyHit = true
		result.EnemyKilled = !cm.enemy.IsDead()
		cm.enemy.Hit()
	}

	if cm.shots.EnemyShotTouches(cm.player.BoundingBox()) {
		cm.player.SetDead(true)
		result.PlayerHit = true
		log.Printf("[CollisionManager] Player ship destroyed at x=%.1f", cm.player.X())
	}

	return result
}
