package systems

import (
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/entities"
	"github.com/decker502/shooter/pkg/utils"
)

// PlayerShooter 能发射玩家子弹的对象（由 ShotManager 实现）
type PlayerShooter interface {
	FirePlayerShot(shipCenterX float64) bool
}

// InputSystem 将触摸输入转换为玩家飞船指令
//
// 触摸时：
//   - 指针（世界坐标）在飞船中心右侧 → 向右移动，否则向左移动
//   - 同时请求在飞船中心开火（受冷却限制）
//
// 松开后飞船保持当前速度，直到被屏幕边缘挡住。
type InputSystem struct {
	camera *utils.Camera
	ship   *entities.AnimatedSprite
	gun    PlayerShooter
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - camera: 用于把指针屏幕坐标转换为世界坐标
//   - ship: 玩家飞船
//   - gun: 玩家开火目标
func NewInputSystem(camera *utils.Camera, ship *entities.AnimatedSprite, gun PlayerShooter) *InputSystem {
	return &InputSystem{
		camera: camera,
		ship:   ship,
		gun:    gun,
	}
}

// Update 处理当前帧的指针状态
// 返回本帧是否成功开火
func (is *InputSystem) Update(pointer engine.Pointer) bool {
	if !pointer.Touching() {
		return false
	}

	px, py := pointer.Position()
	touchX, _ := is.camera.Unproject(float64(px), float64(py))

	shipX := is.ship.X()
	if touchX > shipX {
		is.ship.MoveRight()
	} else {
		is.ship.MoveLeft()
	}

	return is.gun.FirePlayerShot(shipX)
}
