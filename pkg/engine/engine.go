// Package engine 定义游戏逻辑依赖的引擎协作者接口
//
// 玩法核心（精灵、射击管理、敌人、碰撞）不直接依赖 Ebitengine 或 tcell，
// 只通过本包的接口调用渲染、音频和输入服务。
// 桌面/移动端由 pkg/game 提供 Ebitengine 实现，终端版由 pkg/terminal 提供 tcell 实现。
//
// 坐标约定：
//   - 世界坐标以屏幕左下角为原点，Y 轴向上（与正交摄像机一致）
//   - 屏幕坐标（指针位置）以左上角为原点，Y 轴向下
//   - Surface 负责世界坐标到屏幕坐标的转换
package engine

// Texture 纹理（精灵图）
// 只暴露尺寸，帧切分由 AnimatedSprite 完成
type Texture interface {
	Width() int
	Height() int
}

// Surface 渲染表面
//
// DrawRegion 绘制纹理中的矩形区域 (sx, sy, sw, sh)（纹理像素坐标，左上角原点），
// (x, y) 是该区域在世界坐标中的左下角位置。
type Surface interface {
	DrawRegion(tex Texture, sx, sy, sw, sh int, x, y float64)
}

// Pointer 指针（触摸/鼠标）输入源
type Pointer interface {
	// Touching 当前是否有触摸或按下
	Touching() bool
	// Position 当前指针的屏幕像素坐标
	Position() (x, y int)
}

// SoundID 音效资源ID
type SoundID string

const (
	// SoundLaser 玩家开火音效
	SoundLaser SoundID = "SOUND_LASER"
	// SoundPlasma 敌人开火音效
	SoundPlasma SoundID = "SOUND_PLASMA"
	// SoundAmbient 背景音乐（循环）
	SoundAmbient SoundID = "SOUND_AMBIENT"
)

// SoundPlayer 音效播放器，播放后不返回任何信号给调用方
type SoundPlayer interface {
	// PlaySound 播放音效，返回是否实际播放（音效关闭或资源缺失时为 false）
	PlaySound(id SoundID) bool
}

// NopSound 静音播放器，用于无音频环境和测试
type NopSound struct{}

// PlaySound 不播放任何声音
func (NopSound) PlaySound(SoundID) bool { return false }

// NoPointer 从不触摸的指针，用于无输入的帧（无头模拟、测试）
type NoPointer struct{}

func (NoPointer) Touching() bool       { return false }
func (NoPointer) Position() (int, int) { return 0, 0 }

// StaticTexture 只有尺寸的纹理，用于无图形环境（无头模拟、测试）
type StaticTexture struct {
	W, H int
}

func (t StaticTexture) Width() int  { return t.W }
func (t StaticTexture) Height() int { return t.H }
