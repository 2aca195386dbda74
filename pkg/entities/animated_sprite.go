package entities

import (
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/utils"
)

// frameRegion 精灵图中一帧的像素区域（纹理坐标，左上角原点）
type frameRegion struct {
	x, y, w, h int
}

// AnimatedSprite 动画精灵
//
// 将精灵图按固定网格（默认 2x2）切分为动画帧，按时间循环播放，
// 并维护位置、速度和存活状态。
//
// 位置约定：
//   - SetPosition 的 x 是水平中心，y 是底边
//   - 内部存储左下角（left, bottom）
//   - X() 返回中心，Y() 返回底边，与 SetPosition 互逆
type AnimatedSprite struct {
	texture engine.Texture
	frames  []frameRegion

	frameWidth  float64
	frameHeight float64

	left, bottom float64 // 左下角世界坐标
	vx, vy       float64 // 速度（像素/秒）

	stateTime     float64 // 动画累计时间（秒）
	frameDuration float64

	screenWidth float64
	shipSpeed   float64

	dead bool
}

// NewAnimatedSprite 从精灵图创建动画精灵
//
// 参数:
//   - texture: 精灵图，宽高分别按列数、行数等分为帧
//   - cfg: 游戏配置（帧网格、帧时长、屏幕宽度、飞船速度）
//
// 返回:
//   - *AnimatedSprite: 位于原点、速度为零的存活精灵
func NewAnimatedSprite(texture engine.Texture, cfg *config.GameConfig) *AnimatedSprite {
	cols := cfg.Animation.FrameCols
	rows := cfg.Animation.FrameRows
	fw := texture.Width() / cols
	fh := texture.Height() / rows

	// 按行优先顺序建立帧表
	frames := make([]frameRegion, 0, cfg.FrameCount())
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			frames = append(frames, frameRegion{x: col * fw, y: row * fh, w: fw, h: fh})
		}
	}

	return &AnimatedSprite{
		texture:       texture,
		frames:        frames,
		frameWidth:    float64(fw),
		frameHeight:   float64(fh),
		frameDuration: cfg.Animation.FrameDuration,
		screenWidth:   float64(cfg.Screen.Width),
		shipSpeed:     cfg.Ship.Speed,
	}
}

// SetPosition 以水平中心 x 和底边 y 放置精灵
func (s *AnimatedSprite) SetPosition(x, y float64) {
	s.left = x - s.frameWidth/2
	s.bottom = y
}

// SetVelocity 替换当前速度（非叠加）
func (s *AnimatedSprite) SetVelocity(vx, vy float64) {
	s.vx = vx
	s.vy = vy
}

// Velocity 返回当前速度
func (s *AnimatedSprite) Velocity() (vx, vy float64) {
	return s.vx, s.vy
}

// MoveLeft 以飞船速度向左移动
func (s *AnimatedSprite) MoveLeft() {
	s.SetVelocity(-s.shipSpeed, 0)
}

// MoveRight 以飞船速度向右移动
func (s *AnimatedSprite) MoveRight() {
	s.SetVelocity(s.shipSpeed, 0)
}

// Translate 按速度推进位置，不做任何边界限制
func (s *AnimatedSprite) Translate(deltaTime float64) {
	s.left += s.vx * deltaTime
	s.bottom += s.vy * deltaTime
}

// Move 按速度推进位置，并把水平位置限制在 [0, screenWidth - frameWidth]
//
// 限制对所有精灵生效。子弹只有垂直速度，因此对子弹无影响；
// 子弹的上下边界由 ShotManager 的剔除逻辑处理。
func (s *AnimatedSprite) Move(deltaTime float64) {
	s.Translate(deltaTime)

	maxLeft := s.screenWidth - s.frameWidth
	if s.left > maxLeft {
		s.left = maxLeft
	}
	if s.left < 0 {
		s.left = 0
	}
}

// ChangeDirection 反转水平速度
// 不改变位置，下一次移动时才体现方向变化
func (s *AnimatedSprite) ChangeDirection() {
	s.vx = -s.vx
}

// Draw 推进动画时间并绘制当前帧
//
// 帧序号 = int(stateTime / frameDuration) % 帧数（循环播放）
func (s *AnimatedSprite) Draw(surface engine.Surface, frameTime float64) {
	s.stateTime += frameTime
	frame := s.frames[s.CurrentFrame()]
	surface.DrawRegion(s.texture, frame.x, frame.y, frame.w, frame.h, s.left, s.bottom)
}

// CurrentFrame 当前动画帧序号
func (s *AnimatedSprite) CurrentFrame() int {
	if len(s.frames) == 0 {
		return 0
	}
	index := int(s.stateTime / s.frameDuration)
	return index % len(s.frames)
}

// BoundingBox 返回当前位置的碰撞盒，每次调用重新计算
func (s *AnimatedSprite) BoundingBox() utils.Rect {
	return utils.NewRect(s.left, s.bottom, s.frameWidth, s.frameHeight)
}

// X 返回水平中心
func (s *AnimatedSprite) X() float64 {
	return s.left + s.frameWidth/2
}

// Y 返回底边
func (s *AnimatedSprite) Y() float64 {
	return s.bottom
}

// Left 返回左边缘
func (s *AnimatedSprite) Left() float64 {
	return s.left
}

// Width 帧宽度
func (s *AnimatedSprite) Width() float64 {
	return s.frameWidth
}

// Height 帧高度
func (s *AnimatedSprite) Height() float64 {
	return s.frameHeight
}

// IsDead 是否已死亡
func (s *AnimatedSprite) IsDead() bool {
	return s.dead
}

// SetDead 设置死亡标记
// 死亡精灵由持有它的组件负责跳过绘制
func (s *AnimatedSprite) SetDead(dead bool) {
	s.dead = dead
}
