// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供正交摄像机，负责世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在屏幕左下角，Y 轴向上，范围 [0, 800] x [0, 480]
//   - **屏幕坐标**：原点在窗口左上角，Y 轴向下（Ebitengine 和终端都是如此）
//   - **视口尺寸**：Ebitengine 的逻辑屏幕与世界等大（缩放为 1）；
//     终端视口以字符格为单位，需要缩放
//
// # 核心转换公式
//
//	screenX = worldX * viewWidth / worldWidth
//	screenY = (worldHeight - worldY) * viewHeight / worldHeight
//
// 触摸输入使用反向转换（Unproject）得到世界坐标，
// 这样比较指针和飞船位置时两者处在同一坐标系中。
package utils

// Camera 正交摄像机
type Camera struct {
	WorldWidth, WorldHeight float64
	ViewWidth, ViewHeight   float64
}

// NewCamera 创建摄像机
//
// 参数:
//   - worldWidth, worldHeight: 世界尺寸（像素）
//   - viewWidth, viewHeight: 视口尺寸（屏幕像素或终端字符格）
func NewCamera(worldWidth, worldHeight, viewWidth, viewHeight float64) *Camera {
	return &Camera{
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
		ViewWidth:   viewWidth,
		ViewHeight:  viewHeight,
	}
}

// SetViewport 更新视口尺寸（终端大小变化时调用）
func (c *Camera) SetViewport(viewWidth, viewHeight float64) {
	c.ViewWidth = viewWidth
	c.ViewHeight = viewHeight
}

// ScaleX 世界像素到视口单位的水平缩放
func (c *Camera) ScaleX() float64 {
	if c.WorldWidth == 0 {
		return 0
	}
	return c.ViewWidth / c.WorldWidth
}

// ScaleY 世界像素到视口单位的垂直缩放
func (c *Camera) ScaleY() float64 {
	if c.WorldHeight == 0 {
		return 0
	}
	return c.ViewHeight / c.WorldHeight
}

// Project 世界坐标 → 屏幕坐标
func (c *Camera) Project(worldX, worldY float64) (screenX, screenY float64) {
	return worldX * c.ScaleX(), (c.WorldHeight - worldY) * c.ScaleY()
}

// Unproject 屏幕坐标 → 世界坐标
func (c *Camera) Unproject(screenX, screenY float64) (worldX, worldY float64) {
	sx, sy := c.ScaleX(), c.ScaleY()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return screenX / sx, c.WorldHeight - screenY/sy
}

// RegionTopLeft 计算世界坐标中左下角为 (x, y)、高度为 h 的区域在屏幕上的左上角
func (c *Camera) RegionTopLeft(x, y, h float64) (screenX, screenY float64) {
	return c.Project(x, y+h)
}
