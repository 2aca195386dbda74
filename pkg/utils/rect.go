package utils

// Rect 轴对齐边界框（AABB）
// X, Y 为左下角（世界坐标，Y 轴向上），Width/Height 为尺寸
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect 创建边界框
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Overlaps 检查两个边界框是否重叠
// 仅接触边缘不算重叠
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
