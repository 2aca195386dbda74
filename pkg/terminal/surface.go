package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/utils"
)

// CellWriter 可写入字符格的屏幕（tcell.Screen 满足该接口）
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Surface 字符格渲染表面
//
// 世界坐标经 Camera 投影到 [0, cols) x [0, rows) 的字符格，
// 区域覆盖的每个字符格都会被填充，至少填充一个字符格，
// 这样 20 像素宽的子弹在 80 列终端上也可见。
type Surface struct {
	screen CellWriter
	camera *utils.Camera
}

// NewSurface 创建渲染表面，camera 的视口即可绘制的字符格范围
func NewSurface(screen CellWriter, camera *utils.Camera) *Surface {
	return &Surface{screen: screen, camera: camera}
}

// DrawRegion 实现 engine.Surface，非 *Texture 纹理会被忽略
func (s *Surface) DrawRegion(tex engine.Texture, sx, sy, sw, sh int, x, y float64) {
	t, ok := tex.(*Texture)
	if !ok {
		return
	}

	left, top := s.camera.Project(x, y+float64(sh))
	right, bottom := s.camera.Project(x+float64(sw), y)

	c0, c1 := cellSpan(left, right)
	r0, r1 := cellSpan(top, bottom)

	cols, rows := int(s.camera.ViewWidth), int(s.camera.ViewHeight)
	frame := t.frameIndex(sx, sy, sw, sh)

	for row := max(r0, 0); row <= min(r1, rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, cols-1); col++ {
			ch, style := t.glyph(frame, col, row)
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
}

// cellSpan 把连续区间 [from, to) 转换为覆盖它的字符格下标闭区间
func cellSpan(from, to float64) (first, last int) {
	first = int(math.Floor(from))
	last = int(math.Ceil(to)) - 1
	if last < first {
		last = first
	}
	return first, last
}
