package game

import (
	"image"
	"log"

	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenSurface 把世界坐标中的精灵区域绘制到 Ebitengine 屏幕
//
// 每帧在 Begin 和 End 之间提交绘制，顺序即绘制顺序。
// 世界坐标 Y 轴向上，屏幕 Y 轴向下，转换由摄像机完成。
type ScreenSurface struct {
	camera *utils.Camera
	screen *ebiten.Image

	warned bool
}

// NewScreenSurface 创建渲染表面
func NewScreenSurface(camera *utils.Camera) *ScreenSurface {
	return &ScreenSurface{camera: camera}
}

// Begin 开始一帧，绑定目标屏幕
func (s *ScreenSurface) Begin(screen *ebiten.Image) {
	s.screen = screen
}

// End 结束一帧
func (s *ScreenSurface) End() {
	s.screen = nil
}

// DrawRegion 绘制纹理区域，(x, y) 为世界坐标中的左下角
func (s *ScreenSurface) DrawRegion(tex engine.Texture, sx, sy, sw, sh int, x, y float64) {
	if s.screen == nil {
		return
	}
	it, ok := tex.(*ImageTexture)
	if !ok || it.Image == nil {
		if !s.warned {
			log.Printf("[ScreenSurface] Warning: cannot draw texture of type %T", tex)
			s.warned = true
		}
		return
	}

	region := it.Image.SubImage(image.Rect(sx, sy, sx+sw, sy+sh)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.camera.ScaleX(), s.camera.ScaleY())
	tx, ty := s.camera.RegionTopLeft(x, y, float64(sh))
	op.GeoM.Translate(tx, ty)
	op.Filter = ebiten.FilterLinear

	s.screen.DrawImage(region, op)
}
