package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageTexture 基于 Ebitengine 图片的纹理
type ImageTexture struct {
	Image *ebiten.Image
}

// NewImageTexture 包装已加载的图片
func NewImageTexture(img *ebiten.Image) *ImageTexture {
	return &ImageTexture{Image: img}
}

// Width 纹理宽度（像素）
func (t *ImageTexture) Width() int {
	return t.Image.Bounds().Dx()
}

// Height 纹理高度（像素）
func (t *ImageTexture) Height() int {
	return t.Image.Bounds().Dy()
}
