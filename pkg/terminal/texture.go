// Package terminal 提供基于 tcell 的终端前端
//
// 终端版复用与桌面版相同的 World：
//   - Surface 把世界坐标中的精灵区域投影到字符格
//   - Pointer 把鼠标和方向键转换为触摸输入
//   - Synth 用 beep 实时合成开火音效和背景音
//
// 字符格纹理只保留尺寸和每帧的字符，碰撞与移动仍按像素尺寸计算，
// 因此同一种子下终端版与桌面版的玩法完全一致。
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/shooter/pkg/world"
)

// 与 assets/images 中精灵图一致的像素尺寸
const (
	backgroundWidth  = 800
	backgroundHeight = 480
	shipSheetSize    = 240
	alienSheetWidth  = 240
	alienSheetHeight = 160
	shotSheetWidth   = 40
	shotSheetHeight  = 80
)

// Texture 字符格纹理
//
// 精灵图按 2x2 切帧，Frames 按行优先给出每帧使用的字符。
// Pattern 不为 nil 时忽略 Frames，按屏幕字符格坐标逐格生成内容（用于背景）。
type Texture struct {
	W, H    int
	Frames  []rune
	Style   tcell.Style
	Pattern func(col, row int) (rune, tcell.Style)
}

func (t *Texture) Width() int  { return t.W }
func (t *Texture) Height() int { return t.H }

// glyph 返回帧 frame 在屏幕格 (col, row) 处的字符
func (t *Texture) glyph(frame, col, row int) (rune, tcell.Style) {
	if t.Pattern != nil {
		return t.Pattern(col, row)
	}
	if len(t.Frames) == 0 {
		return ' ', t.Style
	}
	return t.Frames[frame%len(t.Frames)], t.Style
}

// frameIndex 由纹理中的区域推算行优先帧号
func (t *Texture) frameIndex(sx, sy, sw, sh int) int {
	if sw <= 0 || sh <= 0 {
		return 0
	}
	cols := t.W / sw
	if cols < 1 {
		cols = 1
	}
	return (sy/sh)*cols + sx/sw
}

// starfield 稀疏的固定星空
func starfield(col, row int) (rune, tcell.Style) {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	h := uint32(col)*73856093 ^ uint32(row)*19349663
	switch h % 53 {
	case 0:
		return '*', base.Foreground(tcell.ColorWhite)
	case 1, 2:
		return '.', base.Foreground(tcell.ColorGray)
	}
	return ' ', base
}

// NewAssets 创建终端纹理集
func NewAssets() world.Assets {
	space := tcell.StyleDefault.Background(tcell.ColorBlack)
	return world.Assets{
		Background: &Texture{W: backgroundWidth, H: backgroundHeight, Pattern: starfield},
		Ship: &Texture{
			W: shipSheetSize, H: shipSheetSize,
			Frames: []rune{'A', '^', 'A', '^'},
			Style:  space.Foreground(tcell.ColorAqua).Bold(true),
		},
		Alien: &Texture{
			W: alienSheetWidth, H: alienSheetHeight,
			Frames: []rune{'W', 'M', 'W', 'M'},
			Style:  space.Foreground(tcell.ColorLime).Bold(true),
		},
		Shot: &Texture{
			W: shotSheetWidth, H: shotSheetHeight,
			Frames: []rune{'|', '!', '|', '!'},
			Style:  space.Foreground(tcell.ColorYellow),
		},
		AlienShot: &Texture{
			W: shotSheetWidth, H: shotSheetHeight,
			Frames: []rune{'o', '*', 'o', '*'},
			Style:  space.Foreground(tcell.ColorFuchsia),
		},
	}
}
