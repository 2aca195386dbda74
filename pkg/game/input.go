package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/shooter/pkg/engine"
)

// EbitenPointer 基于 Ebitengine 的指针输入，实现 engine.Pointer
//
// 触摸（移动设备）优先于鼠标左键（桌面设备）；多点触摸时只看第一个触点。
type EbitenPointer struct{}

var _ engine.Pointer = EbitenPointer{}

// Touching 当前是否有触摸或鼠标左键按下
func (EbitenPointer) Touching() bool {
	if _, ok := firstTouch(ebiten.AppendTouchIDs(nil)); ok {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Position 当前指针的屏幕坐标，无触摸时返回鼠标位置
func (EbitenPointer) Position() (x, y int) {
	if id, ok := firstTouch(ebiten.AppendTouchIDs(nil)); ok {
		return ebiten.TouchPosition(id)
	}
	return ebiten.CursorPosition()
}

// IsJustTouchedOrClicked 本帧是否有新的触摸或鼠标左键点击
func IsJustTouchedOrClicked() bool {
	if _, ok := firstTouch(inpututil.AppendJustPressedTouchIDs(nil)); ok {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func firstTouch(ids []ebiten.TouchID) (ebiten.TouchID, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
