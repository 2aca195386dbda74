package terminal

import "github.com/gdamore/tcell/v2"

// keyHoldTime 方向键按下后视为持续触摸的时间（秒）
// 终端没有按键释放事件，按住时依靠系统的按键重复刷新
const keyHoldTime = 0.15

// Pointer 终端指针，实现 engine.Pointer
//
// 输入来源：
//   - 鼠标左键：按下期间在鼠标所在字符格触摸
//   - 方向键 ←/→ 或 a/d：在屏幕最左/最右列触摸一小段时间
//
// 坐标单位是字符格。
type Pointer struct {
	cols, rows int

	mouseDown bool
	mouseX    int
	mouseY    int

	keyHold float64
	keyX    int

	pressed bool
}

// NewPointer 创建指针，cols/rows 为游戏区域的字符格尺寸
func NewPointer(cols, rows int) *Pointer {
	return &Pointer{cols: cols, rows: rows}
}

// Resize 更新游戏区域尺寸
func (p *Pointer) Resize(cols, rows int) {
	p.cols, p.rows = cols, rows
}

// HandleEvent 处理一个 tcell 事件，返回事件是否被指针消费
func (p *Pointer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !p.mouseDown {
			p.pressed = true
		}
		p.mouseDown = down
		p.mouseX, p.mouseY = x, y
		return true

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyLeft, ev.Key() == tcell.KeyRune && ev.Rune() == 'a':
			p.holdKey(0)
			return true
		case ev.Key() == tcell.KeyRight, ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			p.holdKey(p.cols - 1)
			return true
		case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			p.pressed = true
			return true
		}
	}
	return false
}

func (p *Pointer) holdKey(col int) {
	if p.keyHold <= 0 {
		p.pressed = true
	}
	p.keyHold = keyHoldTime
	p.keyX = col
}

// Advance 推进按键保持计时
func (p *Pointer) Advance(deltaTime float64) {
	if p.keyHold > 0 {
		p.keyHold -= deltaTime
	}
}

// Touching 实现 engine.Pointer
func (p *Pointer) Touching() bool {
	return p.mouseDown || p.keyHold > 0
}

// Position 实现 engine.Pointer，鼠标优先
func (p *Pointer) Position() (int, int) {
	if p.mouseDown {
		return p.mouseX, p.mouseY
	}
	return p.keyX, p.rows / 2
}

// ConsumePress 自上次调用以来是否有新的按下（点击、方向键、空格或回车）
func (p *Pointer) ConsumePress() bool {
	pressed := p.pressed
	p.pressed = false
	return pressed
}
