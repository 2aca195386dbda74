package terminal

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/world"
)

const (
	// frameInterval 终端刷新间隔（约 60 FPS）
	frameInterval = 16 * time.Millisecond
	// maxFrameTime 单帧时间上限，避免终端卡顿后一帧跳过太多
	maxFrameTime = 0.1
	// hudRows 底部状态栏占用的行数
	hudRows = 1
)

// Game 终端游戏循环
//
// 屏幕底部一行留给状态栏，其余字符格是游戏区域。
// 所有方法都在 Run 所在的 goroutine 中调用。
type Game struct {
	screen tcell.Screen
	cfg    *config.GameConfig
	sound  *Synth
	seed   int64

	world   *world.World
	surface *Surface
	pointer *Pointer

	sessions int
}

// NewGame 创建终端游戏，screen 需已 Init
//
// sound 可为 nil（静音）。seed 决定每局敌人行为，第 n 局使用 seed+n-1。
func NewGame(screen tcell.Screen, cfg *config.GameConfig, sound *Synth, seed int64) *Game {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	g := &Game{
		screen:  screen,
		cfg:     cfg,
		sound:   sound,
		seed:    seed,
		pointer: NewPointer(0, 0),
	}
	g.newSession()
	return g
}

// newSession 开始新的一局
func (g *Game) newSession() {
	var player engine.SoundPlayer = engine.NopSound{}
	if g.sound != nil {
		player = g.sound
	}

	rng := rand.New(rand.NewSource(g.seed + int64(g.sessions)))
	g.world = world.New(g.cfg, NewAssets(), player, rng)
	g.sessions++

	g.surface = NewSurface(g.screen, g.world.Camera())
	g.resize()
}

// resize 按当前终端尺寸更新视口
func (g *Game) resize() {
	cols, rows := g.screen.Size()
	rows -= hudRows
	if rows < 1 {
		rows = 1
	}
	g.world.SetViewport(float64(cols), float64(rows))
	g.pointer.Resize(cols, rows)
}

// World 当前一局
func (g *Game) World() *world.World {
	return g.world
}

// Sessions 已开始的局数
func (g *Game) Sessions() int {
	return g.sessions
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
		return true

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'm':
			if g.sound != nil {
				g.sound.ToggleMusic()
			}
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
			if g.sound != nil {
				g.sound.ToggleSound()
			}
			return true
		}
	}

	g.pointer.HandleEvent(ev)
	return true
}

// Step 推进一帧
//
// 游戏结束且过了重开等待时间后，新的按下开始下一局；
// 在此之前世界照常运行，敌人和子弹继续移动。
func (g *Game) Step(deltaTime float64) {
	g.pointer.Advance(deltaTime)

	if g.pointer.ConsumePress() && g.world.CanRestart() {
		log.Printf("[Terminal] Restart after %d kills", g.world.Kills())
		g.newSession()
		return
	}

	g.world.Tick(deltaTime, g.pointer)
}

// Render 绘制一帧并刷新屏幕
func (g *Game) Render(frameTime float64) {
	g.screen.Clear()
	g.world.Draw(g.surface, frameTime)
	g.drawHUD()
	g.screen.Show()
}

func (g *Game) drawHUD() {
	cols, rows := g.screen.Size()
	style := tcell.StyleDefault.Reverse(true)

	status := fmt.Sprintf(" KILLS %d | ←/→ or mouse: move+fire | m: music %s | s: sound %s | q: quit",
		g.world.Kills(), onOff(g.musicOn()), onOff(g.soundOn()))
	drawText(g.screen, 0, rows-1, cols, status, style)

	if !g.world.IsGameOver() {
		return
	}
	lines := []string{"GAME OVER", fmt.Sprintf("Kills: %d", g.world.Kills())}
	if g.world.CanRestart() {
		lines = append(lines, "Click or press Space to restart")
	}
	top := (rows - hudRows - len(lines)) / 2
	for i, line := range lines {
		runes := []rune(line)
		drawText(g.screen, (cols-len(runes))/2, top+i, len(runes), line, tcell.StyleDefault.Bold(true))
	}
}

func (g *Game) musicOn() bool {
	return g.sound != nil && g.sound.MusicEnabled()
}

func (g *Game) soundOn() bool {
	return g.sound != nil && g.sound.SoundEnabled()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// drawText 从 (x, y) 开始写入最多 width 个字符，不足部分用空格填充
func drawText(screen CellWriter, x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(runes) {
			ch = runes[i]
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Run 运行游戏循环直到退出或 ctx 取消
func (g *Game) Run(ctx context.Context) error {
	g.screen.EnableMouse()
	g.screen.HideCursor()
	if g.sound != nil {
		g.sound.PlaySound(engine.SoundAmbient)
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || !g.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameTime {
				dt = maxFrameTime
			}
			g.Step(dt)
			g.Render(dt)
		}
	}
}

var (
	_ engine.Pointer     = (*Pointer)(nil)
	_ engine.Surface     = (*Surface)(nil)
	_ engine.SoundPlayer = (*Synth)(nil)
)
