package entities

import (
	"math/rand"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
)

// drawCall 记录一次 DrawRegion 调用
type drawCall struct {
	tex            engine.Texture
	sx, sy, sw, sh int
	x, y           float64
}

// recordingSurface 记录所有绘制调用的渲染表面
type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) DrawRegion(tex engine.Texture, sx, sy, sw, sh int, x, y float64) {
	s.calls = append(s.calls, drawCall{tex: tex, sx: sx, sy: sy, sw: sw, sh: sh, x: x, y: y})
}

// mockShotFirer 记录敌人开火位置
type mockShotFirer struct {
	shots []float64
}

func (m *mockShotFirer) FireEnemyShot(centerX float64) {
	m.shots = append(m.shots, centerX)
}

// 与原始素材一致的精灵图尺寸（2x2 网格）
var (
	shipTexture  = engine.StaticTexture{W: 240, H: 240}
	alienTexture = engine.StaticTexture{W: 240, H: 240}
	shotTexture  = engine.StaticTexture{W: 40, H: 80}
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func newTestConfig() *config.GameConfig {
	return config.DefaultGameConfig()
}
