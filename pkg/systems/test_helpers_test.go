package systems

import (
	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
)

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []engine.SoundID
}

func (r *recordingSound) PlaySound(id engine.SoundID) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSound) count(id engine.SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// countingSurface 统计绘制次数
type countingSurface struct {
	draws []float64 // 每次绘制的底边 Y
}

func (s *countingSurface) DrawRegion(_ engine.Texture, _, _, _, _ int, _, y float64) {
	s.draws = append(s.draws, y)
}

// fakePointer 可脚本控制的指针
type fakePointer struct {
	touching bool
	x, y     int
}

func (p *fakePointer) Touching() bool       { return p.touching }
func (p *fakePointer) Position() (int, int) { return p.x, p.y }

var (
	shipTexture      = engine.StaticTexture{W: 240, H: 240}
	alienTexture     = engine.StaticTexture{W: 240, H: 240}
	shotTexture      = engine.StaticTexture{W: 40, H: 80}
	enemyShotTexture = engine.StaticTexture{W: 40, H: 80}
)

func newTestShotManager() (*ShotManager, *recordingSound) {
	sound := &recordingSound{}
	return NewShotManager(shotTexture, enemyShotTexture, sound, config.DefaultGameConfig()), sound
}
