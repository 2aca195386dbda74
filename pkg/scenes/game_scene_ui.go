package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/shooter/pkg/utils"
)

const (
	hudMargin      = 8.0
	hudLineSpacing = 18.0
)

// hudStatus HUD 左上角的状态文本
// 移动端没有键盘，不显示音频快捷键
func hudStatus(kills int, musicOn, soundOn, mobile bool) string {
	if mobile {
		return fmt.Sprintf("KILLS %d", kills)
	}
	return fmt.Sprintf("KILLS %d   [M] music %s   [S] sound %s", kills, onOff(musicOn), onOff(soundOn))
}

// gameOverLines 游戏结束时居中显示的文本
func gameOverLines(kills int, canRestart bool) []string {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("aliens destroyed: %d", kills),
	}
	if canRestart {
		lines = append(lines, "tap to play again")
	}
	return lines
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// drawHUD 绘制击落数、音频开关和游戏结束提示
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	musicOn, soundOn := true, true
	if s.settingsManager != nil {
		settings := s.settingsManager.GetSettings()
		musicOn, soundOn = settings.MusicEnabled, settings.SoundEnabled
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudStatus(s.world.Kills(), musicOn, soundOn, utils.IsMobile()), s.hudFace, op)

	if !s.world.IsGameOver() {
		return
	}

	bounds := screen.Bounds()
	lines := gameOverLines(s.world.Kills(), s.world.CanRestart())
	y := float64(bounds.Dy())/2 - hudLineSpacing*float64(len(lines))/2
	for i, line := range lines {
		width := text.Advance(line, s.hudFace)
		lineOp := &text.DrawOptions{}
		lineOp.GeoM.Translate((float64(bounds.Dx())-width)/2, y)
		if i == 0 {
			lineOp.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 80, B: 80, A: 255})
		} else {
			lineOp.ColorScale.ScaleWithColor(color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
		text.Draw(screen, line, s.hudFace, lineOp)
		y += hudLineSpacing
	}
}
