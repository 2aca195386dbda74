package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GameScene 一局游戏
//
// 持有一个 world.World，每个 tick 把指针输入和时间交给它，
// 绘制时通过 ScreenSurface 把世界坐标转换为屏幕坐标。
// 游戏结束后等待重开延迟，点击或触摸即请求 SceneManager 开新的一局。
type GameScene struct {
	world   *world.World
	surface *game.ScreenSurface
	pointer engine.Pointer

	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager

	hudFace text.Face

	// 自上次 Draw 以来累计的时间，用于推进精灵动画
	pendingFrameTime float64
	wantsRestart     bool
}

// GameSceneDeps 创建游戏场景所需的依赖
type GameSceneDeps struct {
	Config          *config.GameConfig
	ResourceManager *game.ResourceManager
	AudioManager    *game.AudioManager    // 可为 nil（静音）
	SettingsManager *game.SettingsManager // 可为 nil
	Rand            *rand.Rand
}

// NewGameScene 创建新的一局
func NewGameScene(deps GameSceneDeps) (*GameScene, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	assets, err := loadWorldAssets(deps.ResourceManager, cfg)
	if err != nil {
		return nil, fmt.Errorf("game scene: %w", err)
	}

	var sound engine.SoundPlayer = engine.NopSound{}
	if deps.AudioManager != nil {
		sound = deps.AudioManager
	}

	w := world.New(cfg, assets, sound, deps.Rand)

	s := &GameScene{
		world:           w,
		surface:         game.NewScreenSurface(w.Camera()),
		pointer:         game.EbitenPointer{},
		audioManager:    deps.AudioManager,
		settingsManager: deps.SettingsManager,
		hudFace:         text.NewGoXFace(basicfont.Face7x13),
	}

	if s.audioManager != nil {
		s.audioManager.PreloadSounds([]engine.SoundID{engine.SoundLaser, engine.SoundPlasma})
		s.audioManager.SetMusicGain(w.Config().Session.MusicVolume)
		s.audioManager.PlayMusic(engine.SoundAmbient)
	}

	log.Printf("[GameScene] Scene created")
	return s, nil
}

// Update 处理按键并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.handleToggleKeys()

	if s.world.CanRestart() {
		if game.IsJustTouchedOrClicked() {
			s.wantsRestart = true
			return
		}
	}

	s.world.Tick(deltaTime, s.pointer)
	s.pendingFrameTime += deltaTime
}

// volumeStep 每次按键调节的音量
const volumeStep = 0.1

// handleToggleKeys M 切换音乐，S 切换音效；- / = 调音效音量，[ / ] 调音乐音量
func (s *GameScene) handleToggleKeys() {
	if s.audioManager == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.audioManager.ToggleMusic(engine.SoundAmbient)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.audioManager.ToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.audioManager.AdjustSoundVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.audioManager.AdjustSoundVolume(volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		s.audioManager.AdjustMusicVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		s.audioManager.AdjustMusicVolume(volumeStep)
	}
}

// Draw 绘制世界和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	frameTime := s.pendingFrameTime
	s.pendingFrameTime = 0

	s.surface.Begin(screen)
	s.world.Draw(s.surface, frameTime)
	s.surface.End()

	s.drawHUD(screen)
}

// WantsRestart 实现 game.RestartRequester
func (s *GameScene) WantsRestart() bool {
	return s.wantsRestart
}

// World 返回本局的世界
func (s *GameScene) World() *world.World {
	return s.world
}
