// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/embedded"
	"github.com/decker502/shooter/pkg/game"
	"github.com/decker502/shooter/pkg/scenes"
	"github.com/decker502/shooter/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

const (
	// AppName gdata 存储使用的应用名
	AppName = "null_pointer_shooter"

	resourceConfigPath = "assets/config/resources.yaml"
	gameConfigPath     = "data/game.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 敌人随机数种子，0 表示使用当前时间
	Seed int64
	// ConfigPath 外部游戏配置文件，为空时使用内嵌的 data/game.yaml
	ConfigPath string
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig      *config.GameConfig
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化时从工作目录读取资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)

	if err := resourceManager.LoadResourceConfig(resourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup(scenes.ResourceGroupGame); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	settingsManager := game.NewSettingsManager(openStorage())
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	ebiten.SetFullscreen(settingsManager.GetSettings().Fullscreen)

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] Random seed: %d", seed)

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewGameScene(scenes.GameSceneDeps{
			Config:          gameConfig,
			ResourceManager: resourceManager,
			AudioManager:    audioManager,
			SettingsManager: settingsManager,
			Rand:            rng,
		})
	})
	if err := sceneManager.Restart(); err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}

	return &App{
		gameConfig:      gameConfig,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadGameConfig 读取游戏配置：外部文件 > 内嵌 data/game.yaml > 编译期默认值
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		log.Printf("[Config] 加载游戏配置: %s", path)
		return config.LoadGameConfig(path)
	}

	if embedded.Exists(gameConfigPath) {
		data, err := embedded.ReadFile(gameConfigPath)
		if err != nil {
			return nil, err
		}
		log.Printf("[Config] 加载内嵌游戏配置: %s", gameConfigPath)
		return config.ParseGameConfig(data)
	}

	log.Printf("[Config] 未找到游戏配置，使用默认值")
	return config.DefaultGameConfig(), nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置只保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		return nil
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Settings storage: %s", path)
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Screen.Width, a.gameConfig.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen F11 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := a.settingsManager.ToggleFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（与世界尺寸一致）
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Screen.Width, a.gameConfig.Screen.Height
}

// GameConfig 返回本次运行使用的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
