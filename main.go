package main

import (
	"flag"
	"log"

	"github.com/decker502/shooter/pkg/app"
	"github.com/decker502/shooter/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	seed       = flag.Int64("seed", 0, "敌人随机数种子（0 表示随机）")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内嵌的 data/game.yaml）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       *seed,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	screen := gameApp.GameConfig().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle("Null Pointer Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
