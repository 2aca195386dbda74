// termshooter 在终端中运行游戏
//
// 使用方法:
//
//	go run ./cmd/termshooter
//	go run ./cmd/termshooter -seed 42 -mute
//	go run ./cmd/termshooter -config data/game.yaml -log termshooter.log
//
// 操作：鼠标左键或 ←/→ 移动并开火，m 切换背景音，s 切换音效，q 退出。
// 终端占用标准输出，日志只写入 -log 指定的文件。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/terminal"
)

const defaultConfigPath = "data/game.yaml"

var (
	seed       = flag.Int64("seed", 0, "敌人随机数种子（0 表示随机）")
	configPath = flag.String("config", "", "游戏配置文件路径（默认尝试 data/game.yaml）")
	logPath    = flag.String("log", "", "日志文件路径（默认不输出日志）")
	mute       = flag.Bool("mute", false, "不打开音频设备")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termshooter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLog(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[Main] seed=%d", s)

	var synth *terminal.Synth
	if !*mute {
		synth = terminal.NewSynth(cfg.Session.MusicVolume)
		if err := synth.Initialize(); err != nil {
			log.Printf("[Main] Audio disabled: %v", err)
			synth = nil
		} else {
			defer synth.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := terminal.NewGame(screen, cfg, synth, s)
	if err := game.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	log.Printf("[Main] Exit after %d sessions", game.Sessions())
	return nil
}

// setupLog 把日志重定向到文件，未指定文件时丢弃日志
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// loadConfig 优先使用指定路径，其次是工作目录下的 data/game.yaml，最后是默认值
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return config.LoadGameConfig(defaultConfigPath)
	}
	return config.DefaultGameConfig(), nil
}
