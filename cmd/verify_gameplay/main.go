// verify_gameplay 无头运行一局游戏并输出统计
//
// 不需要窗口、终端或音频设备，用于在 CI 或调参时快速检查玩法：
// 玩家飞船跟随外星飞船移动并持续开火，直到被击毁或时间用完。
//
// 使用方法:
//
//	go run ./cmd/verify_gameplay -seed 42
//	go run ./cmd/verify_gameplay -seed 7 -duration 120 -dt 0.0333 -verbose
//	go run ./cmd/verify_gameplay -config data/game.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/shooter/pkg/config"
	"github.com/decker502/shooter/pkg/engine"
	"github.com/decker502/shooter/pkg/world"
)

var (
	seed       = flag.Int64("seed", 1, "敌人随机数种子")
	duration   = flag.Float64("duration", 60, "最长模拟时间（秒）")
	dt         = flag.Float64("dt", 1.0/60, "每帧时间（秒）")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置默认值）")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

// 与 assets/images 中精灵图一致的尺寸
var assets = world.Assets{
	Ship:      engine.StaticTexture{W: 240, H: 240},
	Alien:     engine.StaticTexture{W: 240, H: 160},
	Shot:      engine.StaticTexture{W: 40, H: 80},
	AlienShot: engine.StaticTexture{W: 40, H: 80},
}

// countingSound 统计开火次数
type countingSound map[engine.SoundID]int

func (c countingSound) PlaySound(id engine.SoundID) bool {
	c[id]++
	return true
}

// chasePointer 始终按在外星飞船正下方
type chasePointer struct {
	w *world.World
}

func (p chasePointer) Touching() bool { return !p.w.Enemy().IsDead() }

func (p chasePointer) Position() (int, int) {
	x, y := p.w.Camera().Project(p.w.Enemy().Sprite().X(), 0)
	return int(x), int(y)
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *dt <= 0 {
		fmt.Fprintln(os.Stderr, "dt must be positive")
		os.Exit(2)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
	}

	sound := countingSound{}
	w := world.New(cfg, assets, sound, rand.New(rand.NewSource(*seed)))
	pointer := chasePointer{w: w}

	ticks := 0
	for w.Elapsed() < *duration && !w.IsGameOver() {
		w.Tick(*dt, pointer)
		ticks++
	}

	result := "survived"
	if w.IsGameOver() {
		result = "destroyed"
	}

	fmt.Printf("seed:           %d\n", *seed)
	fmt.Printf("ticks:          %d (dt=%.4fs)\n", ticks, *dt)
	fmt.Printf("elapsed:        %.2fs\n", w.Elapsed())
	fmt.Printf("result:         %s\n", result)
	fmt.Printf("kills:          %d\n", w.Kills())
	fmt.Printf("enemy spawns:   %d\n", w.Enemy().SpawnCount())
	fmt.Printf("player shots:   %d fired, %d in flight\n", sound[engine.SoundLaser], w.Shots().PlayerShots())
	fmt.Printf("enemy shots:    %d fired, %d in flight\n", sound[engine.SoundPlasma], w.Shots().EnemyShots())
}
