package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 屏幕尺寸（逻辑像素）
// 正交摄像机的视口大小，所有玩法坐标都在这个范围内
const (
	GameWindowWidth  = 800
	GameWindowHeight = 480
)

// ErrInvalidConfig 表示配置值不合法
var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig 游戏玩法配置
//
// 所有字段都有编译期默认值（见 DefaultGameConfig），
// YAML 文件只需要写出想覆盖的字段。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Ship      ShipConfig      `yaml:"ship"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Shot      ShotConfig      `yaml:"shot"`
	Animation AnimationConfig `yaml:"animation"`
	Session   SessionConfig   `yaml:"session"`
}

// ScreenConfig 屏幕尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShipConfig 玩家飞船配置
type ShipConfig struct {
	Speed float64 `yaml:"speed"` // 水平移动速度（像素/秒）
}

// EnemyConfig 外星飞船配置
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`        // 水平移动速度（像素/秒）
	RespawnDelay float64 `yaml:"respawnDelay"` // 被击中后重生等待时间（秒）

	// FlipChance 每帧改变方向的概率为 1/FlipChance
	FlipChance int `yaml:"flipChance"`
	// FireChance 每帧开火的概率为 1/FireChance
	FireChance int `yaml:"fireChance"`

	// EdgeBounce 越过屏幕边缘且仍向外移动时立即掉头
	// 默认关闭：只依靠随机转向，敌人可能飞出屏幕一段时间
	EdgeBounce bool `yaml:"edgeBounce"`
}

// ShotConfig 子弹配置
type ShotConfig struct {
	Speed         float64 `yaml:"speed"`         // 垂直速度（像素/秒）
	Cooldown      float64 `yaml:"cooldown"`      // 玩家两次开火的最小间隔（秒）
	PlayerMuzzleY float64 `yaml:"playerMuzzleY"` // 玩家子弹生成位置（底边Y）
	EnemyMuzzleY  float64 `yaml:"enemyMuzzleY"`  // 敌人子弹生成位置（底边Y）
}

// AnimationConfig 精灵动画配置
type AnimationConfig struct {
	FrameCols     int     `yaml:"frameCols"`
	FrameRows     int     `yaml:"frameRows"`
	FrameDuration float64 `yaml:"frameDuration"` // 每帧持续时间（秒）
}

// SessionConfig 对局配置
type SessionConfig struct {
	// RestartDelay 玩家被击中后，允许点击重新开始前的等待时间（秒）
	RestartDelay float64 `yaml:"restartDelay"`
	// MusicVolume 背景音乐的相对音量（乘以设置中的音乐音量）
	MusicVolume float64 `yaml:"musicVolume"`
}

// DefaultGameConfig 返回编译期默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Ship: ShipConfig{
			Speed: 300,
		},
		Enemy: EnemyConfig{
			Speed:        250,
			RespawnDelay: 2,
			FlipChance:   41,
			FireChance:   61,
			EdgeBounce:   false,
		},
		Shot: ShotConfig{
			Speed:         300,
			Cooldown:      0.5,
			PlayerMuzzleY: 110,
			EnemyMuzzleY:  400,
		},
		Animation: AnimationConfig{
			FrameCols:     2,
			FrameRows:     2,
			FrameDuration: 0.1,
		},
		Session: SessionConfig{
			RestartDelay: 1,
			MusicVolume:  0.25,
		},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 默认值叠加文件内容后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据，未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Ship.Speed < 0 || c.Enemy.Speed < 0 || c.Shot.Speed < 0 {
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalidConfig)
	}
	if c.Shot.Cooldown < 0 || c.Enemy.RespawnDelay < 0 || c.Session.RestartDelay < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	// rand.Intn 要求参数大于 0
	if c.Enemy.FlipChance <= 0 || c.Enemy.FireChance <= 0 {
		return fmt.Errorf("%w: flipChance(%d) and fireChance(%d) must be positive",
			ErrInvalidConfig, c.Enemy.FlipChance, c.Enemy.FireChance)
	}
	if c.Animation.FrameCols <= 0 || c.Animation.FrameRows <= 0 {
		return fmt.Errorf("%w: frame grid %dx%d", ErrInvalidConfig, c.Animation.FrameCols, c.Animation.FrameRows)
	}
	if c.Animation.FrameDuration <= 0 {
		return fmt.Errorf("%w: frameDuration must be positive, got %.3f", ErrInvalidConfig, c.Animation.FrameDuration)
	}
	if c.Session.MusicVolume < 0 || c.Session.MusicVolume > 1 {
		return fmt.Errorf("%w: musicVolume must be in [0, 1], got %.2f", ErrInvalidConfig, c.Session.MusicVolume)
	}
	return nil
}

// FrameCount 动画总帧数
func (c *GameConfig) FrameCount() int {
	return c.Animation.FrameCols * c.Animation.FrameRows
}
