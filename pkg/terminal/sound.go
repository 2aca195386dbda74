package terminal

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/shooter/pkg/engine"
)

const (
	synthSampleRate = beep.SampleRate(48000)

	laserDuration  = 120 * time.Millisecond
	plasmaDuration = 180 * time.Millisecond
	effectVolume   = 0.35
)

// Synth 终端音频，实现 engine.SoundPlayer
//
// 终端版不加载音频文件，开火音效和背景音都在播放时实时合成。
// 未调用 Initialize（或初始化失败）时所有播放请求返回 false。
type Synth struct {
	mu sync.Mutex

	rate        beep.SampleRate
	initialized bool

	soundEnabled bool
	musicEnabled bool
	musicVolume  float64

	ambient *beep.Ctrl
}

// NewSynth 创建合成器，musicVolume 为背景音量（0~1）
func NewSynth(musicVolume float64) *Synth {
	return &Synth{
		rate:         synthSampleRate,
		soundEnabled: true,
		musicEnabled: true,
		musicVolume:  musicVolume,
	}
}

// Initialize 打开音频设备
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	s.initialized = true
	return nil
}

// Close 关闭音频设备
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
	s.ambient = nil
}

// PlaySound 实现 engine.SoundPlayer
//
// SoundAmbient 启动背景音（已在播放时不重复启动）。
func (s *Synth) PlaySound(id engine.SoundID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return false
	}

	if id == engine.SoundAmbient {
		return s.startAmbientLocked()
	}
	if !s.soundEnabled {
		return false
	}

	streamer, err := newEffect(id, s.rate)
	if err != nil {
		log.Printf("[Synth] %v", err)
		return false
	}
	speaker.Play(newVolume(streamer, effectVolume))
	return true
}

func (s *Synth) startAmbientLocked() bool {
	if !s.musicEnabled {
		return false
	}
	if s.ambient != nil {
		return true
	}

	s.ambient = &beep.Ctrl{Streamer: newVolume(newDrone(s.rate), s.musicVolume)}
	speaker.Play(s.ambient)
	return true
}

// ToggleSound 切换音效开关，返回切换后的状态
func (s *Synth) ToggleSound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.soundEnabled = !s.soundEnabled
	return s.soundEnabled
}

// ToggleMusic 切换背景音开关，返回切换后的状态
func (s *Synth) ToggleMusic() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.musicEnabled = !s.musicEnabled
	if !s.initialized {
		return s.musicEnabled
	}

	if s.ambient == nil {
		s.startAmbientLocked()
		return s.musicEnabled
	}
	speaker.Lock()
	s.ambient.Paused = !s.musicEnabled
	speaker.Unlock()
	return s.musicEnabled
}

// SoundEnabled 音效是否开启
func (s *Synth) SoundEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.soundEnabled
}

// MusicEnabled 背景音是否开启
func (s *Synth) MusicEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.musicEnabled
}

// newEffect 合成一次性音效
func newEffect(id engine.SoundID, rate beep.SampleRate) (beep.Streamer, error) {
	switch id {
	case engine.SoundLaser:
		// 快速下滑的方波
		return newDecay(newSweep(1400, 300, laserDuration, rate), laserDuration, rate), nil
	case engine.SoundPlasma:
		// 低沉的正弦波
		tone, err := generators.SineTone(rate, 160)
		if err != nil {
			return nil, err
		}
		tone = beep.Take(rate.N(plasmaDuration), tone)
		return newDecay(tone, plasmaDuration, rate), nil
	}
	return nil, fmt.Errorf("unknown sound %q", id)
}

// newVolume 线性音量转换为 effects.Volume 的对数音量
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sweep 频率从 from 线性滑到 to 的方波
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay 线性衰减包络
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.position < d.total {
			vol = 1 - float64(d.position)/float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// drone 无限长的低频背景音：两个略微失谐的正弦波，音量缓慢起伏
type drone struct {
	phases [3]float64
	rate   beep.SampleRate
}

var droneFreqs = [3]float64{55, 82.7, 0.15} // 基音、五度、起伏频率

func newDrone(rate beep.SampleRate) beep.Streamer {
	return &drone{rate: rate}
}

func (d *drone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*d.phases[2])
		val := swell * 0.5 * (math.Sin(2*math.Pi*d.phases[0]) + math.Sin(2*math.Pi*d.phases[1]))
		samples[i][0] = val
		samples[i][1] = val

		for k, freq := range droneFreqs {
			d.phases[k] += freq / float64(d.rate)
			d.phases[k] -= math.Floor(d.phases[k])
		}
	}
	return len(samples), true
}

func (d *drone) Err() error { return nil }
