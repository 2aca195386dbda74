package game

import (
	"log"
	"math"

	"github.com/decker502/shooter/pkg/engine"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 通过资源ID播放音效和背景音乐
//   - 从 SettingsManager 读取音量和开关
//   - 实现 engine.SoundPlayer，供射击管理器调用
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil

	soundPlayers   map[engine.SoundID]*audio.Player
	currentMusic   *audio.Player
	currentMusicID engine.SoundID

	musicGain float64 // 背景音乐混音比例，与设置中的音乐音量相乘
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（可为 nil，使用默认设置）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[engine.SoundID]*audio.Player),
		musicGain:       1.0,
	}
}

// SetMusicGain 设置背景音乐混音比例 (0.0 ~ 1.0)
func (am *AudioManager) SetMusicGain(gain float64) {
	am.musicGain = clampVolume(gain)
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.getMusicVolume())
	}
}

// PlaySound 播放音效
// 音效单次播放；同一音效再次触发时从头开始
//
// 返回：
//   - bool: 是否成功播放（音效关闭或资源缺失时为 false）
func (am *AudioManager) PlaySound(soundID engine.SoundID) bool {
	if !am.settings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.settings().SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// PlayMusic 循环播放背景音乐，同一时间只有一首
func (am *AudioManager) PlayMusic(musicID engine.SoundID) bool {
	if !am.settings().MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getSoundPlayer(musicID)
	if player == nil {
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// ToggleMusic 切换音乐开关，关闭时立即停止，打开时重新播放 musicID
func (am *AudioManager) ToggleMusic(musicID engine.SoundID) {
	if am.settingsManager == nil {
		return
	}
	if am.settingsManager.ToggleMusic() {
		am.PlayMusic(musicID)
	} else {
		am.StopMusic()
	}
}

// AdjustSoundVolume 按 delta 调节音效音量并保存，返回新的音量
func (am *AudioManager) AdjustSoundVolume(delta float64) float64 {
	if am.settingsManager == nil {
		return am.settings().SoundVolume
	}
	am.settingsManager.SetSoundVolume(roundVolume(am.settings().SoundVolume + delta))
	am.settingsManager.saveOrLog()
	return am.settings().SoundVolume
}

// AdjustMusicVolume 按 delta 调节音乐音量并保存，正在播放的音乐立即生效
func (am *AudioManager) AdjustMusicVolume(delta float64) float64 {
	if am.settingsManager == nil {
		return am.settings().MusicVolume
	}
	am.settingsManager.SetMusicVolume(roundVolume(am.settings().MusicVolume + delta))
	am.settingsManager.saveOrLog()
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.getMusicVolume())
	}
	return am.settings().MusicVolume
}

// roundVolume 对齐到 0.01，避免按键反复调节累积浮点误差
func roundVolume(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToggleSound 切换音效开关
func (am *AudioManager) ToggleSound() {
	if am.settingsManager != nil {
		am.settingsManager.ToggleSound()
	}
}

// getSoundPlayer 获取或加载播放器
func (am *AudioManager) getSoundPlayer(soundID engine.SoundID) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundByID(string(soundID))
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		// 缓存失败结果，避免每次开火都重新加载
		am.soundPlayers[soundID] = nil
		return nil
	}

	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) settings() *GameSettings {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings()
	}
	return DefaultSettings()
}

// getMusicVolume 设置音量乘以混音比例
func (am *AudioManager) getMusicVolume() float64 {
	return am.settings().MusicVolume * am.musicGain
}

// PreloadSounds 预加载音效，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []engine.SoundID) {
	for _, soundID := range soundIDs {
		am.getSoundPlayer(soundID)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(soundIDs))
}
