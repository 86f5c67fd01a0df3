package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundPlayer 按 ID 播放音效
// 游戏系统只依赖这个接口，测试中可以替换为记录器
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 提供按 ID 播放的便捷接口
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（提供合成好的音效）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放，再次播放同一音效会从头开始
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PreloadSounds 预热播放器缓存，避免首次播放时查找
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	n := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			n++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", n, len(soundIDs))
}

// getSoundPlayer 获取音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	player := am.resourceManager.GetAudioPlayer(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
