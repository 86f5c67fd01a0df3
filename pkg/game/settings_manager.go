package game

import (
	"fmt"
	"log"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/decker502/colortag/pkg/config"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 跨会话保存的设置
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume" env:"SOUND_VOLUME"` // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled" env:"SOUND_ENABLED"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{SoundVolume: 0.8, SoundEnabled: true}
}

// SettingsManager 设置管理器
//
// gdataManager 为 nil 时只在内存中保存，Save 不报错。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 加载存档并应用 COLORTAG_* 环境变量
//
// 存档损坏只记录警告；环境变量格式错误时返回错误。
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	// 环境变量优先于存档，例如 COLORTAG_SOUND_ENABLED=false
	if err := env.ParseWithOptions(sm.settings, env.Options{Prefix: config.EnvPrefix}); err != nil {
		return sm, fmt.Errorf("failed to parse settings env: %w", err)
	}
	sm.settings.SoundVolume = clampVolume(sm.settings.SoundVolume)

	return sm, nil
}

// Load 从 gdata 加载设置，没有存档时使用默认值
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 缺失的字段保持默认值
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音量，超出范围的值会被截断；不会自动保存
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// AdjustSoundVolume 按 delta 调整音量并返回新值，结果按 0.1 取整
func (sm *SettingsManager) AdjustSoundVolume(delta float64) float64 {
	sm.SetSoundVolume(math.Round((sm.settings.SoundVolume+delta)*10) / 10)
	return sm.settings.SoundVolume
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound 切换音效开关，返回切换后的状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(volume float64) float64 {
	return math.Max(0, math.Min(1, volume))
}
