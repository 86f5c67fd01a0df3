package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "colortag_test_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestSettingsEnvOverride 测试环境变量覆盖存档
func TestSettingsEnvOverride(t *testing.T) {
	t.Setenv("COLORTAG_SOUND_VOLUME", "0.25")
	t.Setenv("COLORTAG_SOUND_ENABLED", "false")

	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	if sm.GetSettings().SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", sm.GetSettings().SoundVolume)
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("SoundEnabled: got true, want false")
	}
}

// TestSettingsEnvInvalid 测试非法环境变量
func TestSettingsEnvInvalid(t *testing.T) {
	t.Setenv("COLORTAG_SOUND_VOLUME", "loud")

	sm, err := NewSettingsManager(nil)
	if err == nil {
		t.Fatal("NewSettingsManager() with invalid env should fail")
	}
	if sm == nil {
		t.Error("manager should still be returned for fallback use")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},  // 正常值
		{0.0, 0.0},  // 下限
		{1.0, 1.0},  // 上限
		{-0.5, 0.0}, // 低于下限
		{1.5, 1.0},  // 高于上限
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestToggleSound 测试音效开关切换
func TestToggleSound(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if sm.ToggleSound() {
		t.Error("first ToggleSound: got true, want false")
	}
	if !sm.ToggleSound() {
		t.Error("second ToggleSound: got false, want true")
	}
}

// TestAdjustSoundVolume 测试按步长调整音量
func TestAdjustSoundVolume(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"调低一档", -0.1, 0.7},
		{"再调低一档", -0.1, 0.6},
		{"调高超过上限", 0.5, 1.0},
		{"上限处继续调高", 0.1, 1.0},
		{"调低超过下限", -2, 0.0},
	}

	for _, tt := range tests {
		if got := sm.AdjustSoundVolume(tt.delta); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
