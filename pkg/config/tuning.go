package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default_tuning.yaml
var defaultTuningYAML []byte

// EnvPrefix 环境变量前缀，例如 COLORTAG_MATCH_SECONDS=60
const EnvPrefix = "COLORTAG_"

// Tuning 游戏调参配置
//
// 默认值来自内嵌的 default_tuning.yaml，
// 用户文件（--config）和环境变量依次覆盖。
type Tuning struct {
	Window   WindowTuning   `yaml:"window"`
	Player   PlayerTuning   `yaml:"player"`
	Bullet   BulletTuning   `yaml:"bullet"`
	Orb      OrbTuning      `yaml:"orb"`
	Match    MatchTuning    `yaml:"match"`
	Controls ControlsTuning `yaml:"controls"`

	// Seed 随机种子，0 表示使用时间种子
	Seed uint64 `yaml:"seed" env:"SEED"`
}

// WindowTuning 窗口配置
type WindowTuning struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Title        string  `yaml:"title"`
	TopBarHeight float64 `yaml:"topBarHeight"` // 顶部信息栏高度，玩家不能进入
}

// PlayerTuning 玩家运动参数
type PlayerTuning struct {
	MaxSpeed         float64 `yaml:"maxSpeed"`         // 最大线速度
	Acceleration     float64 `yaml:"acceleration"`     // 按住前进/后退时每秒速度增量
	AngularSpeed     float64 `yaml:"angularSpeed"`     // 转向角速度（弧度/秒）
	Damping          float64 `yaml:"damping"`          // 松开按键后的减速系数
	DashSpeed        float64 `yaml:"dashSpeed"`        // 冲刺初速度
	DashDuration     float64 `yaml:"dashDuration"`     // 冲刺持续时间（秒）
	CooldownDuration float64 `yaml:"cooldownDuration"` // 冲刺冷却时间（秒）
	SpawnOffsetY     float64 `yaml:"spawnOffsetY"`     // 出生点距底边的距离

	// Radius 胶囊碰撞体半径
	Radius float64 `yaml:"radius"`
	// HalfSegments 两名玩家胶囊体的半段长度（玩家1、玩家2）
	HalfSegments [2]float64 `yaml:"halfSegments"`
}

// BulletTuning 子弹参数
type BulletTuning struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // 像素/秒
}

// OrbTuning 能量球参数
type OrbTuning struct {
	Count                int     `yaml:"count" env:"ORB_COUNT"`
	Radius               float64 `yaml:"radius"`
	MinSeparation        float64 `yaml:"minSeparation"`        // 两个能量球圆心的最小距离
	VerticalMargin       float64 `yaml:"verticalMargin"`       // 上下边缘保留区域
	MaxPlacementAttempts int     `yaml:"maxPlacementAttempts"` // 单个能量球的最大采样次数
}

// MatchTuning 对局参数
type MatchTuning struct {
	Duration         float64 `yaml:"duration" env:"MATCH_SECONDS"` // 对局时长（秒）
	WarningThreshold float64 `yaml:"warningThreshold"`             // 剩余时间低于该值时倒计时变红
}

// ControlsTuning 两名玩家的按键绑定
type ControlsTuning struct {
	Player1 KeyBindings `yaml:"player1"`
	Player2 KeyBindings `yaml:"player2"`
}

// KeyBindings 单个玩家的按键
//
// YAML 中使用 ebiten.Key 的文本名，例如 "W"、"ArrowUp"、"Enter"。
type KeyBindings struct {
	Up     ebiten.Key `yaml:"up"`
	Down   ebiten.Key `yaml:"down"`
	Left   ebiten.Key `yaml:"left"`
	Right  ebiten.Key `yaml:"right"`
	Action ebiten.Key `yaml:"action"`
}

// ForSlot 返回指定玩家（1 或 2）的按键绑定
func (c ControlsTuning) ForSlot(slot int) KeyBindings {
	if slot == 2 {
		return c.Player2
	}
	return c.Player1
}

// DefaultTuning 解析内嵌的默认配置
func DefaultTuning() (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(defaultTuningYAML, &t); err != nil {
		return nil, fmt.Errorf("failed to parse default tuning: %w", err)
	}
	return &t, nil
}

// LoadTuning 加载调参配置
//
// 加载顺序：内嵌默认值 → path 指定的 YAML 文件（可为空）→ COLORTAG_* 环境变量。
// 结果在返回前会经过 Validate 检查。
//
// 参数:
//   - path: 用户配置文件路径，为空表示只使用默认值
//
// 返回:
//   - *Tuning: 合并后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadTuning(path string) (*Tuning, error) {
	t, err := DefaultTuning()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read tuning file: %w", err)
		}
		if err := t.Overlay(data); err != nil {
			return nil, err
		}
	}

	if err := t.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	return t, nil
}

// Overlay 用一段 YAML 覆盖已有配置，未出现的字段保持不变
func (t *Tuning) Overlay(data []byte) error {
	if err := yaml.Unmarshal(data, t); err != nil {
		return fmt.Errorf("failed to parse tuning file: %w", err)
	}
	return nil
}

// ApplyEnv 应用 COLORTAG_* 环境变量，未设置的变量不会改变字段
func (t *Tuning) ApplyEnv() error {
	if err := env.ParseWithOptions(t, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate 验证配置有效性
//
// 速度、时长、尺寸必须为正；能量球最小间距不能小于直径；
// 所有按键（包括两名玩家之间）不能重复。
func (t *Tuning) Validate() error {
	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", t.Window.Width, t.Window.Height)
	}
	if t.Window.TopBarHeight < 0 || t.Window.TopBarHeight >= float64(t.Window.Height) {
		return fmt.Errorf("topBarHeight %.1f out of range", t.Window.TopBarHeight)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"player.maxSpeed", t.Player.MaxSpeed},
		{"player.acceleration", t.Player.Acceleration},
		{"player.angularSpeed", t.Player.AngularSpeed},
		{"player.dashSpeed", t.Player.DashSpeed},
		{"player.dashDuration", t.Player.DashDuration},
		{"player.cooldownDuration", t.Player.CooldownDuration},
		{"player.radius", t.Player.Radius},
		{"bullet.radius", t.Bullet.Radius},
		{"bullet.speed", t.Bullet.Speed},
		{"orb.radius", t.Orb.Radius},
		{"match.duration", t.Match.Duration},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %.2f", p.name, p.value)
		}
	}

	if t.Player.Damping < 0 {
		return fmt.Errorf("player.damping must be >= 0, got %.2f", t.Player.Damping)
	}
	if t.Orb.Count < 0 {
		return fmt.Errorf("orb.count must be >= 0, got %d", t.Orb.Count)
	}
	if t.Orb.MinSeparation < 2*t.Orb.Radius {
		return fmt.Errorf("orb.minSeparation %.1f smaller than orb diameter %.1f", t.Orb.MinSeparation, 2*t.Orb.Radius)
	}
	if t.Orb.MaxPlacementAttempts <= 0 {
		return fmt.Errorf("orb.maxPlacementAttempts must be positive, got %d", t.Orb.MaxPlacementAttempts)
	}

	return t.Controls.validate()
}

// binding 一个按键及其完整名称，例如 "player1.up"
type binding struct {
	name string
	key  ebiten.Key
}

func (kb KeyBindings) bindings(prefix string) []binding {
	return []binding{
		{prefix + ".up", kb.Up},
		{prefix + ".down", kb.Down},
		{prefix + ".left", kb.Left},
		{prefix + ".right", kb.Right},
		{prefix + ".action", kb.Action},
	}
}

// validate 同一个键只能绑定一个动作
func (c ControlsTuning) validate() error {
	all := append(c.Player1.bindings("player1"), c.Player2.bindings("player2")...)
	seen := make(map[ebiten.Key]string, len(all))
	for _, b := range all {
		if other, dup := seen[b.key]; dup {
			return fmt.Errorf("controls: key %s bound to both %s and %s", b.key, other, b.name)
		}
		seen[b.key] = b.name
	}
	return nil
}
