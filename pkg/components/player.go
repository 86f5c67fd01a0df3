package components

import (
	"fmt"
	"image/color"

	"github.com/decker502/colortag/pkg/config"
	"github.com/yohamta/donburi"
)

// Slot 玩家编号
type Slot int

const (
	Slot1 Slot = 1
	Slot2 Slot = 2
)

// Name 玩家显示名称，例如 "Player_1"
func (s Slot) Name() string {
	return fmt.Sprintf("Player_%d", int(s))
}

// Role 玩家当前身份，同一时刻只能是其中之一
type Role int

const (
	// RoleTagger 追捕者，可以射击
	RoleTagger Role = iota
	// RoleRunner 逃跑者，可以冲刺
	RoleRunner
)

func (r Role) String() string {
	switch r {
	case RoleTagger:
		return "tagger"
	case RoleRunner:
		return "runner"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Other 对方的身份
func (r Role) Other() Role {
	if r == RoleTagger {
		return RoleRunner
	}
	return RoleTagger
}

// Motion 冲刺状态，只有逃跑者会离开 MotionNormal
type Motion int

const (
	MotionNormal Motion = iota
	MotionDash
	MotionCooldown
)

func (m Motion) String() string {
	switch m {
	case MotionNormal:
		return "normal"
	case MotionDash:
		return "dash"
	case MotionCooldown:
		return "cooldown"
	default:
		return fmt.Sprintf("Motion(%d)", int(m))
	}
}

// PlayerData 玩家组件
type PlayerData struct {
	Slot     Slot
	Role     Role
	Motion   Motion
	Velocity float64 // 沿朝向的标量速度，负值表示后退
	Keys     config.KeyBindings
}

// IsDashing 冲刺中的玩家不响应移动输入和碰撞
func (p *PlayerData) IsDashing() bool {
	return p.Motion == MotionDash
}

var Player = donburi.NewComponentType[PlayerData]()

// Color 身份对应的飞船和名字颜色
func (r Role) Color() color.RGBA {
	if r == RoleTagger {
		return config.TaggerColor
	}
	return config.RunnerColor
}
