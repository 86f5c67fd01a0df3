package systems

import (
	"github.com/decker502/colortag/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PlayerInputSystem 把方向键转换为速度和旋转
//
// 冲刺中的玩家不响应前进/后退，但始终可以转向。
type PlayerInputSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewPlayerInputSystem 创建输入系统
func NewPlayerInputSystem(ctx *Context) *PlayerInputSystem {
	return &PlayerInputSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Player, components.Transform)),
	}
}

// Update 处理所有玩家的移动输入
func (s *PlayerInputSystem) Update(deltaTime float64) {
	tuning := s.ctx.Tuning.Player
	in := s.ctx.Input

	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		transform := components.Transform.Get(entry)
		keys := player.Keys

		if !player.IsDashing() {
			up := in.IsKeyPressed(keys.Up)
			down := in.IsKeyPressed(keys.Down)
			if up {
				player.Velocity += tuning.Acceleration * deltaTime
			}
			if down {
				player.Velocity -= tuning.Acceleration * deltaTime
			}
			if !up && !down {
				player.Velocity *= max(0, 1-tuning.Damping*deltaTime)
			}
			player.Velocity = clamp(player.Velocity, -tuning.MaxSpeed, tuning.MaxSpeed)
		}

		if in.IsKeyPressed(keys.Right) {
			transform.Rotation -= tuning.AngularSpeed * deltaTime
		}
		if in.IsKeyPressed(keys.Left) {
			transform.Rotation += tuning.AngularSpeed * deltaTime
		}
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
