package systems

import (
	"log"

	"github.com/decker502/colortag/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// DashTimerSystem 推进冲刺和冷却计时器
//
// Dash 计时器只在有玩家冲刺时计时，结束后玩家进入冷却并移除缩放动画；
// Cooldown 计时器只在有玩家冷却时计时，结束后玩家恢复正常并移除颜色动画。
type DashTimerSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewDashTimerSystem 创建冲刺计时系统
func NewDashTimerSystem(ctx *Context) *DashTimerSystem {
	return &DashTimerSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Player, components.Transform)),
	}
}

// Update 推进计时器
func (s *DashTimerSystem) Update(deltaTime float64) {
	var dashing, cooling []*donburi.Entry
	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		switch components.Player.Get(entry).Motion {
		case components.MotionDash:
			dashing = append(dashing, entry)
		case components.MotionCooldown:
			cooling = append(cooling, entry)
		}
	})

	if len(dashing) > 0 && s.ctx.Dash.Tick(deltaTime) {
		for _, entry := range dashing {
			s.endDash(entry)
		}
		s.ctx.Dash.Reset()
	}

	if len(cooling) > 0 && s.ctx.Cooldown.Tick(deltaTime) {
		for _, entry := range cooling {
			s.endCooldown(entry)
		}
		s.ctx.Cooldown.Reset()
	}
}

func (s *DashTimerSystem) endDash(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.Motion = components.MotionCooldown
	components.Transform.Get(entry).Scale = dmath.NewVec2(1, 1)

	if entry.HasComponent(components.Animator) {
		components.Animator.Get(entry).Scale = nil
	}
	log.Printf("[DashTimerSystem] %s dash -> cooldown", player.Slot.Name())
}

func (s *DashTimerSystem) endCooldown(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	player.Motion = components.MotionNormal
	components.Shape.Get(entry).Fill = player.Role.Color()

	if entry.HasComponent(components.Animator) {
		anim := components.Animator.Get(entry)
		anim.Color = nil
		if anim.Empty() {
			entry.RemoveComponent(components.Animator)
		}
	}
	log.Printf("[DashTimerSystem] %s cooldown -> normal", player.Slot.Name())
}
