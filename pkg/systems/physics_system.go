package systems

import (
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// PhysicsSystem 收集碰撞体并交给 physics.Space 检测接触
//
// 接触开始/结束事件发布到 world，由 CollisionResponseSystem 处理。
type PhysicsSystem struct {
	ctx       *Context
	query     *donburi.Query
	colliders []physics.Collider
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(ctx *Context) *PhysicsSystem {
	return &PhysicsSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Collider, components.Transform)),
	}
}

// Update 检测本帧的接触变化
func (s *PhysicsSystem) Update(deltaTime float64) {
	s.colliders = s.colliders[:0]
	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		collider := components.Collider.Get(entry)
		s.colliders = append(s.colliders, physics.Collider{
			Entity: entry.Entity(),
			Body:   collider.Body(components.Transform.Get(entry)),
		})
	})

	s.ctx.Space.Step(s.ctx.World, s.colliders)
}
