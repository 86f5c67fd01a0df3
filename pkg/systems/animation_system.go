package systems

import (
	"github.com/decker502/colortag/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// AnimationSystem 推进补间动画
// 缩放动画写入 Transform.Scale，颜色动画写入 Shape.Fill
type AnimationSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(ctx *Context) *AnimationSystem {
	return &AnimationSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Animator, components.Transform, components.Shape)),
	}
}

// Update 推进所有动画
func (s *AnimationSystem) Update(deltaTime float64) {
	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		anim := components.Animator.Get(entry)

		if anim.Scale != nil {
			ratio, _ := anim.Scale.Update(deltaTime)
			components.Transform.Get(entry).Scale = anim.ScaleLens.Lerp(ratio)
		}
		if anim.Color != nil {
			ratio, _ := anim.Color.Update(deltaTime)
			components.Shape.Get(entry).Fill = anim.ColorLens.Lerp(ratio)
		}
	})
}
