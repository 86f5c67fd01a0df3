package systems

import (
	"github.com/decker502/colortag/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// MovementSystem 沿朝向移动玩家，并把玩家限制在场地内
//
// 场地上边缘让出顶部信息栏的高度。
type MovementSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(ctx *Context) *MovementSystem {
	return &MovementSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Player, components.Transform)),
	}
}

// Update 移动所有玩家
func (s *MovementSystem) Update(deltaTime float64) {
	halfW, halfH := s.ctx.Bounds()
	top := halfH - s.ctx.Tuning.Window.TopBarHeight

	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		transform := components.Transform.Get(entry)

		transform.Position = transform.Position.Add(transform.Forward().MulScalar(player.Velocity * deltaTime))
		transform.Position.X = clamp(transform.Position.X, -halfW, halfW)
		transform.Position.Y = clamp(transform.Position.Y, -halfH, top)
	})
}
