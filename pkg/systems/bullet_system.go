package systems

import (
	"math"

	"github.com/decker502/colortag/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// BulletSystem 移动子弹，飞出窗口的子弹被销毁
type BulletSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(ctx *Context) *BulletSystem {
	return &BulletSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Bullet, components.Transform)),
	}
}

// Update 移动并回收子弹
func (s *BulletSystem) Update(deltaTime float64) {
	halfW, halfH := s.ctx.Bounds()

	var expired []donburi.Entity
	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		bullet := components.Bullet.Get(entry)
		transform := components.Transform.Get(entry)

		transform.Position = transform.Position.Add(bullet.Direction.MulScalar(bullet.Speed * deltaTime))

		p := transform.Position
		if math.Abs(p.X) >= halfW+bullet.Radius || math.Abs(p.Y) >= halfH+bullet.Radius {
			expired = append(expired, entry.Entity())
		}
	})

	for _, e := range expired {
		s.ctx.World.Remove(e)
	}
}
