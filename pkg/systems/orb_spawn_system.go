package systems

import (
	"log"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// OrbSpawnSystem 把能量球补充到配置的数量
//
// 新位置在场地内均匀采样，与已有能量球（包括本帧新放置的）保持最小间距。
// 单个能量球采样次数超过上限时推迟到下一帧。
type OrbSpawnSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewOrbSpawnSystem 创建能量球生成系统
func NewOrbSpawnSystem(ctx *Context) *OrbSpawnSystem {
	return &OrbSpawnSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Orb, components.Transform)),
	}
}

// Update 补充能量球
func (s *OrbSpawnSystem) Update(deltaTime float64) {
	tuning := s.ctx.Tuning.Orb

	var placed []dmath.Vec2
	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		placed = append(placed, components.Transform.Get(entry).Position)
	})

	for n := len(placed); n < tuning.Count; n++ {
		pos, ok := s.sample(placed)
		if !ok {
			log.Printf("[OrbSpawnSystem] no free spot after %d attempts, retry next frame", tuning.MaxPlacementAttempts)
			return
		}
		entities.NewOrb(s.ctx.World, s.ctx.Tuning, pos)
		placed = append(placed, pos)
	}
}

// sample 在可放置区域内寻找与 placed 都保持最小间距的位置
func (s *OrbSpawnSystem) sample(placed []dmath.Vec2) (dmath.Vec2, bool) {
	tuning := s.ctx.Tuning.Orb
	halfW, halfH := s.ctx.Bounds()
	r := tuning.Radius

	xLo, xHi := -halfW+2*r, halfW-2*r
	yHalf := halfH - tuning.VerticalMargin
	yLo, yHi := -yHalf+2*r, yHalf-2*r
	minDistSq := tuning.MinSeparation * tuning.MinSeparation

	for attempt := 0; attempt < tuning.MaxPlacementAttempts; attempt++ {
		candidate := dmath.NewVec2(
			xLo+s.ctx.Rand.Float64()*(xHi-xLo),
			yLo+s.ctx.Rand.Float64()*(yHi-yLo),
		)

		free := true
		for _, p := range placed {
			d := candidate.Sub(p)
			if d.X*d.X+d.Y*d.Y < minDistSq {
				free = false
				break
			}
		}
		if free {
			return candidate, true
		}
	}
	return dmath.Vec2{}, false
}
