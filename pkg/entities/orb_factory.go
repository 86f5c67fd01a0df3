package entities

import (
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewOrb 创建能量球实体，能量球与所有碰撞层交互
func NewOrb(world donburi.World, tuning *config.Tuning, pos dmath.Vec2) donburi.Entity {
	entity := world.Create(
		components.Transform,
		components.Orb,
		components.Shape,
		components.Collider,
		components.GameEntity,
	)
	entry := world.Entry(entity)

	r := tuning.Orb.Radius
	components.Transform.SetValue(entry, components.TransformData{
		Position: pos,
		Scale:    dmath.NewVec2(1, 1),
	})
	components.Shape.SetValue(entry, components.ShapeData{
		Kind:         components.ShapeCircle,
		Fill:         config.OrbFillColor,
		Outline:      config.OrbOutlineColor,
		OutlineWidth: 3,
		Width:        r,
	})
	components.Collider.SetValue(entry, components.ColliderData{
		Shape:  physics.Circle(r),
		Layers: physics.AllLayers(),
	})
	return entity
}
