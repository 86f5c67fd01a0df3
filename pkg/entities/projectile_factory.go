package entities

import (
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewBullet 创建子弹实体
// 子弹从追捕者所在位置沿其朝向匀速飞行
//
// 参数:
//   - shooter: 发射子弹的追捕者，命中时用来确认身份
//   - pos: 起始世界坐标
//   - dir: 单位方向向量
func NewBullet(world donburi.World, tuning *config.Tuning, shooter donburi.Entity, pos, dir dmath.Vec2) donburi.Entity {
	entity := world.Create(
		components.Transform,
		components.Bullet,
		components.Shape,
		components.Collider,
		components.GameEntity,
	)
	entry := world.Entry(entity)

	r := tuning.Bullet.Radius
	components.Transform.SetValue(entry, components.TransformData{
		Position: pos,
		Scale:    dmath.NewVec2(1, 1),
	})
	components.Bullet.SetValue(entry, components.BulletData{
		Shooter:   shooter,
		Direction: dir,
		Radius:    r,
		Speed:     tuning.Bullet.Speed,
	})
	components.Shape.SetValue(entry, components.ShapeData{
		Kind:  components.ShapeCircle,
		Fill:  config.BulletColor,
		Width: r,
		Z:     1,
	})
	components.Collider.SetValue(entry, components.ColliderData{
		Shape:  physics.Circle(r),
		Layers: physics.BulletLayers(),
	})
	return entity
}
