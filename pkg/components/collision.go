package components

import (
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
)

// ColliderData 定义实体的碰撞形状和碰撞层
// 位置和朝向取自 Transform
type ColliderData struct {
	Shape  physics.Shape
	Layers physics.Layers
}

// Body 结合 Transform 生成本帧的碰撞体快照
func (c *ColliderData) Body(t *TransformData) physics.Body {
	return physics.Body{
		Position: t.Position,
		Rotation: t.Rotation,
		Shape:    c.Shape,
		Layers:   c.Layers,
	}
}

var Collider = donburi.NewComponentType[ColliderData]()

// LayersFor 身份对应的碰撞层
//
// 追捕者只与能量球交互，逃跑者还会被子弹击中。
func LayersFor(role Role) physics.Layers {
	if role == RoleTagger {
		return physics.TaggerLayers()
	}
	return physics.RunnerLayers()
}
