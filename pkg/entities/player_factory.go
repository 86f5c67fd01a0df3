package entities

import (
	"log"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewPlayer 创建玩家实体
//
// 参数:
//   - world: donburi 世界
//   - tuning: 调参配置（胶囊尺寸、按键）
//   - slot: 玩家编号，决定按键和胶囊半段长度
//   - role: 初始身份，决定颜色和碰撞层
//   - pos: 世界坐标
func NewPlayer(world donburi.World, tuning *config.Tuning, slot components.Slot, role components.Role, pos dmath.Vec2) donburi.Entity {
	entity := world.Create(
		components.Transform,
		components.Player,
		components.Shape,
		components.Collider,
		components.GameEntity,
	)
	entry := world.Entry(entity)

	components.Transform.SetValue(entry, components.TransformData{
		Position: pos,
		Scale:    dmath.NewVec2(1, 1),
	})
	components.Player.SetValue(entry, components.PlayerData{
		Slot: slot,
		Role: role,
		Keys: tuning.Controls.ForSlot(int(slot)),
	})
	components.Shape.SetValue(entry, components.ShapeData{
		Kind: components.ShapeShip,
		Fill: role.Color(),
		Z:    2,
	})
	components.Collider.SetValue(entry, components.ColliderData{
		Shape:  physics.Capsule(tuning.Player.Radius, tuning.Player.HalfSegments[int(slot)-1]),
		Layers: components.LayersFor(role),
	})

	log.Printf("[PlayerFactory] %s spawned as %s at (%.0f, %.0f)", slot.Name(), role, pos.X, pos.Y)
	return entity
}

// SpawnPlayers 在场地底部生成两名玩家，玩家1 为追捕者
func SpawnPlayers(world donburi.World, tuning *config.Tuning) (p1, p2 donburi.Entity) {
	halfW := float64(tuning.Window.Width) / 2
	halfH := float64(tuning.Window.Height) / 2
	y := tuning.Player.SpawnOffsetY - halfH

	p1 = NewPlayer(world, tuning, components.Slot1, components.RoleTagger, dmath.NewVec2(-halfW/2, y))
	p2 = NewPlayer(world, tuning, components.Slot2, components.RoleRunner, dmath.NewVec2(halfW/2, y))
	return p1, p2
}
