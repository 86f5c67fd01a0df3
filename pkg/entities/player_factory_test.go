package entities

import (
	"testing"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TestSpawnPlayers 测试两名玩家的初始状态
func TestSpawnPlayers(t *testing.T) {
	tuning := testTuning(t)
	world := donburi.NewWorld()

	p1, p2 := SpawnPlayers(world, tuning)

	tests := []struct {
		name      string
		entity    donburi.Entity
		slot      components.Slot
		role      components.Role
		x         float64
		half      float64
		layers    physics.Layers
		actionKey ebiten.Key
	}{
		{"玩家1为追捕者", p1, components.Slot1, components.RoleTagger, -250, 12, physics.TaggerLayers(), ebiten.KeySpace},
		{"玩家2为逃跑者", p2, components.Slot2, components.RoleRunner, 250, 10, physics.RunnerLayers(), ebiten.KeyEnter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := world.Entry(tt.entity)
			player := components.Player.Get(entry)
			transform := components.Transform.Get(entry)
			collider := components.Collider.Get(entry)
			shape := components.Shape.Get(entry)

			if player.Slot != tt.slot || player.Role != tt.role {
				t.Errorf("slot/role: got %v/%v, want %v/%v", player.Slot, player.Role, tt.slot, tt.role)
			}
			if player.Motion != components.MotionNormal || player.Velocity != 0 {
				t.Errorf("motion/velocity: got %v/%v, want normal/0", player.Motion, player.Velocity)
			}
			if transform.Position.X != tt.x || transform.Position.Y != -470 {
				t.Errorf("position: got %v, want (%v, -470)", transform.Position, tt.x)
			}
			if transform.Rotation != 0 {
				t.Errorf("rotation: got %v, want 0", transform.Rotation)
			}
			if collider.Shape.Kind != physics.ShapeCapsule || collider.Shape.HalfSegment != tt.half || collider.Shape.Radius != 10 {
				t.Errorf("collider shape: got %+v", collider.Shape)
			}
			if collider.Layers != tt.layers {
				t.Errorf("layers: got %+v, want %+v", collider.Layers, tt.layers)
			}
			if shape.Fill != tt.role.Color() {
				t.Errorf("fill: got %v, want %v", shape.Fill, tt.role.Color())
			}
			if player.Keys.Action != tt.actionKey {
				t.Errorf("action key: got %v, want %v", player.Keys.Action, tt.actionKey)
			}
			if !entry.HasComponent(components.GameEntity) {
				t.Error("player should be tagged GameEntity")
			}
		})
	}

	if config.TaggerColor == config.RunnerColor {
		t.Fatal("role colours must differ")
	}
}
