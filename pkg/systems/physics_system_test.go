package systems

import (
	"testing"

	"github.com/decker502/colortag/pkg/entities"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TestPhysicsSystemPublishesContacts 测试接触开始和结束各发布一次
func TestPhysicsSystemPublishesContacts(t *testing.T) {
	m := newTestMatch(t)
	world := m.ctx.World
	place(m.runner, 0, 0)
	place(m.tagger, -300, 0)
	entities.NewOrb(world, m.ctx.Tuning, dmath.NewVec2(10, 0))

	started, stopped := 0, 0
	onStart := func(w donburi.World, e physics.CollisionEvent) { started++ }
	onStop := func(w donburi.World, e physics.CollisionEvent) { stopped++ }
	physics.CollisionStarted.Subscribe(world, onStart)
	physics.CollisionStopped.Subscribe(world, onStop)
	defer physics.CollisionStarted.Unsubscribe(world, onStart)
	defer physics.CollisionStopped.Unsubscribe(world, onStop)

	sys := NewPhysicsSystem(m.ctx)
	for i := 0; i < 3; i++ {
		sys.Update(1.0 / 60)
		physics.CollisionStarted.ProcessEvents(world)
		physics.CollisionStopped.ProcessEvents(world)
	}
	if started != 1 || stopped != 0 {
		t.Fatalf("overlapping: got started=%d stopped=%d, want 1/0", started, stopped)
	}
	if got := m.ctx.Space.ActiveContacts(); got != 1 {
		t.Errorf("ActiveContacts() = %d, want 1", got)
	}

	place(m.runner, 0, 200)
	sys.Update(1.0 / 60)
	physics.CollisionStarted.ProcessEvents(world)
	physics.CollisionStopped.ProcessEvents(world)
	if stopped != 1 {
		t.Errorf("separated: got stopped=%d, want 1", stopped)
	}
}

// TestPhysicsSystemTaggerIgnoresRunner 测试两名玩家之间没有接触
func TestPhysicsSystemTaggerIgnoresRunner(t *testing.T) {
	m := newTestMatch(t)
	place(m.tagger, 0, 0)
	place(m.runner, 5, 0)

	NewPhysicsSystem(m.ctx).Update(1.0 / 60)
	if got := m.ctx.Space.ActiveContacts(); got != 0 {
		t.Errorf("ActiveContacts() = %d, want 0", got)
	}
}
