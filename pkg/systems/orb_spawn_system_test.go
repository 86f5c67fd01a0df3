package systems

import (
	"math"
	"testing"

	"github.com/decker502/colortag/pkg/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

func orbPositions(world donburi.World) []dmath.Vec2 {
	var out []dmath.Vec2
	donburi.NewQuery(filter.Contains(components.Orb)).Each(world, func(entry *donburi.Entry) {
		out = append(out, components.Transform.Get(entry).Position)
	})
	return out
}

// TestOrbSpawnSystemFillsField 测试补满能量球并保持间距
func TestOrbSpawnSystemFillsField(t *testing.T) {
	m := newTestMatch(t)
	sys := NewOrbSpawnSystem(m.ctx)
	tuning := m.ctx.Tuning.Orb

	// 采样可能推迟，多跑几帧
	for i := 0; i < 10; i++ {
		sys.Update(1.0 / 60)
	}

	orbs := orbPositions(m.ctx.World)
	if len(orbs) != tuning.Count {
		t.Fatalf("orb count: got %d, want %d", len(orbs), tuning.Count)
	}

	xMax := 500 - 2*tuning.Radius
	yMax := 500 - tuning.VerticalMargin - 2*tuning.Radius
	for i, a := range orbs {
		if a.X < -xMax || a.X >= xMax || a.Y < -yMax || a.Y >= yMax {
			t.Errorf("orb %d out of area: %v", i, a)
		}
		for j := i + 1; j < len(orbs); j++ {
			if d := math.Hypot(a.X-orbs[j].X, a.Y-orbs[j].Y); d < tuning.MinSeparation {
				t.Errorf("orbs %d and %d too close: %.1f", i, j, d)
			}
		}
	}

	// 已满时不再生成
	sys.Update(1.0 / 60)
	if n := len(orbPositions(m.ctx.World)); n != tuning.Count {
		t.Errorf("orb count after full: got %d", n)
	}
}

// TestOrbSpawnSystemRefill 测试被吃掉的能量球在下一帧补上
func TestOrbSpawnSystemRefill(t *testing.T) {
	m := newTestMatch(t)
	m.ctx.Tuning.Orb.Count = 3
	sys := NewOrbSpawnSystem(m.ctx)
	sys.Update(1.0 / 60)

	orb, ok := donburi.NewQuery(filter.Contains(components.Orb)).First(m.ctx.World)
	if !ok {
		t.Fatal("no orb spawned")
	}
	m.ctx.World.Remove(orb.Entity())

	sys.Update(1.0 / 60)
	if n := count(m.ctx.World, components.Orb); n != 3 {
		t.Errorf("orb count after refill: got %d, want 3", n)
	}
}

// TestOrbSpawnSystemDefers 测试没有空位时放弃本帧而不是死循环
func TestOrbSpawnSystemDefers(t *testing.T) {
	m := newTestMatch(t)
	m.ctx.Tuning.Orb.Count = 50
	m.ctx.Tuning.Orb.MinSeparation = 2000

	NewOrbSpawnSystem(m.ctx).Update(1.0 / 60)

	if n := count(m.ctx.World, components.Orb); n != 1 {
		t.Errorf("orb count: got %d, want 1 (only the first fits)", n)
	}
}

// TestOrbSpawnSystemDeterministic 测试相同种子得到相同布局
func TestOrbSpawnSystemDeterministic(t *testing.T) {
	a, b := newTestMatch(t), newTestMatch(t)
	NewOrbSpawnSystem(a.ctx).Update(1.0 / 60)
	NewOrbSpawnSystem(b.ctx).Update(1.0 / 60)

	pa, pb := orbPositions(a.ctx.World), orbPositions(b.ctx.World)
	if len(pa) != len(pb) {
		t.Fatalf("orb counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("orb %d: %v vs %v", i, pa[i], pb[i])
		}
	}
}
