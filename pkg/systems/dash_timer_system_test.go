package systems

import (
	"testing"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestDashLifecycle 测试冲刺 → 冷却 → 正常的完整流程
func TestDashLifecycle(t *testing.T) {
	m := newTestMatch(t)
	action := NewActionSystem(m.ctx)
	anim := NewAnimationSystem(m.ctx)
	timers := NewDashTimerSystem(m.ctx)
	player := components.Player.Get(m.runner)

	m.in.Press(ebiten.KeyEnter)
	action.Update(0.02)
	m.in.NextFrame()

	step := func(dt float64) {
		anim.Update(dt)
		timers.Update(dt)
	}

	step(0.05)
	if player.Motion != components.MotionDash {
		t.Fatalf("after 0.05s: got %v, want dash", player.Motion)
	}

	step(0.06)
	if player.Motion != components.MotionCooldown {
		t.Fatalf("after 0.11s: got %v, want cooldown", player.Motion)
	}
	if s := components.Transform.Get(m.runner).Scale; s.X != 1 || s.Y != 1 {
		t.Errorf("scale after dash: got %v, want (1, 1)", s)
	}
	if a := components.Animator.Get(m.runner); a.Scale != nil || a.Color == nil {
		t.Errorf("after dash only the colour tween should remain")
	}

	// 再次按动作键不会在冷却中冲刺
	m.in.Release(ebiten.KeyEnter)
	m.in.Press(ebiten.KeyEnter)
	action.Update(0.02)
	m.in.NextFrame()
	if player.Motion != components.MotionCooldown {
		t.Fatalf("dash during cooldown: got %v", player.Motion)
	}

	step(0.5)
	if player.Motion != components.MotionCooldown {
		t.Fatalf("cooldown ended early")
	}
	step(0.5)
	if player.Motion != components.MotionNormal {
		t.Fatalf("after cooldown: got %v, want normal", player.Motion)
	}
	if fill := components.Shape.Get(m.runner).Fill; fill != config.RunnerColor {
		t.Errorf("fill after cooldown: got %v, want %v", fill, config.RunnerColor)
	}
	if m.runner.HasComponent(components.Animator) {
		t.Error("animator should be removed after cooldown")
	}
	if m.ctx.Dash.CurrentTime != 0 || m.ctx.Cooldown.CurrentTime != 0 {
		t.Errorf("timers should be reset, got dash=%v cooldown=%v", m.ctx.Dash.CurrentTime, m.ctx.Cooldown.CurrentTime)
	}
}

// TestDashTimerIdle 测试没有玩家冲刺时计时器不走
func TestDashTimerIdle(t *testing.T) {
	m := newTestMatch(t)
	NewDashTimerSystem(m.ctx).Update(5)

	if m.ctx.Dash.CurrentTime != 0 || m.ctx.Cooldown.CurrentTime != 0 {
		t.Errorf("idle timers advanced: dash=%v cooldown=%v", m.ctx.Dash.CurrentTime, m.ctx.Cooldown.CurrentTime)
	}
}
