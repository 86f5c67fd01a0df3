package systems

import (
	"math"

	"github.com/decker502/colortag/internal/synth"
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/decker502/colortag/pkg/tween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActionSystem 处理动作键
//
// 追捕者按下动作键发射子弹；逃跑者在 MotionNormal 时按下动作键开始冲刺。
// 必须在 MovementSystem 之后运行，子弹从移动后的位置发出。
type ActionSystem struct {
	ctx   *Context
	query *donburi.Query
}

// NewActionSystem 创建动作系统
func NewActionSystem(ctx *Context) *ActionSystem {
	return &ActionSystem{
		ctx:   ctx,
		query: donburi.NewQuery(filter.Contains(components.Player, components.Transform)),
	}
}

// Update 检测本帧按下动作键的玩家
func (s *ActionSystem) Update(deltaTime float64) {
	var actors []*donburi.Entry
	s.query.Each(s.ctx.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if s.ctx.Input.IsKeyJustPressed(player.Keys.Action) {
			actors = append(actors, entry)
		}
	})

	// 创建实体放在遍历之后
	for _, entry := range actors {
		switch components.Player.Get(entry).Role {
		case components.RoleTagger:
			s.shoot(entry)
		case components.RoleRunner:
			s.dash(entry)
		}
	}
}

func (s *ActionSystem) shoot(entry *donburi.Entry) {
	transform := components.Transform.Get(entry)
	entities.NewBullet(s.ctx.World, s.ctx.Tuning, entry.Entity(), transform.Position, transform.Forward())
	s.ctx.PlaySound(synth.SoundShoot)
}

func (s *ActionSystem) dash(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.Motion != components.MotionNormal {
		return
	}
	tuning := s.ctx.Tuning.Player

	player.Motion = components.MotionDash
	player.Velocity = tuning.DashSpeed
	s.ctx.PlaySound(synth.SoundDash)

	if !entry.HasComponent(components.Animator) {
		entry.AddComponent(components.Animator)
	}
	anim := components.Animator.Get(entry)

	// 冲刺期间横向来回压扁
	anim.Scale = tween.New(tuning.DashDuration/2, tween.QuadraticInOut, tween.PingPong)
	anim.ScaleLens = tween.ScaleLens{Start: dmath.NewVec2(1, 1), End: dmath.NewVec2(0.2, 1)}

	// 闪白后在整个冷却期间恢复为逃跑者颜色
	anim.Color = tween.New(math.Floor(tuning.CooldownDuration+tuning.DashDuration), tween.CircularIn, tween.Once)
	anim.ColorLens = tween.ColorLens{Start: config.DashFlashColor, End: player.Role.Color()}
}
