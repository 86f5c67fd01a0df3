package systems

import (
	"log"

	"github.com/decker502/colortag/internal/synth"
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// CollisionResponseSystem 处理接触开始事件
//
// 规则：
//   - 未冲刺的逃跑者被当前追捕者的子弹击中：交换身份，子弹销毁
//   - 未冲刺的玩家碰到能量球：速度反向并设为最大速度，能量球销毁
//   - 子弹碰到能量球：子弹销毁
//   - 冲刺中的逃跑者忽略所有接触
type CollisionResponseSystem struct {
	ctx     *Context
	labels  *donburi.Query
	pending []physics.Pair
	handler events.Subscriber[physics.CollisionEvent]
}

// NewCollisionResponseSystem 创建碰撞响应系统并订阅接触事件
// 系统不再使用时需要调用 Close 取消订阅
func NewCollisionResponseSystem(ctx *Context) *CollisionResponseSystem {
	s := &CollisionResponseSystem{
		ctx:    ctx,
		labels: donburi.NewQuery(filter.Contains(components.PlayerLabel, components.Label)),
	}
	s.handler = s.onCollisionStarted
	physics.CollisionStarted.Subscribe(ctx.World, s.handler)
	return s
}

// Close 取消订阅
func (s *CollisionResponseSystem) Close() {
	physics.CollisionStarted.Unsubscribe(s.ctx.World, s.handler)
}

func (s *CollisionResponseSystem) onCollisionStarted(w donburi.World, e physics.CollisionEvent) {
	s.pending = append(s.pending, e.Pair)
}

// Update 派发本帧事件并逐个处理
func (s *CollisionResponseSystem) Update(deltaTime float64) {
	physics.CollisionStarted.ProcessEvents(s.ctx.World)
	physics.CollisionStopped.ProcessEvents(s.ctx.World)

	pairs := s.pending
	s.pending = nil
	for _, pair := range pairs {
		s.resolve(pair)
	}
}

func (s *CollisionResponseSystem) resolve(pair physics.Pair) {
	world := s.ctx.World
	// 同一帧内先处理的接触可能已经销毁了实体
	if !world.Valid(pair.A) || !world.Valid(pair.B) {
		return
	}
	a, b := world.Entry(pair.A), world.Entry(pair.B)

	if player, other, ok := pick(a, b, components.Player); ok {
		if components.Player.Get(player).IsDashing() {
			return
		}
		switch {
		case other.HasComponent(components.Bullet):
			s.bulletHitsPlayer(player, other)
		case other.HasComponent(components.Orb):
			s.playerHitsOrb(player, other)
		}
		return
	}

	if bullet, other, ok := pick(a, b, components.Bullet); ok && other.HasComponent(components.Orb) {
		world.Remove(bullet.Entity())
	}
}

// pick 返回带有 ctype 组件的一方和另一方
func pick(a, b *donburi.Entry, ctype donburi.IComponentType) (match, other *donburi.Entry, ok bool) {
	if a.HasComponent(ctype) {
		return a, b, true
	}
	if b.HasComponent(ctype) {
		return b, a, true
	}
	return nil, nil, false
}

func (s *CollisionResponseSystem) bulletHitsPlayer(runner, bullet *donburi.Entry) {
	world := s.ctx.World
	if components.Player.Get(runner).Role != components.RoleRunner {
		return
	}

	// 只有当前追捕者发射的子弹有效，交换身份前发射的子弹直接穿过
	shooter := components.Bullet.Get(bullet).Shooter
	if !world.Valid(shooter) {
		return
	}
	tagger := world.Entry(shooter)
	if !tagger.HasComponent(components.Player) || components.Player.Get(tagger).Role != components.RoleTagger {
		return
	}

	s.swapRoles(runner, tagger)
	s.ctx.PlaySound(synth.SoundCatch)
	s.ctx.Dash.Reset()
	s.ctx.Cooldown.Reset()
	world.Remove(bullet.Entity())

	log.Printf("[CollisionResponseSystem] %s caught by %s",
		components.Player.Get(tagger).Slot.Name(), components.Player.Get(runner).Slot.Name())
}

func (s *CollisionResponseSystem) swapRoles(players ...*donburi.Entry) {
	roles := map[components.Slot]components.Role{}
	for _, entry := range players {
		player := components.Player.Get(entry)
		player.Role = player.Role.Other()
		player.Motion = components.MotionNormal

		components.Collider.Get(entry).Layers = components.LayersFor(player.Role)
		components.Shape.Get(entry).Fill = player.Role.Color()
		components.Transform.Get(entry).Scale = dmath.NewVec2(1, 1)
		if entry.HasComponent(components.Animator) {
			entry.RemoveComponent(components.Animator)
		}
		roles[player.Slot] = player.Role
	}

	s.labels.Each(s.ctx.World, func(entry *donburi.Entry) {
		if role, ok := roles[components.PlayerLabel.Get(entry).Slot]; ok {
			components.Label.Get(entry).Color = role.Color()
		}
	})
}

func (s *CollisionResponseSystem) playerHitsOrb(entry, orb *donburi.Entry) {
	player := components.Player.Get(entry)
	s.ctx.PlaySound(synth.SoundOrb)

	// 反弹：方向取反，速度拉满；静止时按正方向处理，全速后退
	sign := 1.0
	if player.Velocity < 0 {
		sign = -1
	}
	player.Velocity = -sign * s.ctx.Tuning.Player.MaxSpeed

	s.ctx.World.Remove(orb.Entity())
}
