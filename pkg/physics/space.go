package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Pair 一对接触中的实体，A 的 Id 总是小于 B
type Pair struct {
	A, B donburi.Entity
}

// Other 返回 Pair 中与 e 相对的另一个实体
func (p Pair) Other(e donburi.Entity) donburi.Entity {
	if p.A == e {
		return p.B
	}
	return p.A
}

// CollisionEvent 接触开始或结束事件
type CollisionEvent struct {
	Pair Pair
}

var (
	// CollisionStarted 两个碰撞体开始接触时发布
	CollisionStarted = events.NewEventType[CollisionEvent]()
	// CollisionStopped 两个碰撞体分离（或其中之一被移除）时发布
	CollisionStopped = events.NewEventType[CollisionEvent]()
)

// Collider 参与一次 Step 的实体及其碰撞体
type Collider struct {
	Entity donburi.Entity
	Body   Body
}

// 所有形状使用同一个碰撞类型，由一个 handler 处理
const collisionTypeSensor cp.CollisionType = 1

// stepDuration cp 每次 Step 推进的时间；物体速度恒为 0，只影响内部缓存
const stepDuration = 1.0 / 60

// handle 一个实体在 cp 空间中的刚体和形状
type handle struct {
	entity donburi.Entity
	body   *cp.Body
	shape  *cp.Shape
	kind   Shape
	stamp  uint64
}

// Space 碰撞空间，基于 cp（Chipmunk2D）
//
// 每个碰撞体对应一个零速度的动态刚体和一个 sensor 形状，
// 每帧直接设置位置和角度。cp 负责宽相位、窄相位、层过滤和接触缓存，
// begin / separate 回调转换为 CollisionStarted / CollisionStopped。
//
// 两个 kinematic 刚体之间 cp 不会产生接触，所以这里使用动态刚体。
type Space struct {
	space   *cp.Space
	handles *intmap.Map[uint64, *handle] // 实体 Id -> handle
	active  *intmap.Map[uint64, Pair]    // 当前接触，key 见 pairKey
	stamp   uint64

	// Step 期间由回调收集
	started []Pair
	stopped []Pair
}

// NewSpace 创建碰撞空间
func NewSpace() *Space {
	s := &Space{
		handles: intmap.New[uint64, *handle](32),
		active:  intmap.New[uint64, Pair](32),
	}
	s.newCPSpace()
	return s
}

func (s *Space) newCPSpace() {
	s.space = cp.NewSpace()
	handler := s.space.NewCollisionHandler(collisionTypeSensor, collisionTypeSensor)
	handler.BeginFunc = s.onBegin
	handler.SeparateFunc = s.onSeparate
}

// makePair 按实体 Id 排序构造 Pair
func makePair(a, b donburi.Entity) Pair {
	if b.Id() < a.Id() {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// pairKey 把两个实体 Id 打包成一个 64 位 key
func pairKey(p Pair) uint64 {
	return uint64(p.A.Id())<<32 | uint64(p.B.Id())
}

func shapePair(arb *cp.Arbiter) (Pair, bool) {
	a, b := arb.Shapes()
	ea, okA := a.UserData.(donburi.Entity)
	eb, okB := b.UserData.(donburi.Entity)
	if !okA || !okB {
		return Pair{}, false
	}
	return makePair(ea, eb), true
}

func (s *Space) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	if pair, ok := shapePair(arb); ok {
		s.active.Put(pairKey(pair), pair)
		s.started = append(s.started, pair)
	}
	return true
}

func (s *Space) onSeparate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	if pair, ok := shapePair(arb); ok {
		s.active.Del(pairKey(pair))
		s.stopped = append(s.stopped, pair)
	}
}

// Step 同步碰撞体并返回本帧开始和结束的接触
//
// 本帧没有出现的实体会被移出空间，它的接触算作结束。
// 如果 world 不为 nil，同时向 world 发布 CollisionStarted / CollisionStopped 事件，
// 事件由调用者通过 ProcessEvents 派发。
func (s *Space) Step(world donburi.World, colliders []Collider) (started, stopped []Pair) {
	s.started, s.stopped = nil, nil
	s.stamp++

	for _, c := range colliders {
		s.sync(c)
	}
	s.removeStale()
	s.space.Step(stepDuration)

	started, stopped = s.started, s.stopped
	if world != nil {
		for _, p := range started {
			CollisionStarted.Publish(world, CollisionEvent{Pair: p})
		}
		for _, p := range stopped {
			CollisionStopped.Publish(world, CollisionEvent{Pair: p})
		}
	}
	s.started, s.stopped = nil, nil
	return started, stopped
}

// sync 创建或更新实体对应的刚体
func (s *Space) sync(c Collider) {
	key := uint64(c.Entity.Id())
	h, ok := s.handles.Get(key)

	// Id 被复用或形状变化时重建
	if ok && (h.entity != c.Entity || h.kind != c.Body.Shape) {
		s.remove(key, h)
		ok = false
	}
	if !ok {
		h = s.add(c)
		s.handles.Put(key, h)
	}

	h.stamp = s.stamp
	h.shape.SetFilter(c.Body.Layers.filter())
	h.body.SetPosition(cp.Vector{X: c.Body.Position.X, Y: c.Body.Position.Y})
	h.body.SetAngle(c.Body.Rotation)
	h.body.SetVelocity(0, 0)
}

func (s *Space) add(c Collider) *handle {
	body := s.space.AddBody(cp.NewBody(1, 1))
	shape := newCPShape(body, c.Body.Shape)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeSensor)
	shape.UserData = c.Entity
	s.space.AddShape(shape)
	return &handle{entity: c.Entity, body: body, shape: shape, kind: c.Body.Shape}
}

// remove 移除形状时 cp 会对仍在接触的对象调用 separate
func (s *Space) remove(key uint64, h *handle) {
	s.space.RemoveShape(h.shape)
	s.space.RemoveBody(h.body)
	s.handles.Del(key)
}

func (s *Space) removeStale() {
	var stale []uint64
	s.handles.ForEach(func(key uint64, h *handle) bool {
		if h.stamp != s.stamp {
			stale = append(stale, key)
		}
		return true
	})
	for _, key := range stale {
		h, _ := s.handles.Get(key)
		s.remove(key, h)
	}
}

// ActiveContacts 返回当前接触数量
func (s *Space) ActiveContacts() int {
	return s.active.Len()
}

// Reset 清空空间和接触记录，不发布事件，切换场景时调用
func (s *Space) Reset() {
	s.handles.Clear()
	s.active.Clear()
	s.newCPSpace()
}
