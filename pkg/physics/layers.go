package physics

// Layer 碰撞层位掩码
type Layer uint32

const (
	// LayerTagger 追捕者
	LayerTagger Layer = 1 << iota
	// LayerRunner 逃跑者
	LayerRunner
	// LayerBullet 子弹
	LayerBullet

	// LayerAll 全部层，能量球等静态物体使用
	LayerAll Layer = ^Layer(0)
)

// Layers 描述一个碰撞体属于哪些层（Memberships）以及与哪些层交互（Filters）
//
// 两个碰撞体只有在双方的 Memberships 都与对方的 Filters 相交时才会产生接触。
type Layers struct {
	Memberships Layer
	Filters     Layer
}

// InteractsWith 判断两组碰撞层是否可以交互
func (l Layers) InteractsWith(other Layers) bool {
	return l.Memberships&other.Filters != 0 && other.Memberships&l.Filters != 0
}

// AllLayers 与所有层交互
func AllLayers() Layers {
	return Layers{Memberships: LayerAll, Filters: LayerAll}
}

// TaggerLayers 追捕者只与能量球交互
func TaggerLayers() Layers {
	return Layers{Memberships: LayerTagger, Filters: LayerTagger}
}

// RunnerLayers 逃跑者与能量球、子弹交互
func RunnerLayers() Layers {
	return Layers{Memberships: LayerRunner, Filters: LayerRunner | LayerBullet}
}

// BulletLayers 子弹与逃跑者、能量球交互，子弹之间互不影响
func BulletLayers() Layers {
	return Layers{Memberships: LayerBullet, Filters: LayerRunner}
}
