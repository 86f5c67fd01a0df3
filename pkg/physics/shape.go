package physics

import (
	"github.com/jakecoffman/cp"
	dmath "github.com/yohamta/donburi/features/math"
)

// ShapeKind 碰撞形状类型
type ShapeKind int

const (
	// ShapeCircle 圆形
	ShapeCircle ShapeKind = iota
	// ShapeCapsule 胶囊体，沿本地 Y 轴延伸
	ShapeCapsule
)

// Shape 碰撞形状
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfSegment float64 // 胶囊体中轴线的一半长度，圆形为 0
}

// Circle 创建圆形
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Capsule 创建胶囊体
func Capsule(radius, halfSegment float64) Shape {
	return Shape{Kind: ShapeCapsule, Radius: radius, HalfSegment: halfSegment}
}

// Body 某一帧中参与检测的碰撞体快照
//
// 坐标系与游戏世界一致：原点在窗口中心，Y 轴向上，Rotation 为逆时针弧度。
// cp 使用同样的右手坐标系，位置和角度可以直接传入。
type Body struct {
	Position dmath.Vec2
	Rotation float64
	Shape    Shape
	Layers   Layers
}

// newCPShape 在 body 上创建对应的 cp 形状
//
// 胶囊体是带半径的线段，圆形是没有偏移的圆。
func newCPShape(body *cp.Body, s Shape) *cp.Shape {
	if s.Kind == ShapeCapsule && s.HalfSegment > 0 {
		a := cp.Vector{X: 0, Y: -s.HalfSegment}
		b := cp.Vector{X: 0, Y: s.HalfSegment}
		return cp.NewSegment(body, a, b, s.Radius)
	}
	return cp.NewCircle(body, s.Radius, cp.Vector{})
}

// filter 把碰撞层转换为 cp 的 ShapeFilter
func (l Layers) filter() cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(l.Memberships), uint(l.Filters))
}
