package components

import (
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// TransformData 世界坐标系中的位置、朝向和缩放
//
// 原点位于窗口中心，Y 轴向上；Rotation 为逆时针弧度，0 表示朝上。
type TransformData struct {
	Position dmath.Vec2
	Rotation float64
	Scale    dmath.Vec2
}

// Forward 当前朝向的单位向量
func (t *TransformData) Forward() dmath.Vec2 {
	return Heading(t.Rotation)
}

var Transform = donburi.NewComponentType[TransformData](TransformData{Scale: dmath.NewVec2(1, 1)})

// Heading 把旋转角转换为朝向向量，即本地 Y 轴 (0, 1) 旋转 rotation 弧度
func Heading(rotation float64) dmath.Vec2 {
	return dmath.NewVec2(-math.Sin(rotation), math.Cos(rotation))
}
