package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BulletData 子弹组件
type BulletData struct {
	Shooter   donburi.Entity // 发射时的追捕者
	Direction dmath.Vec2     // 单位向量
	Radius    float64
	Speed     float64 // 像素/秒
}

var Bullet = donburi.NewComponentType[BulletData]()
