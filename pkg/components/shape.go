package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeKind 矢量图形类型
type ShapeKind int

const (
	// ShapeShip 玩家飞船轮廓
	ShapeShip ShapeKind = iota
	// ShapeCircle 圆形，Width 为半径
	ShapeCircle
	// ShapeRect 矩形，以 Transform 为中心
	ShapeRect
)

// ShapeData 矢量图形组件
type ShapeData struct {
	Kind         ShapeKind
	Fill         color.RGBA
	Outline      color.RGBA
	OutlineWidth float64 // 0 表示不描边
	Width        float64
	Height       float64
	Z            int // 绘制顺序，数值大的后绘制
}

var Shape = donburi.NewComponentType[ShapeData]()
