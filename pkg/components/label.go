package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Align 文字水平对齐方式
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// LabelData 屏幕空间中的文字
//
// X, Y 为屏幕坐标（左上角为原点），对齐点由 Align 决定，垂直方向居中。
type LabelData struct {
	Text  string
	Size  float64
	Color color.RGBA
	Align Align
	X, Y  float64
}

var Label = donburi.NewComponentType[LabelData]()
