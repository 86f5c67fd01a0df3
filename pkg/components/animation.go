package components

import (
	"github.com/decker502/colortag/pkg/tween"
	"github.com/yohamta/donburi"
)

// AnimatorData 挂在实体上的补间动画
//
// Scale 作用于 Transform.Scale，Color 作用于 Shape.Fill，
// 为 nil 表示没有对应的动画。
type AnimatorData struct {
	Scale     *tween.Tween
	ScaleLens tween.ScaleLens

	Color     *tween.Tween
	ColorLens tween.ColorLens
}

// Empty 两个动画都已移除
func (a *AnimatorData) Empty() bool {
	return a.Scale == nil && a.Color == nil
}

var Animator = donburi.NewComponentType[AnimatorData]()
