package entities

import (
	"image/color"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// NewMenuButton 创建菜单按钮实体
//
// 参数：
//   - centerX: 按钮中心的屏幕 X 坐标
//   - top: 按钮上边缘的屏幕 Y 坐标
//   - text: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体
func NewMenuButton(world donburi.World, centerX, top float64, text string, onClick func()) donburi.Entity {
	entity := world.Create(components.Button, components.MenuWidget)
	components.Button.SetValue(world.Entry(entity), components.ButtonData{
		Text:     text,
		TextSize: config.BodyFontSize,
		X:        centerX - config.ButtonWidth/2,
		Y:        top,
		Width:    config.ButtonWidth,
		Height:   config.ButtonHeight,
		State:    components.UINormal,
		Enabled:  true,
		OnClick:  onClick,
	})
	return entity
}

// NewMenuLabel 创建菜单文字
func NewMenuLabel(world donburi.World, text string, size float64, clr color.RGBA, align components.Align, x, y float64) donburi.Entity {
	entity := world.Create(components.Label, components.MenuWidget)
	components.Label.SetValue(world.Entry(entity), components.LabelData{
		Text:  text,
		Size:  size,
		Color: clr,
		Align: align,
		X:     x,
		Y:     y,
	})
	return entity
}

// NewTitle 创建双色标题 "Color Tag"
// 前半部分使用追捕者颜色，后半部分使用逃跑者颜色
func NewTitle(world donburi.World, centerX, y float64) {
	const split = 60.0
	NewMenuLabel(world, "Color ", config.TitleFontSize, config.TaggerColor, components.AlignEnd, centerX+split, y)
	NewMenuLabel(world, "Tag", config.TitleFontSize, config.RunnerColor, components.AlignStart, centerX+split, y)
}

// DestroyTagged 销毁带有指定标记的所有实体
// 状态退出或暂停时用来清理自己创建的实体
func DestroyTagged(world donburi.World, tag donburi.IComponentType) int {
	var doomed []donburi.Entity
	donburi.NewQuery(filter.Contains(tag)).Each(world, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, e := range doomed {
		world.Remove(e)
	}
	return len(doomed)
}
