package entities

import (
	"fmt"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// hudPadding 玩家名字距窗口左右边缘的距离
const hudPadding = 10.0

// FormatCountdown 把剩余秒数格式化为 MM:SS，秒数向下取整
func FormatCountdown(remaining float64) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// NewTopBar 创建对局顶部信息栏
//
// 信息栏包括背景条、两名玩家的名字（颜色与各自身份一致）和中间的倒计时。
// 所有实体都带 GameEntity 和 TopBar 标记，离开对局时一起销毁。
//
// 参数:
//   - roles: 两名玩家当前身份，索引 0 为玩家1
//   - remaining: 倒计时初始显示的剩余秒数
func NewTopBar(world donburi.World, tuning *config.Tuning, roles [2]components.Role, remaining float64) {
	w := float64(tuning.Window.Width)
	h := float64(tuning.Window.Height)
	barH := tuning.Window.TopBarHeight

	bar := world.Entry(world.Create(components.Transform, components.Shape, components.TopBar, components.GameEntity))
	components.Transform.SetValue(bar, components.TransformData{
		Position: dmath.NewVec2(0, h/2-barH/2),
		Scale:    dmath.NewVec2(1, 1),
	})
	components.Shape.SetValue(bar, components.ShapeData{
		Kind:   components.ShapeRect,
		Fill:   config.TopBarColor,
		Width:  w,
		Height: barH,
		Z:      10,
	})

	newPlayerLabel(world, components.Slot1, roles[0], components.AlignStart, hudPadding, barH/2)
	newPlayerLabel(world, components.Slot2, roles[1], components.AlignEnd, w-hudPadding, barH/2)

	countdown := world.Entry(world.Create(components.Label, components.CountdownLabel, components.TopBar, components.GameEntity))
	components.Label.SetValue(countdown, components.LabelData{
		Text:  FormatCountdown(remaining),
		Size:  config.BodyFontSize,
		Color: config.TextColor,
		Align: components.AlignCenter,
		X:     w / 2,
		Y:     barH / 2,
	})
}

func newPlayerLabel(world donburi.World, slot components.Slot, role components.Role, align components.Align, x, y float64) {
	entry := world.Entry(world.Create(components.Label, components.PlayerLabel, components.TopBar, components.GameEntity))
	components.Label.SetValue(entry, components.LabelData{
		Text:  slot.Name(),
		Size:  config.BodyFontSize,
		Color: role.Color(),
		Align: align,
		X:     x,
		Y:     y,
	})
	components.PlayerLabel.SetValue(entry, components.PlayerLabelData{Slot: slot})
}
