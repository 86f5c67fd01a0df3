package systems

import (
	"github.com/decker502/colortag/internal/synth"
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/game"
	"github.com/decker502/colortag/pkg/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调并播放点击音效）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	world donburi.World
	input input.Source
	audio game.SoundPlayer
	query *donburi.Query
}

// NewButtonSystem 创建按钮交互系统
// audio 可为 nil
func NewButtonSystem(world donburi.World, in input.Source, audio game.SoundPlayer) *ButtonSystem {
	return &ButtonSystem{
		world: world,
		input: in,
		audio: audio,
		query: donburi.NewQuery(filter.Contains(components.Button)),
	}
}

// Update 更新按钮交互状态
// 回调在遍历结束后执行，回调里可以安全地创建或销毁实体
func (s *ButtonSystem) Update(deltaTime float64) {
	px, py := s.input.PointerPosition()
	x, y := float64(px), float64(py)
	pressed := s.input.IsPointerPressed()
	released := s.input.IsPointerJustReleased()

	var clicked []func()
	s.query.Each(s.world, func(entry *donburi.Entry) {
		button := components.Button.Get(entry)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			return
		}

		if !button.Contains(x, y) {
			button.State = components.UINormal
			return
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			if button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	})

	for _, onClick := range clicked {
		if s.audio != nil {
			s.audio.PlaySound(synth.SoundClick)
		}
		onClick()
	}
}
