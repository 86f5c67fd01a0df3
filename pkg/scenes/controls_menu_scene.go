package scenes

import (
	"log"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/decker502/colortag/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// 操作说明布局
const (
	controlsTop      = 120.0 // 第一个标题的 Y 坐标
	controlsRowGap   = 35.0  // 行距
	controlsBlockGap = 90.0  // 两名玩家之间的额外间距
	controlsRowWidth = 400.0 // 动作名与按键名之间的宽度
)

// ControlBinding 操作说明中的一行
type ControlBinding struct {
	Action string
	Key    ebiten.Key
}

// ControlRows 按显示顺序列出一名玩家的按键
func ControlRows(kb config.KeyBindings) []ControlBinding {
	return []ControlBinding{
		{"Move forward", kb.Up},
		{"Move backwards", kb.Down},
		{"Turn right", kb.Right},
		{"Turn left", kb.Left},
		{"Action", kb.Action},
	}
}

// ControlsMenuScene 操作说明
// 按当前配置的按键生成两名玩家的说明，Back 按钮或 Escape 返回
type ControlsMenuScene struct {
	svc      *Services
	buttons  *systems.ButtonSystem
	renderer *systems.RenderSystem
}

// NewControlsMenuScene 创建操作说明
func NewControlsMenuScene(svc *Services) *ControlsMenuScene {
	return &ControlsMenuScene{
		svc:      svc,
		buttons:  systems.NewButtonSystem(svc.World, svc.Input, svc.Audio),
		renderer: svc.newRenderSystem(),
	}
}

// Name 实现 game.State
func (s *ControlsMenuScene) Name() string { return "ControlsMenu" }

func (s *ControlsMenuScene) OnEnter()  { s.build() }
func (s *ControlsMenuScene) OnResume() { s.build() }
func (s *ControlsMenuScene) OnPause()  { s.teardown() }
func (s *ControlsMenuScene) OnExit()   { s.teardown() }

func (s *ControlsMenuScene) build() {
	s.teardown()

	w, _ := s.svc.ScreenSize()
	cx := w / 2
	world := s.svc.World
	y := controlsTop

	for _, slot := range []components.Slot{components.Slot1, components.Slot2} {
		entities.NewMenuLabel(world, slot.Name(), config.HeadingFontSize, config.TextColor, components.AlignCenter, cx, y)
		y += 50

		for _, row := range ControlRows(s.svc.Tuning.Controls.ForSlot(int(slot))) {
			entities.NewMenuLabel(world, row.Action, config.SmallFontSize, config.TextColor, components.AlignStart, cx-controlsRowWidth/2, y)
			entities.NewMenuLabel(world, row.Key.String(), config.SmallFontSize, config.TextColor, components.AlignEnd, cx+controlsRowWidth/2, y)
			y += controlsRowGap
		}
		y += controlsBlockGap - controlsRowGap
	}

	entities.NewMenuButton(world, cx, y+config.ButtonMargin, "Back", s.back)
}

func (s *ControlsMenuScene) teardown() {
	entities.DestroyTagged(s.svc.World, components.MenuWidget)
}

func (s *ControlsMenuScene) back() {
	if err := s.svc.Stack.Pop(); err != nil {
		log.Printf("[ControlsMenuScene] Warning: %v", err)
	}
}

// Update 处理按钮和 Escape
func (s *ControlsMenuScene) Update(deltaTime float64) {
	s.buttons.Update(deltaTime)
	if s.svc.Input.IsKeyJustPressed(ebiten.KeyEscape) {
		s.back()
	}
}

// Draw 绘制操作说明
func (s *ControlsMenuScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}
