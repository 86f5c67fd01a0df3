package scenes

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/decker502/colortag/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// MainMenuScene 主菜单
//
// 显示标题、上一局的胜者、Play 和 Controls 按钮以及累计比分。
// 按 M 切换音效开关，按 - / = 调整音量。
type MainMenuScene struct {
	svc      *Services
	buttons  *systems.ButtonSystem
	renderer *systems.RenderSystem
}

// NewMainMenuScene 创建主菜单
func NewMainMenuScene(svc *Services) *MainMenuScene {
	return &MainMenuScene{
		svc:      svc,
		buttons:  systems.NewButtonSystem(svc.World, svc.Input, svc.Audio),
		renderer: svc.newRenderSystem(),
	}
}

// Name 实现 game.State
func (s *MainMenuScene) Name() string { return "MainMenu" }

// OnEnter 创建菜单界面
func (s *MainMenuScene) OnEnter() { s.build() }

// OnResume 从对局或操作说明返回时重建界面，显示最新胜者
func (s *MainMenuScene) OnResume() { s.build() }

// OnPause 销毁菜单界面
func (s *MainMenuScene) OnPause() { s.teardown() }

// OnExit 销毁菜单界面
func (s *MainMenuScene) OnExit() { s.teardown() }

func (s *MainMenuScene) build() {
	s.teardown()

	w, h := s.svc.ScreenSize()
	cx := w / 2
	world := s.svc.World

	entities.NewTitle(world, cx, h/2-200)

	playText := "Play"
	if s.svc.Winner != "" {
		entities.NewMenuLabel(world, fmt.Sprintf("%s  won!", s.svc.Winner), config.BodyFontSize, config.TextColor,
			components.AlignCenter, cx, h/2-110)
		playText = "Play again"
	}

	top := h/2 - 50
	entities.NewMenuButton(world, cx, top, playText, s.play)
	entities.NewMenuButton(world, cx, top+config.ButtonHeight+config.ButtonMargin, "Controls", s.controls)

	if s.svc.Scores != nil && s.svc.Scores.MatchesPlayed() > 0 {
		summary := s.svc.Scores.Summary(components.Slot1.Name(), components.Slot2.Name())
		entities.NewMenuLabel(world, summary, config.SmallFontSize, config.TextColor, components.AlignCenter, cx, h/2+150)
	}

	entities.NewMenuLabel(world, s.hint(), config.HintFontSize, config.TextColor, components.AlignCenter, cx, h-30)
}

// volumeStep 每次按键调整的音量
const volumeStep = 0.1

func (s *MainMenuScene) hint() string {
	if s.svc.Settings == nil {
		return "F11: fullscreen"
	}
	settings := s.svc.Settings.GetSettings()
	sound := "on"
	if !settings.SoundEnabled {
		sound = "off"
	}
	return fmt.Sprintf("M: sound %s    -/=: volume %d%%    F11: fullscreen", sound, int(math.Round(settings.SoundVolume*100)))
}

func (s *MainMenuScene) teardown() {
	entities.DestroyTagged(s.svc.World, components.MenuWidget)
}

func (s *MainMenuScene) play() {
	log.Printf("[MainMenuScene] Play clicked")
	s.svc.Stack.Push(NewGameScene(s.svc))
}

func (s *MainMenuScene) controls() {
	log.Printf("[MainMenuScene] Controls clicked")
	s.svc.Stack.Push(NewControlsMenuScene(s.svc))
}

// Update 处理按钮和快捷键
func (s *MainMenuScene) Update(deltaTime float64) {
	s.buttons.Update(deltaTime)

	if s.svc.Settings == nil {
		return
	}

	in := s.svc.Input
	switch {
	case in.IsKeyJustPressed(ebiten.KeyM):
		log.Printf("[MainMenuScene] Sound enabled: %v", s.svc.Settings.ToggleSound())
	case in.IsKeyJustPressed(ebiten.KeyMinus):
		log.Printf("[MainMenuScene] Sound volume: %.1f", s.svc.Settings.AdjustSoundVolume(-volumeStep))
	case in.IsKeyJustPressed(ebiten.KeyEqual):
		log.Printf("[MainMenuScene] Sound volume: %.1f", s.svc.Settings.AdjustSoundVolume(volumeStep))
	default:
		return
	}

	if err := s.svc.Settings.Save(); err != nil {
		log.Printf("[MainMenuScene] Warning: failed to save settings: %v", err)
	}
	s.build()
}

// Draw 绘制菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}
