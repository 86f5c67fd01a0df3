package scenes

import (
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/game"
	"github.com/decker502/colortag/pkg/input"
	"github.com/decker502/colortag/pkg/systems"
	"github.com/yohamta/donburi"
)

// Services 各状态共享的依赖
//
// 所有状态共用一个 donburi 世界，每个状态用标记组件区分自己创建的实体，
// 离开时只销毁自己的实体。
type Services struct {
	World  donburi.World
	Tuning *config.Tuning
	Input  input.Source
	Stack  *game.StateStack

	// 以下字段可为 nil
	Audio    game.SoundPlayer
	Fonts    systems.FontSource
	Scores   *game.ScoreBoard
	Settings *game.SettingsManager

	// Winner 最近一局的胜者名称，中途退出时清空
	Winner string
}

// ScreenSize 逻辑屏幕尺寸
func (s *Services) ScreenSize() (float64, float64) {
	return float64(s.Tuning.Window.Width), float64(s.Tuning.Window.Height)
}

func (s *Services) newRenderSystem() *systems.RenderSystem {
	return systems.NewRenderSystem(s.World, s.Fonts, s.Tuning.Window.Width, s.Tuning.Window.Height)
}
