package scenes

import (
	"testing"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/game"
	"github.com/decker502/colortag/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const frame = 1.0 / 60

// newTestApp 创建压入主菜单的状态栈，不打开窗口也不加载字体
func newTestApp(t *testing.T) (*Services, *input.Scripted) {
	t.Helper()
	tuning, err := config.DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning() error: %v", err)
	}
	tuning.Seed = 7

	in := input.NewScripted()
	svc := &Services{
		World:  donburi.NewWorld(),
		Tuning: tuning,
		Input:  in,
		Stack:  game.NewStateStack(),
		Scores: game.NewScoreBoard(nil),
	}
	svc.Stack.Push(NewMainMenuScene(svc))
	return svc, in
}

// click 在屏幕坐标点击一次并推进一帧
func click(svc *Services, in *input.Scripted, x, y int) {
	in.Click(x, y)
	svc.Stack.Update(frame)
	in.NextFrame()
}

// press 按下按键并推进一帧
func press(svc *Services, in *input.Scripted, key ebiten.Key) {
	in.Press(key)
	svc.Stack.Update(frame)
	in.NextFrame()
	in.Release(key)
}

func labelTexts(world donburi.World) map[string]bool {
	texts := map[string]bool{}
	donburi.NewQuery(filter.Contains(components.Label)).Each(world, func(entry *donburi.Entry) {
		texts[components.Label.Get(entry).Text] = true
	})
	return texts
}

func buttonTexts(world donburi.World) []string {
	var texts []string
	donburi.NewQuery(filter.Contains(components.Button)).Each(world, func(entry *donburi.Entry) {
		texts = append(texts, components.Button.Get(entry).Text)
	})
	return texts
}

func countWith(world donburi.World, ctype donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(ctype)).Count(world)
}

// 主菜单按钮位置（1000x1000 窗口）
const (
	playX, playY         = 500, 475
	controlsX, controlsY = 500, 545
)
