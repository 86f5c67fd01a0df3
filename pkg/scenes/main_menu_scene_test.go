package scenes

import (
	"testing"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestMainMenuInitialLayout 测试首次进入主菜单
func TestMainMenuInitialLayout(t *testing.T) {
	svc, _ := newTestApp(t)

	if name := svc.Stack.Top().Name(); name != "MainMenu" {
		t.Fatalf("top state: got %s, want MainMenu", name)
	}
	buttons := buttonTexts(svc.World)
	if len(buttons) != 2 {
		t.Fatalf("buttons: got %v, want Play and Controls", buttons)
	}
	labels := labelTexts(svc.World)
	if !labels["Color "] || !labels["Tag"] {
		t.Errorf("title labels missing: %v", labels)
	}
	for text := range labels {
		if len(text) > 5 && text[len(text)-5:] == "won!" {
			t.Errorf("no winner expected on first entry, got %q", text)
		}
	}
}

// TestPlayStartsMatch 测试点击 Play 进入对局
func TestPlayStartsMatch(t *testing.T) {
	svc, in := newTestApp(t)

	click(svc, in, playX, playY)

	if name := svc.Stack.Top().Name(); name != "Game" {
		t.Fatalf("top state: got %s, want Game", name)
	}
	if n := countWith(svc.World, components.MenuWidget); n != 0 {
		t.Errorf("menu widgets left behind: %d", n)
	}
	if n := countWith(svc.World, components.Player); n != 2 {
		t.Errorf("players: got %d, want 2", n)
	}
	if n := countWith(svc.World, components.CountdownLabel); n != 1 {
		t.Errorf("countdown labels: got %d, want 1", n)
	}
}

// TestEscapeAbandonsMatch 测试 Escape 中途退出
func TestEscapeAbandonsMatch(t *testing.T) {
	svc, in := newTestApp(t)
	click(svc, in, playX, playY)
	svc.Stack.Update(frame)

	press(svc, in, ebiten.KeyEscape)

	if name := svc.Stack.Top().Name(); name != "MainMenu" {
		t.Fatalf("top state: got %s, want MainMenu", name)
	}
	if n := countWith(svc.World, components.GameEntity); n != 0 {
		t.Errorf("game entities left behind: %d", n)
	}
	if svc.Winner != "" {
		t.Errorf("abandoned match should have no winner, got %q", svc.Winner)
	}
	if svc.Scores.MatchesPlayed() != 0 {
		t.Errorf("abandoned match should not be recorded")
	}
	for _, text := range buttonTexts(svc.World) {
		if text == "Play again" {
			t.Error("Play again shown without a finished match")
		}
	}
}

// TestMatchEndShowsWinner 测试倒计时结束后回到主菜单并显示胜者
func TestMatchEndShowsWinner(t *testing.T) {
	svc, in := newTestApp(t)
	svc.Tuning.Match.Duration = 1
	click(svc, in, playX, playY)

	svc.Stack.Update(0.6)
	if name := svc.Stack.Top().Name(); name != "Game" {
		t.Fatalf("match ended early")
	}
	svc.Stack.Update(0.6)

	if name := svc.Stack.Top().Name(); name != "MainMenu" {
		t.Fatalf("top state: got %s, want MainMenu", name)
	}
	if svc.Winner != "Player_2" {
		t.Errorf("winner: got %q, want Player_2", svc.Winner)
	}
	labels := labelTexts(svc.World)
	if !labels["Player_2  won!"] {
		t.Errorf("winner label missing: %v", labels)
	}
	if !labels["Player_1  0 : 1  Player_2"] {
		t.Errorf("score summary missing: %v", labels)
	}

	found := false
	for _, text := range buttonTexts(svc.World) {
		found = found || text == "Play again"
	}
	if !found {
		t.Errorf("Play again button missing: %v", buttonTexts(svc.World))
	}
	if n := countWith(svc.World, components.GameEntity); n != 0 {
		t.Errorf("game entities left behind: %d", n)
	}
}

// TestPlayAgain 测试再来一局会重新生成玩家
func TestPlayAgain(t *testing.T) {
	svc, in := newTestApp(t)
	svc.Tuning.Match.Duration = 0.5
	click(svc, in, playX, playY)
	svc.Stack.Update(1)

	click(svc, in, playX, playY)

	if name := svc.Stack.Top().Name(); name != "Game" {
		t.Fatalf("top state: got %s, want Game", name)
	}
	if n := countWith(svc.World, components.Player); n != 2 {
		t.Errorf("players: got %d, want 2", n)
	}
}

// TestMainMenuSoundKeys 测试主菜单的音效开关和音量快捷键
func TestMainMenuSoundKeys(t *testing.T) {
	svc, in := newTestApp(t)
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	svc.Settings = settings

	steps := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyM, "M: sound off    -/=: volume 80%    F11: fullscreen"},
		{ebiten.KeyM, "M: sound on    -/=: volume 80%    F11: fullscreen"},
		{ebiten.KeyMinus, "M: sound on    -/=: volume 70%    F11: fullscreen"},
		{ebiten.KeyEqual, "M: sound on    -/=: volume 80%    F11: fullscreen"},
	}
	for _, step := range steps {
		press(svc, in, step.key)
		if labels := labelTexts(svc.World); !labels[step.want] {
			t.Fatalf("after %v: hint %q missing in %v", step.key, step.want, labels)
		}
	}
	if got := settings.GetSettings().SoundVolume; got != 0.8 {
		t.Errorf("volume: got %v, want 0.8", got)
	}
}
