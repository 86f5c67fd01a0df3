// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置、打开存储、合成音效、
// 加载字体，然后把主菜单压入状态栈。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/colortag/internal/synth"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/game"
	"github.com/decker502/colortag/pkg/input"
	"github.com/decker502/colortag/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"github.com/yohamta/donburi"
)

// AppName gdata 存储目录名
const AppName = "colortag"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 用户调参文件，为空则只使用内嵌默认值
	TuningPath string
	// Seed 随机种子，0 表示沿用配置文件或时间种子
	Seed uint64
	// Fullscreen 以全屏启动（同时写入设置）
	Fullscreen bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	stack    *game.StateStack
	tuning   *config.Tuning
	settings *game.SettingsManager
	scores   *game.ScoreBoard

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 配置、字体和音效是必需资源，失败时返回错误；
// 存储不可用时以内存模式运行，只记录警告。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	if cfg.Seed != 0 {
		tuning.Seed = cfg.Seed
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings and scores will not persist: %v", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}
	scoreBoard := game.NewScoreBoard(gdataManager)

	// 初始化音频上下文
	audioContext := audio.NewContext(int(synth.SampleRate))

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadFont(); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	if err := resourceManager.LoadSounds(synth.IDs()); err != nil {
		return nil, fmt.Errorf("音效合成失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	audioManager.PreloadSounds(synth.IDs())
	log.Printf("[App] AudioManager initialized")

	stack := game.NewStateStack()
	svc := &scenes.Services{
		World:    donburi.NewWorld(),
		Tuning:   tuning,
		Input:    input.NewEbiten(),
		Stack:    stack,
		Audio:    audioManager,
		Fonts:    resourceManager,
		Scores:   scoreBoard,
		Settings: settingsManager,
	}
	stack.Push(scenes.NewMainMenuScene(svc))

	return &App{
		stack:    stack,
		tuning:   tuning,
		settings: settingsManager,
		scores:   scoreBoard,
	}, nil
}

// ConfigureWindow 按配置设置窗口标题、尺寸和全屏
func (a *App) ConfigureWindow() {
	ebiten.SetWindowTitle(a.tuning.Window.Title)
	ebiten.SetWindowSize(a.tuning.Window.Width, a.tuning.Window.Height)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.tuning.Window.Width, a.tuning.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.tuning.Window.Width, a.tuning.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!a.settings.GetSettings().Fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.stack.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(config.ClearColor)
	a.stack.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.tuning.Window.Width, a.tuning.Window.Height
}

// Shutdown 退出前保存设置和战绩
func (a *App) Shutdown() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	if err := a.scores.Save(); err != nil {
		log.Printf("[App] Warning: failed to save scores: %v", err)
	}
}
