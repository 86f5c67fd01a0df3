package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/decker502/colortag/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "调参 YAML 文件，覆盖内嵌默认值")
	seed       = flag.Uint64("seed", 0, "随机种子（0 表示使用时间种子）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *configPath,
		Seed:       *seed,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}
	defer game.Shutdown()

	game.ConfigureWindow()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("游戏异常退出: %v", err)
	}
}
