// validate_tuning 检查调参文件能否加载并通过校验
//
// 用法：
//
//	go run ./cmd/validate_tuning my_tuning.yaml
//
// 不带参数时校验内嵌的默认配置。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/colortag/pkg/config"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	tuning, err := config.LoadTuning(path)
	if err != nil {
		fmt.Printf("❌ 加载失败: %v\n", err)
		os.Exit(1)
	}

	if path == "" {
		fmt.Printf("✅ 内嵌默认配置有效\n")
	} else {
		fmt.Printf("✅ %s 有效\n", path)
	}
	fmt.Printf("✅ 窗口: %dx%d, 顶栏 %.0f\n", tuning.Window.Width, tuning.Window.Height, tuning.Window.TopBarHeight)
	fmt.Printf("✅ 对局: %.0f 秒, 最后 %.0f 秒警告\n", tuning.Match.Duration, tuning.Match.WarningThreshold)
	fmt.Printf("✅ 能量球: %d 个, 半径 %.0f\n", tuning.Orb.Count, tuning.Orb.Radius)

	for slot := 1; slot <= 2; slot++ {
		kb := tuning.Controls.ForSlot(slot)
		fmt.Printf("✅ 玩家 %d: %s/%s/%s/%s 动作 %s\n", slot, kb.Up, kb.Down, kb.Left, kb.Right, kb.Action)
	}
}
