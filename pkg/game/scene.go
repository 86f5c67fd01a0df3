package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents something that can be updated and drawn once per frame.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// State 状态栈中的一层（主菜单、操作说明、对局）
//
// 生命周期回调由 StateStack 调用：
//   - OnEnter: 被压入栈顶（Push / Replace）
//   - OnPause: 有新状态压在它上面
//   - OnResume: 上面的状态被弹出，重新回到栈顶
//   - OnExit: 被弹出或替换
//
// 只有栈顶状态会收到 Update 和 Draw。
type State interface {
	Scene

	// Name 状态名称，用于日志
	Name() string

	OnEnter()
	OnExit()
	OnPause()
	OnResume()
}
