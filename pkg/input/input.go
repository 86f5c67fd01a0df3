// Package input 提供键盘与指针输入的统一接口
//
// 系统层只依赖 Source 接口，运行时使用 Ebiten（直接读取 ebiten/inpututil），
// 测试中使用 Scripted 按帧注入输入。
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source 每帧输入状态
type Source interface {
	// IsKeyPressed 按键当前是否按住
	IsKeyPressed(key ebiten.Key) bool
	// IsKeyJustPressed 按键是否在本帧刚按下
	IsKeyJustPressed(key ebiten.Key) bool
	// PointerPosition 鼠标或触摸点位置（屏幕坐标）
	PointerPosition() (int, int)
	// IsPointerPressed 左键或触摸是否按住
	IsPointerPressed() bool
	// IsPointerJustReleased 左键或触摸是否在本帧刚松开
	IsPointerJustReleased() bool
}

// Ebiten 读取真实输入
type Ebiten struct {
	lastTouch [2]int // 最近一次触摸位置，触摸松开后用于命中检测
}

// NewEbiten 创建真实输入源
func NewEbiten() *Ebiten {
	return &Ebiten{}
}

// IsKeyPressed 实现 Source
func (e *Ebiten) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// IsKeyJustPressed 实现 Source
func (e *Ebiten) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// PointerPosition 优先返回触摸位置，没有触摸时返回鼠标位置
func (e *Ebiten) PointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		e.lastTouch = [2]int{x, y}
		return x, y
	}
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return e.lastTouch[0], e.lastTouch[1]
	}
	return ebiten.CursorPosition()
}

// IsPointerPressed 实现 Source
func (e *Ebiten) IsPointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) > 0 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsPointerJustReleased 实现 Source
func (e *Ebiten) IsPointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}
