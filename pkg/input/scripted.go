package input

import "github.com/hajimehoshi/ebiten/v2"

// Scripted 可编程输入源，用于测试
//
// 用法：
//
//	in := input.NewScripted()
//	in.Press(ebiten.KeyW)   // 本帧刚按下，之后保持按住
//	system.Update(...)
//	in.NextFrame()          // 清除"刚按下/刚松开"标记
type Scripted struct {
	held        map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
	x, y        int
	pointerDown bool
	pointerUp   bool
}

// NewScripted 创建空输入
func NewScripted() *Scripted {
	return &Scripted{
		held:        make(map[ebiten.Key]bool),
		justPressed: make(map[ebiten.Key]bool),
	}
}

// Press 按下按键（本帧 IsKeyJustPressed 为 true）
func (s *Scripted) Press(keys ...ebiten.Key) {
	for _, k := range keys {
		if !s.held[k] {
			s.justPressed[k] = true
		}
		s.held[k] = true
	}
}

// Release 松开按键
func (s *Scripted) Release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(s.held, k)
		delete(s.justPressed, k)
	}
}

// MoveTo 移动指针
func (s *Scripted) MoveTo(x, y int) {
	s.x, s.y = x, y
}

// PointerDown 按下左键
func (s *Scripted) PointerDown() {
	s.pointerDown = true
}

// PointerUp 松开左键（本帧 IsPointerJustReleased 为 true）
func (s *Scripted) PointerUp() {
	if s.pointerDown {
		s.pointerUp = true
	}
	s.pointerDown = false
}

// Click 在指定位置完成一次点击
func (s *Scripted) Click(x, y int) {
	s.MoveTo(x, y)
	s.pointerDown = true
	s.PointerUp()
}

// NextFrame 进入下一帧，清除边沿状态
func (s *Scripted) NextFrame() {
	clear(s.justPressed)
	s.pointerUp = false
}

// IsKeyPressed 实现 Source
func (s *Scripted) IsKeyPressed(key ebiten.Key) bool {
	return s.held[key]
}

// IsKeyJustPressed 实现 Source
func (s *Scripted) IsKeyJustPressed(key ebiten.Key) bool {
	return s.justPressed[key]
}

// PointerPosition 实现 Source
func (s *Scripted) PointerPosition() (int, int) {
	return s.x, s.y
}

// IsPointerPressed 实现 Source
func (s *Scripted) IsPointerPressed() bool {
	return s.pointerDown
}

// IsPointerJustReleased 实现 Source
func (s *Scripted) IsPointerJustReleased() bool {
	return s.pointerUp
}
