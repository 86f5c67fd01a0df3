package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptyStack 弹出最后一个状态时返回
var ErrEmptyStack = errors.New("state stack: cannot pop the last state")

type transitionKind int

const (
	transitionPush transitionKind = iota
	transitionPop
	transitionReplace
)

type transition struct {
	kind  transitionKind
	state State
}

// StateStack 应用级状态栈
//
// 在 Update 期间请求的切换会排队，等当前状态的 Update 返回后依次执行，
// 保证一个状态不会在自己的 Update 中途被退出。
type StateStack struct {
	states   []State
	pending  []transition
	updating bool
	flushing bool
}

// NewStateStack 创建空的状态栈，使用 Push 设置初始状态
func NewStateStack() *StateStack {
	return &StateStack{}
}

// Push 暂停当前状态并进入 s
func (ss *StateStack) Push(s State) {
	ss.request(transition{kind: transitionPush, state: s})
}

// Pop 退出当前状态并恢复下面的状态
//
// 返回：
//   - error: 栈中只剩一个状态时返回 ErrEmptyStack，不做任何改变
func (ss *StateStack) Pop() error {
	if ss.projectedDepth() <= 1 {
		log.Printf("[StateStack] Warning: refusing to pop the last state")
		return ErrEmptyStack
	}
	ss.request(transition{kind: transitionPop})
	return nil
}

// Replace 退出当前状态并进入 s，下面的状态不受影响
func (ss *StateStack) Replace(s State) error {
	if ss.projectedDepth() == 0 {
		return ErrEmptyStack
	}
	ss.request(transition{kind: transitionReplace, state: s})
	return nil
}

// Top 返回栈顶状态，栈为空时返回 nil
func (ss *StateStack) Top() State {
	if len(ss.states) == 0 {
		return nil
	}
	return ss.states[len(ss.states)-1]
}

// Len 当前栈深度（不含尚未执行的切换）
func (ss *StateStack) Len() int {
	return len(ss.states)
}

// Update 更新栈顶状态，然后执行排队的切换
func (ss *StateStack) Update(deltaTime float64) {
	if top := ss.Top(); top != nil {
		ss.updating = true
		top.Update(deltaTime)
		ss.updating = false
	}
	ss.flush()
}

// Draw 绘制栈顶状态
func (ss *StateStack) Draw(screen *ebiten.Image) {
	if top := ss.Top(); top != nil {
		top.Draw(screen)
	}
}

// projectedDepth 执行完排队切换后的栈深度
func (ss *StateStack) projectedDepth() int {
	depth := len(ss.states)
	for _, t := range ss.pending {
		switch t.kind {
		case transitionPush:
			depth++
		case transitionPop:
			depth--
		}
	}
	return depth
}

func (ss *StateStack) request(t transition) {
	ss.pending = append(ss.pending, t)
	if !ss.updating && !ss.flushing {
		ss.flush()
	}
}

// flush 依次执行排队的切换；回调中发起的新切换会追加到队尾
func (ss *StateStack) flush() {
	ss.flushing = true
	defer func() { ss.flushing = false }()

	for len(ss.pending) > 0 {
		t := ss.pending[0]
		ss.pending = ss.pending[1:]

		switch t.kind {
		case transitionPush:
			if top := ss.Top(); top != nil {
				log.Printf("[StateStack] pause %s", top.Name())
				top.OnPause()
			}
			ss.states = append(ss.states, t.state)
			log.Printf("[StateStack] enter %s (depth %d)", t.state.Name(), len(ss.states))
			t.state.OnEnter()

		case transitionPop:
			top := ss.Top()
			ss.states = ss.states[:len(ss.states)-1]
			log.Printf("[StateStack] exit %s", top.Name())
			top.OnExit()
			if next := ss.Top(); next != nil {
				log.Printf("[StateStack] resume %s", next.Name())
				next.OnResume()
			}

		case transitionReplace:
			top := ss.Top()
			log.Printf("[StateStack] replace %s with %s", top.Name(), t.state.Name())
			top.OnExit()
			ss.states[len(ss.states)-1] = t.state
			t.state.OnEnter()
		}
	}
}
