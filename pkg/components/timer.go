package components

// Timer 通用计时器
// 用于倒计时、冲刺持续时间和冲刺冷却
type Timer struct {
	Name        string  // 计时器名称，如 "dash"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// NewTimer 创建计时器
func NewTimer(name string, target float64) Timer {
	return Timer{Name: name, TargetTime: target}
}

// Tick 推进计时器，返回本次调用是否刚好完成
func (t *Timer) Tick(dt float64) bool {
	if t.IsReady {
		return false
	}
	t.CurrentTime += dt
	if t.CurrentTime >= t.TargetTime {
		t.CurrentTime = t.TargetTime
		t.IsReady = true
		return true
	}
	return false
}

// Reset 回到起点
func (t *Timer) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
}

// Remaining 剩余时间（秒）
func (t *Timer) Remaining() float64 {
	return t.TargetTime - t.CurrentTime
}
