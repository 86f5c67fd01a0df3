package components

import "testing"

// TestTimerTick 测试计时器只在完成的那一帧返回 true
func TestTimerTick(t *testing.T) {
	timer := NewTimer("dash", 0.1)

	if timer.Tick(0.05) {
		t.Fatal("Tick(0.05) should not finish a 0.1s timer")
	}
	if !timer.Tick(0.06) {
		t.Fatal("Tick(0.06) should finish the timer")
	}
	if !timer.IsReady {
		t.Error("IsReady: got false, want true")
	}
	if timer.Tick(1) {
		t.Error("finished timer should not fire again")
	}
	if timer.Remaining() != 0 {
		t.Errorf("Remaining: got %v, want 0", timer.Remaining())
	}

	timer.Reset()
	if timer.IsReady || timer.CurrentTime != 0 {
		t.Errorf("after Reset: got ready=%v current=%v", timer.IsReady, timer.CurrentTime)
	}
	if timer.Remaining() != 0.1 {
		t.Errorf("Remaining after Reset: got %v, want 0.1", timer.Remaining())
	}
}
