package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
		str   string
	}{
		{"UINormal should be 0", UINormal, 0, "normal"},
		{"UIHovered should be 1", UIHovered, 1, "hovered"},
		{"UIClicked should be 2", UIClicked, 2, "clicked"},
		{"UIDisabled should be 3", UIDisabled, 3, "disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.str {
				t.Errorf("String(): got %q, want %q", tt.state.String(), tt.str)
			}
		})
	}
}

// TestButtonContains 测试按钮命中检测（包含边界）
func TestButtonContains(t *testing.T) {
	b := ButtonData{X: 100, Y: 200, Width: 200, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"中心", 200, 225, true},
		{"左上角", 100, 200, true},
		{"右下角", 300, 250, true},
		{"左侧外", 99, 225, false},
		{"下方外", 200, 251, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
