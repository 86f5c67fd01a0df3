package components

import (
	"math"
	"testing"
)

// TestSlotName 测试玩家名称
func TestSlotName(t *testing.T) {
	if got := Slot1.Name(); got != "Player_1" {
		t.Errorf("Slot1.Name(): got %q, want Player_1", got)
	}
	if got := Slot2.Name(); got != "Player_2" {
		t.Errorf("Slot2.Name(): got %q, want Player_2", got)
	}
}

// TestRoleOther 测试身份互换
func TestRoleOther(t *testing.T) {
	if RoleTagger.Other() != RoleRunner || RoleRunner.Other() != RoleTagger {
		t.Error("Role.Other should swap tagger and runner")
	}
	if RoleTagger.String() != "tagger" || MotionCooldown.String() != "cooldown" {
		t.Errorf("String(): got %q / %q", RoleTagger.String(), MotionCooldown.String())
	}
}

// TestHeading 测试朝向向量
func TestHeading(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		wantX    float64
		wantY    float64
	}{
		{"朝上", 0, 0, 1},
		{"逆时针 90°朝左", math.Pi / 2, -1, 0},
		{"朝下", math.Pi, 0, -1},
		{"顺时针 90°朝右", -math.Pi / 2, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.rotation)
			if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
				t.Errorf("Heading(%v): got (%v, %v), want (%v, %v)", tt.rotation, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}
