package entities

import (
	"testing"

	"github.com/decker502/colortag/pkg/config"
)

// testTuning 加载内嵌默认配置
func testTuning(t *testing.T) *config.Tuning {
	t.Helper()
	tuning, err := config.DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning() error: %v", err)
	}
	return tuning
}
