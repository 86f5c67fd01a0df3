// Package tween 提供基于 gween 的补间动画
//
// Tween 只负责时间到比例（0~1）的映射，具体作用到哪个属性由 Lens 决定：
// ScaleLens 作用于缩放，ColorLens 作用于填充色。
package tween

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Mode 播放模式
type Mode int

const (
	// Once 播放一次后停在终点
	Once Mode = iota
	// PingPong 往返循环，永不结束
	PingPong
)

// 常用缓动函数
var (
	QuadraticInOut ease.TweenFunc = ease.InOutQuad
	CircularIn     ease.TweenFunc = ease.InCirc
	Linear         ease.TweenFunc = ease.Linear
)

// Tween 补间动画
type Tween struct {
	mode     Mode
	duration float64
	elapsed  float64
	backward bool // PingPong 模式下是否处于回程
	done     bool
	ratio    float64
	inner    *gween.Tween
}

// New 创建补间动画
//
// 参数：
//   - duration: 单程时长（秒）
//   - fn: 缓动函数
//   - mode: Once 或 PingPong
func New(duration float64, fn ease.TweenFunc, mode Mode) *Tween {
	if fn == nil {
		fn = Linear
	}
	return &Tween{
		mode:     mode,
		duration: duration,
		inner:    gween.New(0, 1, float32(duration), fn),
	}
}

// Update 推进动画并返回当前比例与是否结束
func (t *Tween) Update(dt float64) (ratio float64, done bool) {
	if t.done {
		return t.ratio, true
	}
	if t.duration <= 0 {
		t.ratio = 1
		t.done = t.mode == Once
		return t.ratio, t.done
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		if t.mode == Once {
			t.elapsed = t.duration
			break
		}
		t.elapsed -= t.duration
		t.backward = !t.backward
	}

	value, finished := t.inner.Set(float32(t.elapsed))
	t.ratio = float64(value)
	if t.backward {
		t.ratio = 1 - t.ratio
	}
	if t.mode == Once && finished {
		t.ratio = 1
		t.done = true
	}
	return t.ratio, t.done
}

// Ratio 当前比例
func (t *Tween) Ratio() float64 {
	return t.ratio
}

// Done 是否已结束（PingPong 永远为 false）
func (t *Tween) Done() bool {
	return t.done
}

// Reset 回到起点
func (t *Tween) Reset() {
	t.inner.Reset()
	t.elapsed = 0
	t.backward = false
	t.done = false
	t.ratio = 0
}

// ScaleLens 缩放插值
type ScaleLens struct {
	Start dmath.Vec2
	End   dmath.Vec2
}

// Lerp 按比例插值
func (l ScaleLens) Lerp(ratio float64) dmath.Vec2 {
	return l.Start.Add(l.End.Sub(l.Start).MulScalar(ratio))
}

// ColorLens 颜色插值，逐通道线性插值
type ColorLens struct {
	Start color.RGBA
	End   color.RGBA
}

// Lerp 按比例插值
func (l ColorLens) Lerp(ratio float64) color.RGBA {
	return color.RGBA{
		R: lerpChannel(l.Start.R, l.End.R, ratio),
		G: lerpChannel(l.Start.G, l.End.G, ratio),
		B: lerpChannel(l.Start.B, l.End.B, ratio),
		A: lerpChannel(l.Start.A, l.End.A, ratio),
	}
}

func lerpChannel(a, b uint8, ratio float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*ratio
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
