package tween

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestOnceFinishes(t *testing.T) {
	tw := New(1, Linear, Once)

	ratio, done := tw.Update(0.5)
	assert.InDelta(t, 0.5, ratio, 1e-6)
	assert.False(t, done)

	ratio, done = tw.Update(0.75)
	assert.Equal(t, 1.0, ratio)
	assert.True(t, done)

	// 结束后保持终点
	ratio, done = tw.Update(1)
	assert.Equal(t, 1.0, ratio)
	assert.True(t, done)
}

func TestPingPongReturns(t *testing.T) {
	tw := New(0.05, Linear, PingPong)

	ratio, done := tw.Update(0.025)
	assert.InDelta(t, 0.5, ratio, 1e-4)
	assert.False(t, done)

	// 越过终点后开始回程
	ratio, _ = tw.Update(0.035)
	assert.InDelta(t, 0.8, ratio, 1e-4)

	// 回到起点后再次前进
	ratio, done = tw.Update(0.05)
	assert.InDelta(t, 0.2, ratio, 1e-4)
	assert.False(t, done, "ping-pong never completes")
}

func TestEasing(t *testing.T) {
	tw := New(1, CircularIn, Once)
	ratio, _ := tw.Update(0.5)
	// 1 - sqrt(1 - 0.25)
	assert.InDelta(t, 0.1340, ratio, 1e-3)

	quad := New(1, QuadraticInOut, Once)
	ratio, _ = quad.Update(0.5)
	assert.InDelta(t, 0.5, ratio, 1e-4)
}

func TestReset(t *testing.T) {
	tw := New(1, Linear, Once)
	tw.Update(2)
	assert.True(t, tw.Done())

	tw.Reset()
	assert.False(t, tw.Done())
	assert.Equal(t, 0.0, tw.Ratio())
}

func TestZeroDuration(t *testing.T) {
	tw := New(0, Linear, Once)
	ratio, done := tw.Update(0.016)
	assert.Equal(t, 1.0, ratio)
	assert.True(t, done)
}

func TestScaleLens(t *testing.T) {
	lens := ScaleLens{Start: dmath.NewVec2(1, 1), End: dmath.NewVec2(0.2, 1)}

	assert.Equal(t, dmath.NewVec2(1, 1), lens.Lerp(0))
	got := lens.Lerp(1)
	assert.InDelta(t, 0.2, got.X, 1e-9)
	assert.InDelta(t, 1.0, got.Y, 1e-9)
	assert.InDelta(t, 0.6, lens.Lerp(0.5).X, 1e-9)
}

func TestColorLens(t *testing.T) {
	lens := ColorLens{
		Start: color.RGBA{255, 255, 255, 255},
		End:   color.RGBA{107, 186, 93, 255},
	}

	assert.Equal(t, lens.Start, lens.Lerp(0))
	assert.Equal(t, lens.End, lens.Lerp(1))
	assert.Equal(t, color.RGBA{181, 221, 174, 255}, lens.Lerp(0.5))
}
