package systems

import (
	"math/rand/v2"
	"time"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/game"
	"github.com/decker502/colortag/pkg/input"
	"github.com/decker502/colortag/pkg/physics"
	"github.com/yohamta/donburi"
)

// Context 对局期间所有系统共享的数据
//
// 计时器、随机数和对局结果都放在这里显式传递，不使用全局变量。
type Context struct {
	World  donburi.World
	Tuning *config.Tuning
	Input  input.Source
	Audio  game.SoundPlayer
	Rand   *rand.Rand
	Space  *physics.Space

	Countdown components.Timer // 对局倒计时
	Dash      components.Timer // 冲刺持续时间
	Cooldown  components.Timer // 冲刺冷却时间

	// Finished 倒计时结束后置为 true，Winner 为未被追捕的一方
	Finished bool
	Winner   components.Slot
}

// NewContext 创建对局上下文
//
// 参数：
//   - world: 实体所在的 donburi 世界
//   - tuning: 调参配置
//   - in: 输入源
//   - audio: 音效播放器，可为 nil（静音）
func NewContext(world donburi.World, tuning *config.Tuning, in input.Source, audio game.SoundPlayer) *Context {
	ctx := &Context{
		World:  world,
		Tuning: tuning,
		Input:  in,
		Audio:  audio,
		Rand:   newRand(tuning.Seed),
		Space:  physics.NewSpace(),
	}
	ctx.ResetTimers()
	return ctx
}

// ResetTimers 重新开始所有计时器，进入或恢复对局时调用
func (c *Context) ResetTimers() {
	c.Countdown = components.NewTimer("countdown", c.Tuning.Match.Duration)
	c.Dash = components.NewTimer("dash", c.Tuning.Player.DashDuration)
	c.Cooldown = components.NewTimer("cooldown", c.Tuning.Player.CooldownDuration)
	c.Finished = false
	c.Winner = 0
}

// PlaySound 播放音效，没有音频时忽略
func (c *Context) PlaySound(id string) {
	if c.Audio != nil {
		c.Audio.PlaySound(id)
	}
}

// Bounds 世界坐标下的半宽和半高
func (c *Context) Bounds() (halfW, halfH float64) {
	return float64(c.Tuning.Window.Width) / 2, float64(c.Tuning.Window.Height) / 2
}

// newRand seed 为 0 时使用时间种子
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
