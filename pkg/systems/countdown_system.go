package systems

import (
	"log"

	"github.com/decker502/colortag/internal/synth"
	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// CountdownSystem 推进对局倒计时并更新顶部栏文字
//
// 剩余时间不超过告警阈值时文字变红，每次文字变化播放一次滴答声。
// 倒计时结束时，未被追捕的一方获胜，结果写入 Context。
type CountdownSystem struct {
	ctx     *Context
	labels  *donburi.Query
	players *donburi.Query
}

// NewCountdownSystem 创建倒计时系统
func NewCountdownSystem(ctx *Context) *CountdownSystem {
	return &CountdownSystem{
		ctx:     ctx,
		labels:  donburi.NewQuery(filter.Contains(components.CountdownLabel, components.Label)),
		players: donburi.NewQuery(filter.Contains(components.Player)),
	}
}

// Update 推进倒计时
func (s *CountdownSystem) Update(deltaTime float64) {
	if s.ctx.Finished {
		return
	}

	finished := s.ctx.Countdown.Tick(deltaTime)
	remaining := s.ctx.Countdown.Remaining()
	text := entities.FormatCountdown(remaining)
	warning := remaining <= s.ctx.Tuning.Match.WarningThreshold

	s.labels.Each(s.ctx.World, func(entry *donburi.Entry) {
		label := components.Label.Get(entry)
		if warning {
			label.Color = config.WarningColor
			if label.Text != text {
				s.ctx.PlaySound(synth.SoundTick)
			}
		}
		label.Text = text
	})

	if finished {
		s.finish()
	}
}

func (s *CountdownSystem) finish() {
	s.players.Each(s.ctx.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Role == components.RoleRunner {
			s.ctx.Winner = player.Slot
		}
	})
	s.ctx.Finished = true
	log.Printf("[CountdownSystem] time up, winner: %s", s.ctx.Winner.Name())
}
