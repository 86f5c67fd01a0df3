package scenes

import (
	"log"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/decker502/colortag/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// updater 每帧更新的系统
type updater interface {
	Update(deltaTime float64)
}

// GameScene 对局
//
// 生命周期：
//   - OnEnter: 生成玩家、顶部栏，重置计时器
//   - OnResume: 重新生成顶部栏并重置计时器，玩家缺失时重新生成
//   - OnPause / OnExit: 销毁所有对局实体
//
// 倒计时结束后记录胜者并弹出自己；Escape 中途退出，不记录胜者。
type GameScene struct {
	svc      *Services
	ctx      *systems.Context
	renderer *systems.RenderSystem
	response *systems.CollisionResponseSystem
	pipeline []updater
	players  *donburi.Query
	done     bool
}

// NewGameScene 创建对局，系统在 OnEnter 时才创建
func NewGameScene(svc *Services) *GameScene {
	return &GameScene{
		svc:      svc,
		ctx:      systems.NewContext(svc.World, svc.Tuning, svc.Input, svc.Audio),
		renderer: svc.newRenderSystem(),
		players:  donburi.NewQuery(filter.Contains(components.Player)),
	}
}

// Name 实现 game.State
func (s *GameScene) Name() string { return "Game" }

// Context 对局上下文
func (s *GameScene) Context() *systems.Context { return s.ctx }

// OnEnter 开始新对局
func (s *GameScene) OnEnter() {
	entities.SpawnPlayers(s.svc.World, s.svc.Tuning)
	s.setup()
	log.Printf("[GameScene] Match started (%.0fs)", s.svc.Tuning.Match.Duration)
}

// OnResume 重新开始计时
func (s *GameScene) OnResume() {
	if s.players.Count(s.svc.World) == 0 {
		entities.SpawnPlayers(s.svc.World, s.svc.Tuning)
	}
	s.setup()
}

// OnPause 销毁对局实体
func (s *GameScene) OnPause() { s.teardown() }

// OnExit 销毁对局实体
func (s *GameScene) OnExit() { s.teardown() }

func (s *GameScene) setup() {
	s.ctx.ResetTimers()
	s.ctx.Space.Reset()
	s.done = false

	entities.NewTopBar(s.svc.World, s.svc.Tuning, s.roles(), s.svc.Tuning.Match.Duration)

	s.response = systems.NewCollisionResponseSystem(s.ctx)
	// 顺序：输入 → 动画 → 移动 → 动作 → 计时器 → 能量球 → 碰撞 → 倒计时
	s.pipeline = []updater{
		systems.NewPlayerInputSystem(s.ctx),
		systems.NewAnimationSystem(s.ctx),
		systems.NewMovementSystem(s.ctx),
		systems.NewBulletSystem(s.ctx),
		systems.NewActionSystem(s.ctx),
		systems.NewDashTimerSystem(s.ctx),
		systems.NewOrbSpawnSystem(s.ctx),
		systems.NewPhysicsSystem(s.ctx),
		s.response,
		systems.NewCountdownSystem(s.ctx),
	}
}

// roles 当前两名玩家的身份，没有玩家时使用初始身份
func (s *GameScene) roles() [2]components.Role {
	roles := [2]components.Role{components.RoleTagger, components.RoleRunner}
	s.players.Each(s.svc.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		roles[int(p.Slot)-1] = p.Role
	})
	return roles
}

func (s *GameScene) teardown() {
	if s.response != nil {
		s.response.Close()
		s.response = nil
	}
	s.pipeline = nil
	n := entities.DestroyTagged(s.svc.World, components.GameEntity)
	s.ctx.Space.Reset()
	log.Printf("[GameScene] Torn down %d entities", n)
}

// Update 运行所有系统，检查对局是否结束
func (s *GameScene) Update(deltaTime float64) {
	if s.done {
		return
	}

	if s.svc.Input.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[GameScene] Match abandoned")
		s.svc.Winner = ""
		s.leave()
		return
	}

	for _, sys := range s.pipeline {
		sys.Update(deltaTime)
	}

	if s.ctx.Finished {
		winner := s.ctx.Winner.Name()
		s.svc.Winner = winner
		if s.svc.Scores != nil {
			s.svc.Scores.RecordWin(winner)
			if err := s.svc.Scores.Save(); err != nil {
				log.Printf("[GameScene] Warning: failed to save scores: %v", err)
			}
		}
		s.leave()
	}
}

func (s *GameScene) leave() {
	s.done = true
	if err := s.svc.Stack.Pop(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}
}

// Draw 绘制对局
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}
