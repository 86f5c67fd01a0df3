package systems

import (
	"testing"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/decker502/colortag/pkg/entities"
	"github.com/decker502/colortag/pkg/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	dmath "github.com/yohamta/donburi/features/math"
)

// recordingAudio 记录播放过的音效
type recordingAudio struct {
	played []string
}

func (r *recordingAudio) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingAudio) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// testMatch 一局测试对局
type testMatch struct {
	ctx    *Context
	in     *input.Scripted
	audio  *recordingAudio
	tagger *donburi.Entry // 玩家1
	runner *donburi.Entry // 玩家2
}

// newTestMatch 创建带两名玩家的对局，不生成能量球
func newTestMatch(t *testing.T) *testMatch {
	t.Helper()
	tuning, err := config.DefaultTuning()
	if err != nil {
		t.Fatalf("DefaultTuning() error: %v", err)
	}
	tuning.Seed = 42

	world := donburi.NewWorld()
	in := input.NewScripted()
	audio := &recordingAudio{}
	ctx := NewContext(world, tuning, in, audio)

	p1, p2 := entities.SpawnPlayers(world, tuning)
	return &testMatch{
		ctx:    ctx,
		in:     in,
		audio:  audio,
		tagger: world.Entry(p1),
		runner: world.Entry(p2),
	}
}

// place 把实体移动到指定世界坐标
func place(entry *donburi.Entry, x, y float64) {
	components.Transform.Get(entry).Position = dmath.NewVec2(x, y)
}

// count 统计带指定组件的实体数量
func count(world donburi.World, ctype donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filter.Contains(ctype)).Each(world, func(*donburi.Entry) { n++ })
	return n
}
