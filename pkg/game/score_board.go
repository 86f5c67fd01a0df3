package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreData 跨会话保存的战绩
type ScoreData struct {
	Wins          map[string]int `yaml:"wins"`          // 玩家名称 -> 胜场
	MatchesPlayed int            `yaml:"matchesPlayed"` // 完整打完的对局数（中途退出不计）
	LastWinner    string         `yaml:"lastWinner"`
}

func newScoreData() *ScoreData {
	return &ScoreData{Wins: make(map[string]int)}
}

// ScoreBoard 战绩管理器
//
// 与 SettingsManager 相同，gdataManager 为 nil 时只在内存中记录。
type ScoreBoard struct {
	gdataManager *gdata.Manager
	data         *ScoreData
}

const (
	scoreObject   = "scores"
	scoreProperty = "tally"
)

// NewScoreBoard 创建战绩管理器并加载已有战绩
func NewScoreBoard(gdataManager *gdata.Manager) *ScoreBoard {
	sb := &ScoreBoard{
		gdataManager: gdataManager,
		data:         newScoreData(),
	}
	if err := sb.Load(); err != nil {
		log.Printf("[ScoreBoard] Warning: Failed to load scores: %v (starting fresh)", err)
	}
	return sb
}

// Load 从 gdata 加载战绩
func (sb *ScoreBoard) Load() error {
	sb.data = newScoreData()
	if sb.gdataManager == nil || !sb.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}

	raw, err := sb.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}

	loaded := newScoreData()
	if err := yaml.Unmarshal(raw, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal scores: %w", err)
	}
	if loaded.Wins == nil {
		loaded.Wins = make(map[string]int)
	}
	sb.data = loaded
	return nil
}

// Save 保存战绩到 gdata
func (sb *ScoreBoard) Save() error {
	if sb.gdataManager == nil {
		return nil
	}

	raw, err := yaml.Marshal(sb.data)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}
	if err := sb.gdataManager.SaveObjectProp(scoreObject, scoreProperty, raw); err != nil {
		return fmt.Errorf("failed to save scores: %w", err)
	}

	log.Printf("[ScoreBoard] Scores saved (%d matches)", sb.data.MatchesPlayed)
	return nil
}

// RecordWin 记录一局的胜者
func (sb *ScoreBoard) RecordWin(winner string) {
	sb.data.Wins[winner]++
	sb.data.MatchesPlayed++
	sb.data.LastWinner = winner
	log.Printf("[ScoreBoard] %s won (total %d)", winner, sb.data.Wins[winner])
}

// Wins 返回指定玩家的胜场
func (sb *ScoreBoard) Wins(name string) int {
	return sb.data.Wins[name]
}

// MatchesPlayed 返回完整对局数
func (sb *ScoreBoard) MatchesPlayed() int {
	return sb.data.MatchesPlayed
}

// LastWinner 返回最近一局的胜者，没有则为空
func (sb *ScoreBoard) LastWinner() string {
	return sb.data.LastWinner
}

// Summary 菜单中显示的比分，例如 "Player_1  3 : 1  Player_2"
func (sb *ScoreBoard) Summary(first, second string) string {
	return fmt.Sprintf("%s  %d : %d  %s", first, sb.Wins(first), sb.Wins(second), second)
}

// Reset 清空战绩（不会自动保存）
func (sb *ScoreBoard) Reset() {
	sb.data = newScoreData()
}
