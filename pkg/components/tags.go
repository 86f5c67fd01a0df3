package components

import "github.com/yohamta/donburi"

var (
	// Orb 能量球
	Orb = donburi.NewTag()
	// GameEntity 离开对局状态时需要销毁的实体
	GameEntity = donburi.NewTag()
	// MenuWidget 菜单状态创建的界面元素
	MenuWidget = donburi.NewTag()
	// TopBar 对局顶部信息栏
	TopBar = donburi.NewTag()
	// CountdownLabel 倒计时文字
	CountdownLabel = donburi.NewTag()
)

// PlayerLabelData 顶部栏中的玩家名称，颜色随身份变化
type PlayerLabelData struct {
	Slot Slot
}

var PlayerLabel = donburi.NewComponentType[PlayerLabelData]()
