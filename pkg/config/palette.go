package config

import "image/color"

// 配色方案
//
// 角色颜色同时用于玩家飞船和顶部栏中的玩家名字，
// 角色交换时二者一起交换。
var (
	// ClearColor 背景色
	ClearColor = color.RGBA{R: 9, G: 8, B: 28, A: 255}

	// TaggerColor 追捕者颜色
	TaggerColor = color.RGBA{R: 94, G: 165, B: 255, A: 255}
	// RunnerColor 逃跑者颜色
	RunnerColor = color.RGBA{R: 107, G: 186, B: 93, A: 255}

	// OrbFillColor 能量球填充色
	OrbFillColor = color.RGBA{R: 181, G: 90, B: 214, A: 255}
	// OrbOutlineColor 能量球描边色，同时是按钮悬停色
	OrbOutlineColor = color.RGBA{R: 138, G: 30, B: 97, A: 255}

	// BulletColor 子弹颜色
	BulletColor = OrbFillColor

	// ButtonNormalColor 按钮常态颜色
	ButtonNormalColor = color.RGBA{R: 149, G: 53, B: 184, A: 255}
	// ButtonHoverColor 按钮悬停颜色
	ButtonHoverColor = OrbOutlineColor

	// TopBarColor 顶部信息栏背景
	TopBarColor = color.RGBA{R: 23, G: 23, B: 23, A: 255}

	// TextColor 默认文字颜色
	TextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// WarningColor 倒计时告警颜色
	WarningColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	// DashFlashColor 冲刺开始时的闪白颜色
	DashFlashColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// 字号
const (
	TitleFontSize   = 70.0
	HeadingFontSize = 40.0
	BodyFontSize    = 30.0
	SmallFontSize   = 25.0
	HintFontSize    = 18.0
)

// 按钮尺寸
const (
	ButtonWidth  = 200.0
	ButtonHeight = 50.0
	ButtonMargin = 20.0
)
