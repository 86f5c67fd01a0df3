package components

import "github.com/yohamta/donburi"

// ButtonData 按钮组件
// 包含按钮的所有数据：文字、位置、状态、回调
//
// 按钮是纯矢量绘制的圆角矩形，颜色随 State 变化，
// 文字居中显示。位置和尺寸使用屏幕坐标。
type ButtonData struct {
	// Text 按钮上显示的文字
	Text string
	// TextSize 字号
	TextSize float64

	// X, Y 左上角屏幕坐标
	X, Y float64
	// Width, Height 按钮尺寸（像素）
	Width, Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数，在鼠标松开的那一帧触发
	OnClick func()
}

// Contains 判断屏幕坐标是否在按钮范围内
func (b *ButtonData) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

var Button = donburi.NewComponentType[ButtonData]()
