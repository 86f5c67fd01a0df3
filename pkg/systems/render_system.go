package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/decker502/colortag/pkg/components"
	"github.com/decker502/colortag/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// FontSource 按字号提供字体
// game.ResourceManager 实现了这个接口
type FontSource interface {
	Font(size float64) *text.GoTextFace
}

// 飞船轮廓（SVG 路径，y 轴向下），尺寸 31.7 x 44，以中心为原点绘制
var shipOutline = []shipSegment{
	{op: 'M', pts: []float64{1.2681, 34.1401}},
	{op: 'Q', pts: []float64{-1.6782, 43.8592, 4.2145, 43.8592}},
	{op: 'L', pts: []float64{27.7855, 43.8592}},
	{op: 'Q', pts: []float64{33.6782, 43.8592, 30.7319, 34.1401}},
	{op: 'L', pts: []float64{21.8927, 8.2224}},
	{op: 'Q', pts: []float64{16, -7.9761, 10.1073, 8.2224}},
}

const (
	shipCenterX = 15.85
	shipCenterY = 22.0
)

type shipSegment struct {
	op  byte
	pts []float64
}

// RenderSystem 绘制矢量图形、按钮和文字
//
// 绘制顺序（从底到顶）：按 Z 排序的图形 → 按钮 → 文字。
// 图形使用世界坐标（原点在窗口中心，Y 轴向上），按钮和文字使用屏幕坐标。
type RenderSystem struct {
	world         donburi.World
	fonts         FontSource
	width, height float64

	shapes  *donburi.Query
	buttons *donburi.Query
	labels  *donburi.Query

	// 复用的绘制缓冲
	drawList []*donburi.Entry
	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

// NewRenderSystem 创建渲染系统
//
// 参数：
//   - world: 实体所在的世界
//   - fonts: 字体来源，为 nil 时不绘制文字
//   - width, height: 逻辑屏幕尺寸
func NewRenderSystem(world donburi.World, fonts FontSource, width, height int) *RenderSystem {
	return &RenderSystem{
		world:   world,
		fonts:   fonts,
		width:   float64(width),
		height:  float64(height),
		shapes:  donburi.NewQuery(filter.Contains(components.Shape, components.Transform)),
		buttons: donburi.NewQuery(filter.Contains(components.Button)),
		labels:  donburi.NewQuery(filter.Contains(components.Label)),
	}
}

// ToScreen 把世界坐标转换为屏幕坐标
func (s *RenderSystem) ToScreen(x, y float64) (float64, float64) {
	return x + s.width/2, s.height/2 - y
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawShapes(screen)
	s.buttons.Each(s.world, func(entry *donburi.Entry) {
		s.drawButton(screen, components.Button.Get(entry))
	})
	s.labels.Each(s.world, func(entry *donburi.Entry) {
		s.drawLabel(screen, components.Label.Get(entry))
	})
}

func (s *RenderSystem) drawShapes(screen *ebiten.Image) {
	s.drawList = s.drawList[:0]
	s.shapes.Each(s.world, func(entry *donburi.Entry) {
		s.drawList = append(s.drawList, entry)
	})
	sort.SliceStable(s.drawList, func(i, j int) bool {
		return components.Shape.Get(s.drawList[i]).Z < components.Shape.Get(s.drawList[j]).Z
	})

	for _, entry := range s.drawList {
		shape := components.Shape.Get(entry)
		transform := components.Transform.Get(entry)
		cx, cy := s.ToScreen(transform.Position.X, transform.Position.Y)

		switch shape.Kind {
		case components.ShapeShip:
			s.drawShip(screen, cx, cy, transform, shape.Fill)
		case components.ShapeCircle:
			r := float32(shape.Width * transform.Scale.X)
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, shape.Fill, true)
			if shape.OutlineWidth > 0 {
				vector.StrokeCircle(screen, float32(cx), float32(cy), r, float32(shape.OutlineWidth), shape.Outline, true)
			}
		case components.ShapeRect:
			w := shape.Width * transform.Scale.X
			h := shape.Height * transform.Scale.Y
			vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), shape.Fill, false)
		}
	}
}

// drawShip 按 Transform 的缩放和旋转填充飞船轮廓
func (s *RenderSystem) drawShip(screen *ebiten.Image, cx, cy float64, t *components.TransformData, fill color.RGBA) {
	// 屏幕 y 轴向下，逆时针的世界旋转在屏幕上取反
	sin, cos := math.Sincos(-t.Rotation)
	at := func(x, y float64) (float32, float32) {
		lx := (x - shipCenterX) * t.Scale.X
		ly := (y - shipCenterY) * t.Scale.Y
		return float32(cx + lx*cos - ly*sin), float32(cy + lx*sin + ly*cos)
	}

	var path vector.Path
	for _, seg := range shipOutline {
		switch seg.op {
		case 'M':
			x, y := at(seg.pts[0], seg.pts[1])
			path.MoveTo(x, y)
		case 'L':
			x, y := at(seg.pts[0], seg.pts[1])
			path.LineTo(x, y)
		case 'Q':
			x1, y1 := at(seg.pts[0], seg.pts[1])
			x2, y2 := at(seg.pts[2], seg.pts[3])
			path.QuadTo(x1, y1, x2, y2)
		}
	}
	path.Close()

	s.fillPath(screen, &path, fill)
}

func (s *RenderSystem) fillPath(screen *ebiten.Image, path *vector.Path, clr color.RGBA) {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	screen.DrawTriangles(s.vertices, s.indices, s.white, op)
}

func (s *RenderSystem) drawButton(screen *ebiten.Image, button *components.ButtonData) {
	bg := config.ButtonNormalColor
	switch button.State {
	case components.UIHovered, components.UIClicked:
		bg = config.ButtonHoverColor
	case components.UIDisabled:
		bg = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	}
	vector.DrawFilledRect(screen, float32(button.X), float32(button.Y), float32(button.Width), float32(button.Height), bg, false)

	s.drawText(screen, button.Text, button.TextSize, config.TextColor, components.AlignCenter,
		button.X+button.Width/2, button.Y+button.Height/2)
}

func (s *RenderSystem) drawLabel(screen *ebiten.Image, label *components.LabelData) {
	s.drawText(screen, label.Text, label.Size, label.Color, label.Align, label.X, label.Y)
}

func (s *RenderSystem) drawText(screen *ebiten.Image, str string, size float64, clr color.RGBA, align components.Align, x, y float64) {
	if str == "" || s.fonts == nil {
		return
	}
	face := s.fonts.Font(size)
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = textAlign(align)
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

func textAlign(a components.Align) text.Align {
	switch a {
	case components.AlignStart:
		return text.AlignStart
	case components.AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignCenter
	}
}
