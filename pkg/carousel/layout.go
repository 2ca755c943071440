package carousel

import "math"

// Size 表示宽高
type Size struct {
	W float64
	H float64
}

// Empty 宽或高不为正时视为空尺寸
func (s Size) Empty() bool {
	return !(s.W > 0) || !(s.H > 0)
}

// Cover cover-fit 计算结果
//
// 按 Scale 等比缩放后的图片左上角位于目标矩形内的 (Left, Top)，
// 缩放后尺寸为 Width x Height，完全覆盖目标矩形，超出部分被裁剪。
type Cover struct {
	Scale  float64
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// CoverFit 计算让 natural 完全覆盖 target 的等比缩放与居中偏移
//
// 公式：
//
//	scale = max(target.W/natural.W, target.H/natural.H)
//	left  = (target.W - natural.W*scale) / 2
//	top   = (target.H - natural.H*scale) / 2
//
// 任一尺寸为空时返回零值 Cover。
func CoverFit(natural, target Size) Cover {
	if natural.Empty() || target.Empty() {
		return Cover{}
	}

	scale := math.Max(target.W/natural.W, target.H/natural.H)
	w := natural.W * scale
	h := natural.H * scale

	return Cover{
		Scale:  scale,
		Left:   (target.W - w) / 2,
		Top:    (target.H - h) / 2,
		Width:  w,
		Height: h,
	}
}

// LayoutParams 行布局参数（来自配置）
type LayoutParams struct {
	WidthRatio  float64 // 缩略图宽度占视口宽度的比例（默认 0.8）
	Margin      float64 // 行间距（像素，默认 50）
	RowsVisible int     // 一屏可见行数（默认 3）
}

// DefaultLayoutParams 返回默认布局参数
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		WidthRatio:  0.8,
		Margin:      50,
		RowsVisible: 3,
	}
}

// Layout 轮播的行布局
type Layout struct {
	Viewport  Size
	X         float64 // 缩略图遮罩左边缘
	Width     float64 // 遮罩宽度
	RowHeight float64 // 遮罩高度
	Margin    float64
	Count     int
}

// NewLayout 根据视口尺寸和缩略图数量计算布局
//
//	width     = viewport.W * WidthRatio
//	rowHeight = (viewport.H - 2*margin) / RowsVisible
//	x         = width / 10
//
// 视口过小导致宽高不为正时返回的布局 Valid() 为 false。
func NewLayout(viewport Size, count int, p LayoutParams) Layout {
	rows := p.RowsVisible
	if rows <= 0 {
		rows = 1
	}

	width := viewport.W * p.WidthRatio
	rowHeight := (viewport.H - 2*p.Margin) / float64(rows)
	if !(width > 0) {
		width = 0
	}
	if !(rowHeight > 0) {
		rowHeight = 0
	}

	return Layout{
		Viewport:  viewport,
		X:         width / 10,
		Width:     width,
		RowHeight: rowHeight,
		Margin:    p.Margin,
		Count:     count,
	}
}

// Valid 布局是否可渲染（有缩略图且遮罩尺寸为正）
func (l Layout) Valid() bool {
	return l.Count > 0 && l.Width > 0 && l.RowHeight > 0
}

// Pitch 相邻缩略图的间距
func (l Layout) Pitch() float64 {
	return l.RowHeight + l.Margin
}

// RingHeight 环长 N * (RowHeight + Margin)
func (l Layout) RingHeight() float64 {
	return float64(l.Count) * l.Pitch()
}

// InitialY 第 index 张缩略图的初始 Y
func (l Layout) InitialY(index int) float64 {
	return l.Pitch() * float64(index)
}

// MaskSize 遮罩矩形尺寸
func (l Layout) MaskSize() Size {
	return Size{W: l.Width, H: l.RowHeight}
}

// Rescale 视口变化后把旧布局下的 y 映射到新布局，保持环上的相位
func (l Layout) Rescale(y float64, old Layout) float64 {
	if old.Pitch() <= 0 || !l.Valid() {
		return y
	}
	phase := (y + old.RowHeight + old.Margin) / old.Pitch()
	return phase*l.Pitch() - l.RowHeight - l.Margin
}
