package components

import "github.com/decker502/scrollreel/pkg/carousel"

// ThumbnailComponent 轮播中的一张缩略图
//
// (X, Y) 为遮罩矩形左上角，Y 每帧由 CarouselSystem 回绕更新。
// Cover 是图片铺满遮罩的 cover-fit 结果，只在构建或重新布局时计算。
type ThumbnailComponent struct {
	Index   int    // 在图片列表中的顺序
	Path    string // 图片来源路径
	Texture carousel.Texture

	X, Y   float64
	Width  float64 // 遮罩宽度
	Height float64 // 遮罩高度（行高）

	NaturalW float64 // 图片原始宽度
	NaturalH float64 // 图片原始高度
	Cover    carousel.Cover
}

// Contains 点 (px, py) 是否落在遮罩矩形内
func (t *ThumbnailComponent) Contains(px, py float64) bool {
	return px >= t.X && px < t.X+t.Width && py >= t.Y && py < t.Y+t.Height
}
