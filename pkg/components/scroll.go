package components

import "github.com/decker502/scrollreel/pkg/carousel"

// ScrollComponent 轮播的滚动状态，挂在唯一的轮播实体上
type ScrollComponent struct {
	State carousel.ScrollState

	// Elapsed 累计运行时间（秒）
	Elapsed float64
	// Ticks 已执行的更新次数
	Ticks int
}

// DisplacementComponent 位移滤镜强度，挂在轮播实体上
// ScaleY 每帧由滚动速度驱动；ScaleX 保持为 0
type DisplacementComponent struct {
	ScaleX float64
	ScaleY float64

	// Enabled 为 false 时渲染不应用滤镜
	Enabled bool
}
