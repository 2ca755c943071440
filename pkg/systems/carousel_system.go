package systems

import (
	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
	"github.com/decker502/scrollreel/pkg/entities"
)

// CarouselSystem 逐帧推进滚动状态并回绕缩略图位置
//
// 每次 Update 依次：滚动缓动一步、按索引顺序回绕所有缩略图 Y、
// 用滚动速度驱动位移滤镜强度。计算本身委托给 carousel.Update。
type CarouselSystem struct {
	entityManager *ecs.EntityManager
	carouselID    ecs.EntityID
	layout        carousel.Layout
	params        carousel.ScrollParams
}

// NewCarouselSystem 创建轮播系统
func NewCarouselSystem(em *ecs.EntityManager, carouselID ecs.EntityID, layout carousel.Layout, params carousel.ScrollParams) *CarouselSystem {
	return &CarouselSystem{
		entityManager: em,
		carouselID:    carouselID,
		layout:        layout,
		params:        params,
	}
}

// Layout 当前布局
func (s *CarouselSystem) Layout() carousel.Layout {
	return s.layout
}

// Update 推进一帧
func (s *CarouselSystem) Update(deltaTime float64) {
	scroll, ok := ecs.GetComponent[*components.ScrollComponent](s.entityManager, s.carouselID)
	if !ok {
		return
	}

	ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](s.entityManager)
	thumbs := make([]*components.ThumbnailComponent, 0, len(ids))
	frame := carousel.Frame{
		Scroll:    scroll.State,
		Positions: make([]float64, 0, len(ids)),
		Elapsed:   scroll.Elapsed,
		Ticks:     scroll.Ticks,
	}
	for _, id := range ids {
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](s.entityManager, id)
		thumbs = append(thumbs, thumb)
		frame.Positions = append(frame.Positions, thumb.Y)
	}

	next := carousel.Update(frame, s.layout, s.params, deltaTime)

	scroll.State = next.Scroll
	scroll.Elapsed = next.Elapsed
	scroll.Ticks = next.Ticks
	for i, thumb := range thumbs {
		thumb.Y = next.Positions[i]
	}

	if disp, ok := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID); ok {
		disp.ScaleX = 0
		disp.ScaleY = next.Displacement
	}
}

// Relayout 视口尺寸变化后重新布局，保持每张缩略图在环上的相位
func (s *CarouselSystem) Relayout(viewport carousel.Size, p carousel.LayoutParams) {
	ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](s.entityManager)
	old := s.layout
	s.layout = carousel.NewLayout(viewport, len(ids), p)

	for _, id := range ids {
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](s.entityManager, id)
		entities.ApplyLayout(thumb, s.layout)
		thumb.Y = s.layout.Rescale(thumb.Y, old)
	}
}
