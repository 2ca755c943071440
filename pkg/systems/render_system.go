package systems

import (
	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
)

// RenderSystem 把缩略图送入渲染后端并合成一次
//
// 背景填充与画布准备由后端在调用 Draw 之前完成。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	carouselID    ecs.EntityID
	renderer      carousel.Renderer
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, carouselID ecs.EntityID, renderer carousel.Renderer) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		carouselID:    carouselID,
		renderer:      renderer,
	}
}

// Draw 按索引顺序绘制所有缩略图，然后应用位移滤镜合成
func (s *RenderSystem) Draw() {
	ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](s.entityManager)
	for _, id := range ids {
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](s.entityManager, id)
		inner := 1.0
		if scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id); ok {
			inner = scale.ScaleX
		}

		s.renderer.DrawThumbnail(carousel.ThumbnailNode{
			Index:      thumb.Index,
			Texture:    thumb.Texture,
			X:          thumb.X,
			Y:          thumb.Y,
			Mask:       carousel.Size{W: thumb.Width, H: thumb.Height},
			Cover:      thumb.Cover,
			InnerScale: inner,
		})
	}

	sx, sy := 0.0, 0.0
	if disp, ok := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID); ok && disp.Enabled {
		sx, sy = disp.ScaleX, disp.ScaleY
	}
	s.renderer.Composite(sx, sy)
}
