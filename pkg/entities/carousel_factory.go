package entities

import (
	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
)

// NewCarouselEntity 创建轮播实体（持有滚动状态和位移滤镜强度）
// 参数:
//   - manager: EntityManager 实例
//   - distortion: 是否启用位移滤镜
//
// 返回: 创建的实体ID
func NewCarouselEntity(manager *ecs.EntityManager, distortion bool) ecs.EntityID {
	id := manager.CreateEntity()

	ecs.AddComponent(manager, id, &components.ScrollComponent{
		State: carousel.ScrollState{Direction: 1},
	})
	ecs.AddComponent(manager, id, &components.DisplacementComponent{
		Enabled: distortion,
	})

	return id
}

// NewThumbnailEntity 创建一张缩略图实体
// 参数:
//   - manager: EntityManager 实例
//   - index: 图片在列表中的顺序，决定初始 Y
//   - path: 图片来源路径
//   - tex: 已上传的纹理
//   - layout: 当前布局
//
// 返回: 创建的实体ID
//
// 实体必须按 index 递增的顺序创建，系统按实体ID顺序遍历缩略图。
func NewThumbnailEntity(manager *ecs.EntityManager, index int, path string, tex carousel.Texture, layout carousel.Layout) ecs.EntityID {
	id := manager.CreateEntity()

	w, h := tex.Size()
	thumb := &components.ThumbnailComponent{
		Index:    index,
		Path:     path,
		Texture:  tex,
		NaturalW: float64(w),
		NaturalH: float64(h),
	}
	ApplyLayout(thumb, layout)
	thumb.Y = layout.InitialY(index)

	ecs.AddComponent(manager, id, thumb)
	ecs.AddComponent(manager, id, components.NewScaleComponent())
	ecs.AddComponent(manager, id, &components.HoverComponent{})

	return id
}

// ApplyLayout 按布局更新遮罩矩形和 cover-fit（不修改 Y）
func ApplyLayout(thumb *components.ThumbnailComponent, layout carousel.Layout) {
	mask := layout.MaskSize()
	thumb.X = layout.X
	thumb.Width = mask.W
	thumb.Height = mask.H
	thumb.Cover = carousel.CoverFit(carousel.Size{W: thumb.NaturalW, H: thumb.NaturalH}, mask)
}
