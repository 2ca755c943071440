package systems

import (
	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
)

// PointerSource 指针位置来源
type PointerSource interface {
	PointerPosition() (int, int)
}

// HoverParams 悬停缩放参数
type HoverParams struct {
	Scale    float64 // 悬停目标缩放（默认 1.1）
	Duration float64 // 补间时长，秒（默认 1）
	Ease     carousel.EaseFunc
}

// HoverSystem 检测指针进入/离开缩略图遮罩并启动缩放补间
//
// 缩略图每帧都在移动，因此即使指针静止也每帧重新判定。
// 补间目标是绝对值：连续两次进入仍停在 Scale，未进入就离开停在 1.0。
type HoverSystem struct {
	entityManager *ecs.EntityManager
	pointer       PointerSource
	tweener       carousel.Tweener
	params        HoverParams
}

// NewHoverSystem 创建悬停系统
func NewHoverSystem(em *ecs.EntityManager, pointer PointerSource, tweener carousel.Tweener, params HoverParams) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
		pointer:       pointer,
		tweener:       tweener,
		params:        params,
	}
}

// Update 判定悬停状态变化并推进补间
func (s *HoverSystem) Update(deltaTime float64) {
	if s.pointer != nil {
		x, y := s.pointer.PointerPosition()
		px, py := float64(x), float64(y)

		ids := ecs.GetEntitiesWith2[*components.ThumbnailComponent, *components.HoverComponent](s.entityManager)
		for _, id := range ids {
			thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](s.entityManager, id)
			hover, _ := ecs.GetComponent[*components.HoverComponent](s.entityManager, id)

			inside := thumb.Contains(px, py)
			if inside == hover.IsHovered {
				continue
			}
			if inside {
				s.OnPointerEnter(id)
			} else {
				s.OnPointerLeave(id)
			}
		}
	}

	s.tweener.Update(deltaTime)
}

// OnPointerEnter 指针进入：缩放补间到 params.Scale
func (s *HoverSystem) OnPointerEnter(id ecs.EntityID) {
	if hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, id); ok {
		hover.IsHovered = true
		hover.EnterCount++
	}
	s.tweenScale(id, s.params.Scale)
}

// OnPointerLeave 指针离开：缩放补间回 1.0
func (s *HoverSystem) OnPointerLeave(id ecs.EntityID) {
	if hover, ok := ecs.GetComponent[*components.HoverComponent](s.entityManager, id); ok {
		hover.IsHovered = false
		hover.LeaveCount++
	}
	s.tweenScale(id, 1.0)
}

func (s *HoverSystem) tweenScale(id ecs.EntityID, to float64) {
	scale, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, id)
	if !ok {
		return
	}
	s.tweener.To(&scale.ScaleX, to, s.params.Duration, s.params.Ease)
	s.tweener.To(&scale.ScaleY, to, s.params.Duration, s.params.Ease)
}
