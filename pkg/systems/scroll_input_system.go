package systems

import (
	"math"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
)

// InputSource 逐帧滚动位移来源（滚轮、触摸拖拽、鼠标拖拽）
type InputSource interface {
	// ScrollDelta 本帧纵向位移（像素），向下为正；每帧只调用一次
	ScrollDelta() float64
}

// ScrollInputSystem 把手势位移转换为滚动目标
//
// 位移先累计，绝对值达到 tolerance 后才触发一次目标更新：
// target = 累计位移 / sensitivity，随后清零累计值。
// 目标只在有输入时被改写，不会自动归零。本系统从不直接移动缩略图。
type ScrollInputSystem struct {
	entityManager *ecs.EntityManager
	carouselID    ecs.EntityID
	input         InputSource
	params        carousel.ScrollParams
	tolerance     float64

	accumulated float64
	events      int
}

// NewScrollInputSystem 创建滚动输入系统
func NewScrollInputSystem(em *ecs.EntityManager, carouselID ecs.EntityID, input InputSource, params carousel.ScrollParams, tolerance float64) *ScrollInputSystem {
	return &ScrollInputSystem{
		entityManager: em,
		carouselID:    carouselID,
		input:         input,
		params:        params,
		tolerance:     math.Max(0, tolerance),
	}
}

// Update 读取本帧输入并更新滚动目标
func (s *ScrollInputSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	delta := s.input.ScrollDelta()
	if delta == 0 || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return
	}

	scroll, ok := ecs.GetComponent[*components.ScrollComponent](s.entityManager, s.carouselID)
	if !ok {
		return
	}

	s.accumulated += delta
	if math.Abs(s.accumulated) < s.tolerance {
		return
	}

	scroll.State.Target = s.params.TargetFromDelta(s.accumulated)
	s.accumulated = 0
	s.events++
}

// Events 已触发的目标更新次数
func (s *ScrollInputSystem) Events() int {
	return s.events
}
