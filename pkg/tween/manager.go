// Package tween 提供数值属性的补间动画
//
// Manager 实现 carousel.Tweener：每个补间从开始时刻的当前值过渡到绝对目标值，
// 因此重复对同一目标发起补间是幂等的（1.0 -> 1.1 两次仍停在 1.1）。
// 对同一属性发起新补间时，旧补间立即被取代，新补间从属性当前值开始。
package tween

import (
	"github.com/decker502/scrollreel/pkg/carousel"
)

type tween struct {
	prop     *float64
	from     float64
	to       float64
	duration float64
	elapsed  float64
	ease     carousel.EaseFunc
}

// Manager 补间管理器（非线程安全，只在游戏循环中使用）
type Manager struct {
	tweens []*tween
}

// NewManager 创建补间管理器
func NewManager() *Manager {
	return &Manager{
		tweens: make([]*tween, 0),
	}
}

var _ carousel.Tweener = (*Manager)(nil)

// To 在 duration 秒内把 *prop 过渡到 to
//
// duration <= 0 时立即赋值。ease 为 nil 时使用 OutQuad。
func (m *Manager) To(prop *float64, to, duration float64, ease carousel.EaseFunc) {
	if prop == nil {
		return
	}
	m.Kill(prop)

	if duration <= 0 {
		*prop = to
		return
	}
	if ease == nil {
		ease = OutQuad
	}

	m.tweens = append(m.tweens, &tween{
		prop:     prop,
		from:     *prop,
		to:       to,
		duration: duration,
		ease:     ease,
	})
}

// Kill 停止作用于 prop 的补间，属性保持当前值
func (m *Manager) Kill(prop *float64) {
	kept := m.tweens[:0]
	for _, tw := range m.tweens {
		if tw.prop != prop {
			kept = append(kept, tw)
		}
	}
	// 清理尾部引用
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept
}

// Update 推进所有补间 dt 秒，完成的补间写入终值后移除
func (m *Manager) Update(dt float64) {
	if len(m.tweens) == 0 {
		return
	}

	kept := m.tweens[:0]
	for _, tw := range m.tweens {
		tw.elapsed += dt
		progress := tw.elapsed / tw.duration
		if progress >= 1 {
			*tw.prop = tw.to
			continue
		}
		if progress < 0 {
			progress = 0
		}
		*tw.prop = Lerp(tw.from, tw.to, tw.ease(progress))
		kept = append(kept, tw)
	}
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept
}

// Active 返回正在运行的补间数量
func (m *Manager) Active() int {
	return len(m.tweens)
}

// IsTweening 属性是否有正在运行的补间
func (m *Manager) IsTweening(prop *float64) bool {
	for _, tw := range m.tweens {
		if tw.prop == prop {
			return true
		}
	}
	return false
}
