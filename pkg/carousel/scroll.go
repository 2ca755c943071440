package carousel

import (
	"fmt"
	"math"
)

// EasingMode 滚动跟随公式
type EasingMode string

const (
	// EasingLiteral current += (current - target) * follow
	// 保留原始效果的写法，符号使 current 远离 target，
	// 在 decay 作用下收敛到不动点 -d*f*T / (1 - d*(1+f))（默认参数下为 -9T）
	EasingLiteral EasingMode = "literal"

	// EasingTowardTarget current += (target - current) * follow
	EasingTowardTarget EasingMode = "toward_target"
)

// ScrollParams 滚动参数
type ScrollParams struct {
	Follow           float64    // 跟随系数（默认 0.1）
	Decay            float64    // 每帧衰减系数（默认 0.9）
	Sensitivity      float64    // 输入灵敏度除数：target = deltaY / Sensitivity（默认 3）
	DisplacementGain float64    // 位移滤镜增益（默认 3）
	Mode             EasingMode // 跟随公式
}

// DefaultScrollParams 返回默认滚动参数
func DefaultScrollParams() ScrollParams {
	return ScrollParams{
		Follow:           0.1,
		Decay:            0.9,
		Sensitivity:      3,
		DisplacementGain: 3,
		Mode:             EasingLiteral,
	}
}

// Validate 校验参数
func (p ScrollParams) Validate() error {
	switch p.Mode {
	case EasingLiteral, EasingTowardTarget:
	default:
		return fmt.Errorf("unknown easing mode %q", p.Mode)
	}
	if p.Sensitivity == 0 {
		return fmt.Errorf("sensitivity must not be zero")
	}
	if math.IsNaN(p.Follow) || math.IsNaN(p.Decay) {
		return fmt.Errorf("follow/decay must be numbers")
	}
	return nil
}

// ScrollState 滚动状态
type ScrollState struct {
	Current   float64 // 当前滚动速度（每帧叠加到所有缩略图）
	Target    float64 // 输入设置的目标值
	Direction float64 // 本帧方向：更新前 Current > 0 时为 -1，否则为 +1
}

// TargetFromDelta 把手势位移换算成滚动目标
func (p ScrollParams) TargetFromDelta(deltaY float64) float64 {
	if p.Sensitivity == 0 {
		return 0
	}
	return deltaY / p.Sensitivity
}

// Step 执行一次滚动更新
//
// 顺序：
//  1. Direction = -1（Current > 0）或 +1
//  2. 按 Mode 跟随 Target
//  3. Current *= Decay
func Step(s ScrollState, p ScrollParams) ScrollState {
	if s.Current > 0 {
		s.Direction = -1
	} else {
		s.Direction = 1
	}

	switch p.Mode {
	case EasingTowardTarget:
		s.Current += (s.Target - s.Current) * p.Follow
	default:
		s.Current += (s.Current - s.Target) * p.Follow
	}

	s.Current *= p.Decay
	return s
}

// DisplacementStrength 位移滤镜的纵向强度 gain * Direction * |Current|
func DisplacementStrength(s ScrollState, gain float64) float64 {
	return gain * s.Direction * math.Abs(s.Current)
}

// FixedPoint 目标恒定时 Step 的不动点
//
// 迭代为 c' = a*c + b*T 的仿射映射，|a| < 1 时收敛到 b*T/(1-a)。
// 返回值 ok 表示映射是否为收缩映射。
func FixedPoint(target float64, p ScrollParams) (float64, bool) {
	var a, b float64
	switch p.Mode {
	case EasingTowardTarget:
		a = p.Decay * (1 - p.Follow)
		b = p.Decay * p.Follow
	default:
		a = p.Decay * (1 + p.Follow)
		b = -p.Decay * p.Follow
	}
	if math.Abs(a) >= 1 {
		return 0, false
	}
	return b * target / (1 - a), true
}
