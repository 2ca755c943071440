package tween

import (
	"fmt"
	"math"
	"strings"

	"github.com/decker502/scrollreel/pkg/carousel"
)

// 缓动函数
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值，f(0)=0，f(1)=1。
// 名称沿用 GSAP 的写法，便于在配置文件中引用（如 "power1.out"）。
//
// 参考：https://easings.net/

// Linear 线性（匀速）
func Linear(t float64) float64 {
	return t
}

// OutQuad 二次方缓出（power1.out）
// 公式：f(t) = 1 - (1-t)²
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad 二次方缓入缓出（power1.inOut）
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// OutCubic 三次方缓出（power2.out）
// 公式：f(t) = 1 - (1-t)³
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// OutExpo 指数缓出（expo.out）
// 公式：f(t) = 1 - 2^(-10t)，t=1 时取 1
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

var easings = map[string]carousel.EaseFunc{
	"none":         Linear,
	"linear":       Linear,
	"power1.out":   OutQuad,
	"power1.inout": InOutQuad,
	"power2.out":   OutCubic,
	"expo.out":     OutExpo,
}

// ByName 按名称查找缓动函数（不区分大小写），空名称返回 GSAP 默认的 power1.out
func ByName(name string) (carousel.EaseFunc, error) {
	if name == "" {
		return OutQuad, nil
	}
	if fn, ok := easings[strings.ToLower(name)]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
