package tween

import (
	"math"
	"testing"
)

// TestEasingEndpoints 测试所有缓动函数的端点
func TestEasingEndpoints(t *testing.T) {
	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			if v := fn(0); math.Abs(v) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, v)
			}
			if v := fn(1); math.Abs(v-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, v)
			}
		})
	}
}

// TestOutQuad 测试二次方缓出
func TestOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.75},
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := OutQuad(tt.input); math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("OutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 缓出：前半段领先于线性
	for p := 0.1; p < 1.0; p += 0.1 {
		if OutQuad(p) < Linear(p) {
			t.Errorf("OutQuad(%v) 落后于线性", p)
		}
	}
}

// TestByName 测试按名称查找
func TestByName(t *testing.T) {
	fn, err := ByName("")
	if err != nil {
		t.Fatalf("ByName(\"\") error: %v", err)
	}
	if math.Abs(fn(0.5)-0.75) > 0.001 {
		t.Error("default ease should be power1.out")
	}

	fn, err = ByName("Power1.InOut")
	if err != nil {
		t.Fatalf("ByName is case sensitive: %v", err)
	}
	if math.Abs(fn(0.5)-0.5) > 0.001 {
		t.Errorf("power1.inOut(0.5) = %v, 期望 0.5", fn(0.5))
	}

	if _, err := ByName("bounce.wobble"); err == nil {
		t.Error("unknown ease should return error")
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if v := Lerp(1, 1.1, 0.5); math.Abs(v-1.05) > 1e-9 {
		t.Errorf("Lerp(1, 1.1, 0.5) = %v", v)
	}
}
