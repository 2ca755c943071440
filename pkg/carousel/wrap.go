package carousel

import "math"

// WrapY 把滚动后的 y 回绕到环上
//
// 公式：
//
//	y' = ((scroll + y + ring + rowHeight + margin) mod ring) - rowHeight - margin
//
// 使用向下取整的取模，结果恒落在 [-rowHeight-margin, ring-rowHeight-margin) 内，
// 与累计滚动量大小无关。ring 不为正（没有图片或视口为零）时原样返回 y。
func WrapY(scroll, y, ring, rowHeight, margin float64) float64 {
	if !(ring > 0) {
		return y
	}

	v := math.Mod(scroll+y+ring+rowHeight+margin, ring)
	if v < 0 {
		v += ring
	}
	// v 为极小负数时 v+ring 可能因舍入等于 ring
	if v >= ring {
		v = 0
	}
	return v - rowHeight - margin
}

// WrapBounds 返回回绕结果的半开区间 [min, max)
func WrapBounds(ring, rowHeight, margin float64) (float64, float64) {
	return -rowHeight - margin, ring - rowHeight - margin
}

// Wrap 按布局回绕
func (l Layout) Wrap(scroll, y float64) float64 {
	return WrapY(scroll, y, l.RingHeight(), l.RowHeight, l.Margin)
}
