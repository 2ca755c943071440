package carousel

// Frame 一帧的完整轮播状态
type Frame struct {
	Scroll       ScrollState
	Positions    []float64 // 按缩略图索引排列的 Y
	Displacement float64   // 位移滤镜纵向强度
	Elapsed      float64   // 累计运行时间（秒）
	Ticks        int       // 已执行的更新次数
}

// NewFrame 按布局生成初始帧，缩略图位于 InitialY
func NewFrame(l Layout) Frame {
	positions := make([]float64, l.Count)
	for i := range positions {
		positions[i] = l.InitialY(i)
	}
	return Frame{
		Scroll:    ScrollState{Direction: 1},
		Positions: positions,
	}
}

// Update 逐帧更新：(state, dt) -> new state
//
// 滚动按 tick 计算（与显示刷新同步，每次调用一步），dt 只累计到 Elapsed。
// 输入帧不会被修改。
func Update(f Frame, l Layout, p ScrollParams, dt float64) Frame {
	next := Frame{
		Scroll:    Step(f.Scroll, p),
		Positions: make([]float64, len(f.Positions)),
		Elapsed:   f.Elapsed + dt,
		Ticks:     f.Ticks + 1,
	}

	for i, y := range f.Positions {
		next.Positions[i] = l.Wrap(next.Scroll.Current, y)
	}

	next.Displacement = DisplacementStrength(next.Scroll, p.DisplacementGain)
	return next
}
