package components

// HoverComponent 指针悬停状态
// 由 HoverSystem 在指针进入/离开遮罩矩形时切换，并触发缩放补间
type HoverComponent struct {
	// IsHovered 指针当前是否在遮罩内
	IsHovered bool

	// EnterCount / LeaveCount 累计事件次数（调试叠加层显示）
	EnterCount int
	LeaveCount int
}
