// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// WheelDeltaY 返回本帧滚轮的纵向位移（像素）
//
// Ebitengine 的滚轮向下为负值，这里取反，使"向下滚动"为正，
// 与浏览器 WheelEvent.deltaY 的方向一致。
func WheelDeltaY(pixelsPerNotch float64) float64 {
	_, wy := ebiten.Wheel()
	if wy == 0 {
		return 0
	}
	return -wy * pixelsPerNotch
}

// ============================================================================
// 拖拽状态管理器 - 把触摸/鼠标拖拽转换为逐帧的滚动位移
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
)

// PointerSample 一帧的指针采样
type PointerSample struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// Pressed 当前是否按下
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// TouchID 触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouch 是否为触摸输入
	IsTouch bool
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标）
	CurrentX, CurrentY int
	// LastY 上一帧的纵向位置，用于计算逐帧位移
	LastY int
	// TouchID 当前跟踪的触摸ID（-1表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 采样 Ebitengine 输入并推进状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Step(PollPointer(dm.info.TouchID, dm.info.IsTouchInput))
}

// Step 用一帧采样推进拖拽状态机
func (dm *DragManager) Step(s PointerSample) {
	switch dm.info.State {
	case DragStateNone:
		if s.JustPressed {
			dm.info = DragInfo{
				State:        DragStateStarted,
				StartX:       s.X,
				StartY:       s.Y,
				CurrentX:     s.X,
				CurrentY:     s.Y,
				LastY:        s.Y,
				TouchID:      s.TouchID,
				IsTouchInput: s.IsTouch,
			}
		}

	case DragStateStarted, DragStateDragging:
		if !s.Pressed {
			// 释放帧不产生位移
			dm.info.State = DragStateEnded
			dm.info.LastY = dm.info.CurrentY
			return
		}
		dm.info.State = DragStateDragging
		dm.info.LastY = dm.info.CurrentY
		dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y

	case DragStateEnded:
		// 结束状态只持续一帧，下一帧重置
		dm.Reset()
		if s.JustPressed {
			dm.Step(s)
		}
	}
}

// PollPointer 读取当前帧的指针采样
//
// 正在跟踪某个触摸时只读取该触摸；否则优先检测新的触摸，再检测鼠标左键。
func PollPointer(trackedTouch ebiten.TouchID, tracking bool) PointerSample {
	if tracking {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == trackedTouch {
				x, y := ebiten.TouchPosition(id)
				return PointerSample{Pressed: true, X: x, Y: y, TouchID: id, IsTouch: true}
			}
		}
		return PointerSample{TouchID: trackedTouch, IsTouch: true}
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSample{JustPressed: true, Pressed: true, X: x, Y: y, TouchID: ids[0], IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
		TouchID:     -1,
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// FrameDeltaY 本帧拖拽的纵向位移（当前位置减上一帧位置）
func (dm *DragManager) FrameDeltaY() int {
	if dm.info.State != DragStateDragging {
		return 0
	}
	return dm.info.CurrentY - dm.info.LastY
}

// ============================================================================
// EbitenInput - 滚动与指针输入源
// ============================================================================

// EbitenInput 把滚轮和拖拽合并为逐帧滚动位移
//
// Ebitengine 报告的指针坐标是物理像素（与 Layout 返回的画布一致），
// 输出前按设备像素比换算为逻辑像素。
type EbitenInput struct {
	drag           *DragManager
	pixelsPerNotch float64
	scale          float64
}

// NewEbitenInput 创建输入源
//
// 参数:
//   - pixelsPerNotch: 滚轮一格对应的像素位移
func NewEbitenInput(pixelsPerNotch float64) *EbitenInput {
	return &EbitenInput{
		drag:           NewDragManager(),
		pixelsPerNotch: pixelsPerNotch,
		scale:          1,
	}
}

// SetScale 设置设备像素比，非正数视为 1
func (in *EbitenInput) SetScale(scale float64) {
	if !(scale > 0) {
		scale = 1
	}
	in.scale = scale
}

// ToLogical 物理像素坐标换算为逻辑像素坐标
func ToLogical(x, y int, scale float64) (int, int) {
	if !(scale > 0) || scale == 1 {
		return x, y
	}
	return int(float64(x) / scale), int(float64(y) / scale)
}

// ScrollDelta 本帧的纵向滚动位移（像素），每帧调用一次
func (in *EbitenInput) ScrollDelta() float64 {
	in.drag.Update()
	return WheelDeltaY(in.pixelsPerNotch) + float64(in.drag.FrameDeltaY())/in.scale
}

// PointerPosition 当前指针位置（逻辑像素）
func (in *EbitenInput) PointerPosition() (int, int) {
	x, y := GetPointerPosition()
	return ToLogical(x, y, in.scale)
}
