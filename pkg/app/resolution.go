package app

import "math"

// Resolution 一次 Layout 的逻辑尺寸与物理尺寸
//
// 布局、悬停检测和位移贴图 cover-fit 都使用逻辑像素；
// 屏幕画布按物理像素分配，避免高分屏上画面被放大模糊。
type Resolution struct {
	LogicalWidth   int
	LogicalHeight  int
	PhysicalWidth  int
	PhysicalHeight int
	Scale          float64
}

// ResolveResolution 根据窗口尺寸（设备无关像素）和设备像素比计算画布尺寸
//
// 非正数或非有限的像素比按 1 处理。
func ResolveResolution(outsideWidth, outsideHeight int, deviceScale float64) Resolution {
	if !(deviceScale > 0) || math.IsInf(deviceScale, 0) {
		deviceScale = 1
	}
	return Resolution{
		LogicalWidth:   outsideWidth,
		LogicalHeight:  outsideHeight,
		PhysicalWidth:  int(math.Ceil(float64(outsideWidth) * deviceScale)),
		PhysicalHeight: int(math.Ceil(float64(outsideHeight) * deviceScale)),
		Scale:          deviceScale,
	}
}
