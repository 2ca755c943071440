package carousel

import "errors"

var (
	// ErrAssetLoad 资源加载失败（读取失败、解码失败或加载超时）
	// 启动阶段遇到此错误时拒绝启动，不会无限等待
	ErrAssetLoad = errors.New("carousel: asset load failed")

	// ErrSurfaceUnavailable 渲染表面不可用（窗口或图形上下文无法创建）
	// 致命错误，立即上报
	ErrSurfaceUnavailable = errors.New("carousel: rendering surface unavailable")
)
