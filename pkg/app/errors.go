package app

import (
	"errors"
	"fmt"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/hajimehoshi/ebiten/v2"
)

// ClassifyRunError 归类 ebiten.RunGame 返回的错误
//
// 正常退出（nil 或 ebiten.Termination）返回 nil。游戏循环开始前的失败
// 说明窗口或图形上下文无法创建，包装为 carousel.ErrSurfaceUnavailable；
// 资源加载失败保持原样。
func ClassifyRunError(started bool, err error) error {
	if err == nil || errors.Is(err, ebiten.Termination) {
		return nil
	}
	if !started && !errors.Is(err, carousel.ErrAssetLoad) {
		return fmt.Errorf("%w: %v", carousel.ErrSurfaceUnavailable, err)
	}
	return err
}
