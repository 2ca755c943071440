package scenes

import (
	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/config"
	"github.com/decker502/scrollreel/pkg/game"
	"github.com/decker502/scrollreel/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRenderer 场景使用的渲染后端（render.EbitenRenderer 实现）
type FrameRenderer interface {
	carousel.Renderer

	// BeginFrame 填充背景并准备容器层
	BeginFrame(screen *ebiten.Image)

	SetShowDisplacementMap(show bool)
	ShowDisplacementMap() bool
	ShaderAvailable() bool

	// ReleaseThumbnails 释放缩略图遮罩缓冲
	ReleaseThumbnails()
}

// Input 滚动与指针输入（utils.EbitenInput 实现）
type Input interface {
	systems.InputSource
	systems.PointerSource
}

// Env 场景共享的依赖
type Env struct {
	Config          *config.CarouselConfig
	ResourceManager *game.ResourceManager
	SceneManager    *game.SceneManager
	Settings        *game.SettingsManager
	Renderer        FrameRenderer
	Input           Input
	Picker          FolderPicker
}
