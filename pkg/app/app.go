// Package app 提供查看器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/scrollreel/pkg/config"
	"github.com/decker502/scrollreel/pkg/game"
	"github.com/decker502/scrollreel/pkg/render"
	"github.com/decker502/scrollreel/pkg/scenes"
	"github.com/decker502/scrollreel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "scrollreel"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 轮播配置文件路径，为空使用内置默认配置
	ConfigPath string
	// Dir 启动时加载的图片目录，为空使用配置中的图片列表
	Dir string
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
	// Picker 目录选择器，为 nil 时 O 键无效
	Picker scenes.FolderPicker
}

// App 是查看器的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	carousel     *config.CarouselConfig
	renderer     *render.EbitenRenderer
	input        *utils.EbitenInput
	verbose      bool

	started                  bool // 是否已进入游戏循环
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化查看器应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	carouselConfig, err := config.LoadCarouselConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("轮播配置加载失败: %w", err)
	}

	if err := utils.EnsureStorageDir(game.SettingsObject); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 设置存储不可用时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)
	if cfg.Fullscreen {
		settings.SetFullscreen(true)
	}

	shaderSrc, err := game.ReadAsset(carouselConfig.Displacement.Shader)
	if err != nil {
		log.Printf("[App] Warning: %v (distortion disabled)", err)
		shaderSrc = nil
	}
	renderer := render.NewEbitenRenderer(shaderSrc, carouselConfig.BackgroundColor())
	resourceManager := game.NewResourceManager(renderer)
	log.Printf("[App] Renderer initialized (shader: %v)", renderer.ShaderAvailable())

	// 移动端没有目录选择对话框
	picker := cfg.Picker
	if utils.IsMobile() {
		picker = nil
	}

	input := utils.NewEbitenInput(carouselConfig.Scroll.WheelPixelsPerNotch)
	sceneManager := game.NewSceneManager()
	env := &scenes.Env{
		Config:          carouselConfig,
		ResourceManager: resourceManager,
		SceneManager:    sceneManager,
		Settings:        settings,
		Renderer:        renderer,
		Input:           input,
		Picker:          picker,
	}

	// 运行中打开新目录：失败时回到当前场景
	sceneManager.SetSceneFactory(func(dir string) game.Scene {
		return scenes.NewLoadingScene(env, dir, sceneManager.GetCurrentScene())
	})

	log.Printf("[App] Starting with dir=%q", cfg.Dir)
	sceneManager.SwitchTo(scenes.NewLoadingScene(env, cfg.Dir, nil))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		carousel:     carouselConfig,
		renderer:     renderer,
		input:        input,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新查看器逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.started = true

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.carousel.Window.Width, a.carousel.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.carousel.Window.Width, a.carousel.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.SaveSettings()
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	return a.sceneManager.Update(deltaTime)
}

// toggleFullscreen 切换全屏并记录到设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
	a.settings.SetFullscreen(true)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 画布已是物理分辨率，这里只负责背景色和线性滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 画布按物理像素分配，场景按逻辑像素（窗口尺寸）布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	res := ResolveResolution(outsideWidth, outsideHeight, scale)

	a.renderer.SetDeviceScale(res.Scale)
	a.input.SetScale(res.Scale)
	a.sceneManager.SetSize(res.LogicalWidth, res.LogicalHeight)
	return res.PhysicalWidth, res.PhysicalHeight
}

// Started 游戏循环是否已开始（至少执行过一次 Update）
func (a *App) Started() bool {
	return a.started
}

// StartFullscreen 是否应当以全屏启动
func (a *App) StartFullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// WindowConfig 返回窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.carousel.Window
}

// SaveSettings 保存查看器设置（当前场景实现 game.Saveable 时由场景保存）
func (a *App) SaveSettings() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		s.SaveOnExit()
		return
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
