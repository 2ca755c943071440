package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
	"github.com/decker502/scrollreel/pkg/entities"
	"github.com/decker502/scrollreel/pkg/systems"
	"github.com/decker502/scrollreel/pkg/tween"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Thumbnail 已上传的图片
type Thumbnail struct {
	Path    string
	Texture carousel.Texture
}

// CarouselScene 运行中的轮播
//
// 每帧顺序：输入 → 滚动与回绕 → 悬停补间，Draw 时一次合成。
type CarouselScene struct {
	env *Env

	entityManager *ecs.EntityManager
	carouselID    ecs.EntityID

	scrollInput    *systems.ScrollInputSystem
	carouselSystem *systems.CarouselSystem
	hoverSystem    *systems.HoverSystem
	renderSystem   *systems.RenderSystem

	mapTexture carousel.Texture
	viewport   carousel.Size

	picking <-chan pickResult
}

// NewCarouselScene 创建轮播场景
//
// 参数:
//   - env: 场景依赖
//   - thumbs: 按显示顺序排列的纹理
//   - mapTexture: 位移贴图纹理
//   - width, height: 当前画布尺寸
func NewCarouselScene(env *Env, thumbs []Thumbnail, mapTexture carousel.Texture, width, height int) *CarouselScene {
	cfg := env.Config
	viewport := carousel.Size{W: float64(width), H: float64(height)}
	layout := carousel.NewLayout(viewport, len(thumbs), cfg.LayoutParams())

	em := ecs.NewEntityManager()
	carouselID := entities.NewCarouselEntity(em, cfg.Displacement.Enabled && env.Settings.GetSettings().DistortionEnabled)
	for i, t := range thumbs {
		entities.NewThumbnailEntity(em, i, t.Path, t.Texture, layout)
	}

	// 配置已通过 Validate，缓动名称一定有效
	ease, err := tween.ByName(cfg.Hover.Ease)
	if err != nil {
		ease = tween.OutQuad
	}

	s := &CarouselScene{
		env:            env,
		entityManager:  em,
		carouselID:     carouselID,
		scrollInput:    systems.NewScrollInputSystem(em, carouselID, env.Input, cfg.ScrollParams(), cfg.Scroll.Tolerance),
		carouselSystem: systems.NewCarouselSystem(em, carouselID, layout, cfg.ScrollParams()),
		hoverSystem: systems.NewHoverSystem(em, env.Input, tween.NewManager(), systems.HoverParams{
			Scale:    cfg.Hover.Scale,
			Duration: cfg.Hover.Duration,
			Ease:     ease,
		}),
		renderSystem: systems.NewRenderSystem(em, carouselID, env.Renderer),
		mapTexture:   mapTexture,
		viewport:     viewport,
	}

	env.Renderer.SetShowDisplacementMap(env.Settings.GetSettings().ShowDisplacementMap)
	s.applyDisplacementMap()

	if !env.Renderer.ShaderAvailable() {
		log.Printf("[CarouselScene] 着色器不可用，以无扭曲方式绘制")
	}
	log.Printf("[CarouselScene] %d 张缩略图，视口 %.0fx%.0f", len(thumbs), viewport.W, viewport.H)
	return s
}

// applyDisplacementMap 把位移贴图 cover-fit 到当前视口
func (s *CarouselScene) applyDisplacementMap() {
	if s.mapTexture == nil {
		return
	}
	w, h := s.mapTexture.Size()
	cover := carousel.CoverFit(carousel.Size{W: float64(w), H: float64(h)}, s.viewport)
	s.env.Renderer.SetDisplacementMap(s.mapTexture, s.viewport, cover)
}

// Resize 画布尺寸变化：重新布局并重新铺放位移贴图
func (s *CarouselScene) Resize(width, height int) {
	viewport := carousel.Size{W: float64(width), H: float64(height)}
	if viewport == s.viewport {
		return
	}
	s.viewport = viewport
	s.carouselSystem.Relayout(viewport, s.env.Config.LayoutParams())
	s.applyDisplacementMap()
	log.Printf("[CarouselScene] 视口变为 %dx%d", width, height)
}

// Update 处理按键并推进一帧
func (s *CarouselScene) Update(deltaTime float64) error {
	s.handleKeys()
	s.pollPicker()
	s.step(deltaTime)
	return nil
}

// step 推进一帧（不读取按键）
func (s *CarouselScene) step(deltaTime float64) {
	s.scrollInput.Update(deltaTime)
	s.carouselSystem.Update(deltaTime)
	s.hoverSystem.Update(deltaTime)
}

// handleKeys 处理场景按键
//
//	O: 打开图片目录
//	D: 叠加显示位移贴图和调试信息
//	F: 开关位移滤镜
func (s *CarouselScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.openPicker()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.ToggleDisplacementMap()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.ToggleDistortion()
	}
}

// ToggleDistortion 开关位移滤镜
func (s *CarouselScene) ToggleDistortion() {
	disp, ok := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID)
	if !ok {
		return
	}
	disp.Enabled = !disp.Enabled
	s.env.Settings.SetDistortionEnabled(disp.Enabled)
	log.Printf("[CarouselScene] 位移滤镜: %v", disp.Enabled)
}

// ToggleDisplacementMap 开关位移贴图叠加
func (s *CarouselScene) ToggleDisplacementMap() {
	show := !s.env.Renderer.ShowDisplacementMap()
	s.env.Renderer.SetShowDisplacementMap(show)
	s.env.Settings.SetShowDisplacementMap(show)
}

// openPicker 在后台打开目录选择对话框（同一时间只有一个）
func (s *CarouselScene) openPicker() {
	if s.picking != nil || s.env.Picker == nil {
		return
	}
	log.Printf("[CarouselScene] 打开目录选择对话框")
	s.picking = pickAsync(s.env.Picker, s.env.Settings.GetSettings().LastDirectory)
}

// pollPicker 对话框返回后切换到加载场景
func (s *CarouselScene) pollPicker() {
	if s.picking == nil {
		return
	}
	select {
	case res := <-s.picking:
		s.picking = nil
		if res.err != nil {
			log.Printf("[CarouselScene] Warning: %v", res.err)
			return
		}
		if res.dir == "" {
			return
		}
		s.env.SceneManager.LoadDirectory(res.dir)
	default:
	}
}

// Draw 绘制轮播
func (s *CarouselScene) Draw(screen *ebiten.Image) {
	s.env.Renderer.BeginFrame(screen)
	s.renderSystem.Draw()

	if s.env.Renderer.ShowDisplacementMap() {
		ebitenutil.DebugPrintAt(screen, s.debugText(), 8, 8)
	}
}

// debugText 调试叠加层文字
func (s *CarouselScene) debugText() string {
	scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, s.carouselID)
	disp, _ := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID)
	layout := s.carouselSystem.Layout()

	return fmt.Sprintf("TPS %.0f  images %d  ring %.1f\nscroll %.3f  target %.3f  dir %+.0f\ndisplacement %.2f  enabled %v  events %d\n[O] open  [D] overlay  [F] distortion  [F11] fullscreen  [Esc] quit",
		ebiten.ActualTPS(), layout.Count, layout.RingHeight(),
		scroll.State.Current, scroll.State.Target, scroll.State.Direction,
		disp.ScaleY, disp.Enabled, s.scrollInput.Events())
}

// SaveOnExit 退出时保存查看器设置
func (s *CarouselScene) SaveOnExit() bool {
	if err := s.env.Settings.Save(); err != nil {
		log.Printf("[CarouselScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}
