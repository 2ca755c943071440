package scenes

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/decker502/scrollreel/pkg/config"
	"github.com/decker502/scrollreel/pkg/game"
	"github.com/decker502/scrollreel/pkg/loader"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// loadResult 后台加载的结果
type loadResult struct {
	images       []loader.Asset
	displacement loader.Asset
	err          error
}

// LoadingScene 异步加载图片，完成后切换到 CarouselScene
//
// 解码在后台 goroutine 中完成，纹理上传在 Update 中（游戏主线程）完成。
// 启动加载失败是致命错误；运行中重新打开目录失败时回到 fallback 场景。
type LoadingScene struct {
	env      *Env
	dir      string
	fallback game.Scene

	count   int
	elapsed float64
	result  <-chan loadResult
	cancel  context.CancelFunc
}

// NewLoadingScene 创建加载场景并立即开始后台加载
//
// 参数:
//   - env: 场景依赖
//   - dir: 图片目录，为空时使用配置中的图片列表
//   - fallback: 加载失败时回退的场景，为 nil 表示失败即退出
func NewLoadingScene(env *Env, dir string, fallback game.Scene) *LoadingScene {
	s := &LoadingScene{
		env:      env,
		dir:      dir,
		fallback: fallback,
	}

	ch := make(chan loadResult, 1)
	s.result = ch

	paths, err := ImagePaths(env.Config, dir)
	if err != nil {
		ch <- loadResult{err: err}
		return s
	}
	s.count = len(paths)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	opts := loader.Options{
		Timeout:        env.Config.Loader.Timeout,
		MaxTextureSize: env.Config.Loader.MaxTextureSize,
		Concurrency:    env.Config.Loader.Concurrency,
	}
	mapPath := env.Config.Displacement.Map

	log.Printf("[LoadingScene] 开始加载 %d 张图片 (dir=%q)", len(paths), dir)
	go func() {
		// 位移贴图与图片一起加载，任何一个失败都整体失败
		all := append(append([]string(nil), paths...), mapPath)
		assets, err := loader.LoadAll(ctx, loader.MixedSource{}, all, opts)
		if err != nil {
			ch <- loadResult{err: err}
			return
		}
		ch <- loadResult{images: assets[:len(paths)], displacement: assets[len(paths)]}
	}()

	return s
}

// ImagePaths 解析要加载的图片路径
//
// dir 非空时列出目录中的图片（按文件名排序），否则使用配置列表。
func ImagePaths(cfg *config.CarouselConfig, dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return append([]string(nil), cfg.Images...), nil
	}
	paths, err := loader.ListImages(dir)
	if err != nil {
		return nil, &loader.LoadError{Path: dir, Err: err}
	}
	return paths, nil
}

// Update 轮询加载结果
func (s *LoadingScene) Update(deltaTime float64) error {
	s.elapsed += deltaTime

	var res loadResult
	select {
	case res = <-s.result:
	default:
		return nil
	}
	if s.cancel != nil {
		s.cancel()
	}

	if res.err != nil {
		if s.fallback != nil {
			log.Printf("[LoadingScene] 加载 %q 失败，返回上一个场景: %v", s.dir, res.err)
			s.env.SceneManager.SwitchTo(s.fallback)
			return nil
		}
		return fmt.Errorf("startup: %w", res.err)
	}

	next, err := s.buildCarousel(res)
	if err != nil {
		if s.fallback != nil {
			log.Printf("[LoadingScene] 纹理上传失败，返回上一个场景: %v", err)
			s.env.SceneManager.SwitchTo(s.fallback)
			return nil
		}
		return fmt.Errorf("startup: %w", err)
	}

	if s.dir != "" {
		s.env.Settings.SetLastDirectory(s.dir)
	}
	log.Printf("[LoadingScene] 加载完成，耗时 %.2fs", s.elapsed)
	s.env.SceneManager.SwitchTo(next)
	return nil
}

// buildCarousel 上传纹理并创建轮播场景
func (s *LoadingScene) buildCarousel(res loadResult) (*CarouselScene, error) {
	rm := s.env.ResourceManager
	if s.fallback != nil {
		// 旧场景仍持有旧纹理，这里只清空路径缓存
		rm.Clear()
	}

	thumbs := make([]Thumbnail, 0, len(res.images))
	for _, a := range res.images {
		tex, err := rm.UploadTexture(a.Path, a.Image)
		if err != nil {
			return nil, err
		}
		thumbs = append(thumbs, Thumbnail{Path: a.Path, Texture: tex})
	}

	mapTex, err := rm.UploadTexture(res.displacement.Path, res.displacement.Image)
	if err != nil {
		return nil, err
	}

	if s.fallback != nil {
		// 新图片集数量和尺寸可能不同，旧遮罩缓冲不再适用
		s.env.Renderer.ReleaseThumbnails()
	}

	w, h := s.env.SceneManager.Size()
	return NewCarouselScene(s.env, thumbs, mapTex, w, h), nil
}

// Draw 绘制背景和加载提示
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.env.Config.BackgroundColor())
	dots := strings.Repeat(".", int(s.elapsed*3)%4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Loading %d images%s", s.count, dots), 16, 16)
}
