// Package loader 并发加载并解码轮播图片
//
// 所有图片要么全部成功，要么整体失败：任何一张读取或解码失败、
// 或者超过整体超时，LoadAll 都返回 *LoadError（匹配 carousel.ErrAssetLoad）。
// 本包不创建 GPU 纹理，解码结果交给主线程上传。
package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"time"

	"github.com/decker502/scrollreel/pkg/carousel"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Asset 已解码的图片，创建后不再修改
type Asset struct {
	Index int
	Path  string
	Image image.Image
}

// Options 加载选项
type Options struct {
	// Timeout 整体超时，0 表示不限
	Timeout time.Duration

	// MaxTextureSize 最大边长，超过时等比缩小，0 表示不限
	MaxTextureSize int

	// Concurrency 并发解码数，<= 0 表示不限
	Concurrency int
}

// DefaultOptions 默认加载选项
func DefaultOptions() Options {
	return Options{
		Timeout:        10 * time.Second,
		MaxTextureSize: 4096,
		Concurrency:    4,
	}
}

// LoadError 加载失败
//
// Path 为空表示整体失败（如超时）。
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("asset load failed: %v", e.Err)
	}
	return fmt.Sprintf("asset load failed for %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is 让 errors.Is(err, carousel.ErrAssetLoad) 成立
func (e *LoadError) Is(target error) bool {
	return target == carousel.ErrAssetLoad
}

// LoadAll 并发读取并解码 paths 中的所有图片
//
// 参数:
//   - ctx: 取消或截止时整体失败
//   - src: 图片来源
//   - paths: 图片路径，返回结果保持此顺序
//   - opts: 超时、尺寸上限和并发数
//
// 返回:
//   - []Asset: 与 paths 一一对应，Asset.Index 为其下标
//   - error: *LoadError
//
// 超时后立即返回，不等待仍在解码的 goroutine。
func LoadAll(ctx context.Context, src Source, paths []string, opts Options) ([]Asset, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	assets := make([]Asset, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &LoadError{Path: path, Err: err}
			}
			img, err := decode(src, path, opts.MaxTextureSize)
			if err != nil {
				return &LoadError{Path: path, Err: err}
			}
			assets[i] = Asset{Index: i, Path: path, Image: img}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("[Loader] 加载失败: %v", err)
			return nil, err
		}
	case <-ctx.Done():
		err := &LoadError{Err: ctx.Err()}
		log.Printf("[Loader] %v", err)
		return nil, err
	}

	log.Printf("[Loader] 加载 %d 张图片，耗时 %v", len(assets), time.Since(start))
	return assets, nil
}

// decode 读取并解码单张图片
func decode(src Source, path string, maxSize int) (image.Image, error) {
	r, err := src.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer r.Close()

	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("image has zero size")
	}

	if scaled, ok := Downscale(img, maxSize); ok {
		log.Printf("[Loader] %s (%s) %dx%d 缩小到 %dx%d", path, format,
			b.Dx(), b.Dy(), scaled.Bounds().Dx(), scaled.Bounds().Dy())
		return scaled, nil
	}
	return img, nil
}

// Downscale 最长边超过 maxSize 时等比缩小（CatmullRom 插值）
//
// 返回缩小后的图片和 true；无需缩小时返回原图和 false。
func Downscale(img image.Image, maxSize int) (image.Image, bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img, false
	}

	ratio := float64(maxSize) / float64(max(w, h))
	nw := max(1, int(float64(w)*ratio+0.5))
	nh := max(1, int(float64(h)*ratio+0.5))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, true
}
