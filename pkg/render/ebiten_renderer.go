// Package render 基于 Ebitengine 的轮播渲染后端
//
// 每帧流程：BeginFrame 填充背景并清空容器层，DrawThumbnail 把每张缩略图
// 裁剪后画到容器层，Composite 用位移着色器把容器层合成到屏幕。
// 所有方法只能在游戏主循环（Update/Draw）中调用。
//
// 调用方传入的坐标和尺寸都是逻辑像素；屏幕、容器层、遮罩和位移贴图缓冲
// 按设备像素比（SetDeviceScale）以物理像素分配。
package render

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture ebiten.Image 的纹理包装
type Texture struct {
	img *ebiten.Image
}

// NewTexture 包装已有的 ebiten.Image
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Size 纹理像素尺寸
func (t *Texture) Size() (int, int) {
	if t == nil || t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image 底层 ebiten.Image
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// EbitenRenderer 实现 carousel.Renderer
type EbitenRenderer struct {
	background color.Color
	shader     *ebiten.Shader

	target   *ebiten.Image
	layer    *ebiten.Image
	viewport carousel.Size // 逻辑视口
	scale    float64       // 设备像素比

	// 位移贴图缓冲及其来源，设备像素比变化时按来源重建
	dispMap      *ebiten.Image
	dispTex      *Texture
	dispViewport carousel.Size
	dispCover    carousel.Cover

	// 每张缩略图的遮罩缓冲，按索引复用
	masks map[int]*ebiten.Image

	showMap bool

	drawOp   *ebiten.DrawImageOptions
	shaderOp *ebiten.DrawRectShaderOptions
}

var _ carousel.Renderer = (*EbitenRenderer)(nil)

// NewEbitenRenderer 创建渲染器
//
// 参数:
//   - shaderSrc: Kage 位移着色器源码；为空或编译失败时退化为无扭曲绘制
//   - background: 背景色
func NewEbitenRenderer(shaderSrc []byte, background color.Color) *EbitenRenderer {
	r := &EbitenRenderer{
		background: background,
		scale:      1,
		masks:      make(map[int]*ebiten.Image),
		drawOp:     &ebiten.DrawImageOptions{},
		shaderOp:   &ebiten.DrawRectShaderOptions{},
	}

	if len(shaderSrc) > 0 {
		shader, err := ebiten.NewShader(shaderSrc)
		if err != nil {
			log.Printf("[Render] Warning: failed to compile displacement shader: %v", err)
		} else {
			r.shader = shader
		}
	}
	return r
}

// ShaderAvailable 位移着色器是否可用
func (r *EbitenRenderer) ShaderAvailable() bool {
	return r.shader != nil
}

// SetDeviceScale 设置设备像素比（物理像素 / 逻辑像素），非正数视为 1
func (r *EbitenRenderer) SetDeviceScale(scale float64) {
	r.scale = NormalizeScale(scale)
}

// DeviceScale 当前设备像素比
func (r *EbitenRenderer) DeviceScale() float64 {
	return r.scale
}

// NormalizeScale 非正数或非有限值返回 1
func NormalizeScale(scale float64) float64 {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

// SetShowDisplacementMap 开关位移贴图叠加显示
func (r *EbitenRenderer) SetShowDisplacementMap(show bool) {
	r.showMap = show
}

// ShowDisplacementMap 位移贴图是否叠加显示
func (r *EbitenRenderer) ShowDisplacementMap() bool {
	return r.showMap
}

// LoadTexture 把解码后的图片上传为纹理
func (r *EbitenRenderer) LoadTexture(img image.Image) (carousel.Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("image has zero size %dx%d", b.Dx(), b.Dy())
	}
	return &Texture{img: ebiten.NewImageFromImage(img)}, nil
}

// SetDisplacementMap 把位移贴图按 cover-fit 画进视口大小的缓冲
//
// viewport 与 cover 为逻辑像素。着色器要求所有源图尺寸一致，
// 因此贴图缓冲与容器层同为物理尺寸。
func (r *EbitenRenderer) SetDisplacementMap(tex carousel.Texture, viewport carousel.Size, cover carousel.Cover) {
	t, _ := tex.(*Texture)
	r.dispTex = t
	r.dispViewport = viewport
	r.dispCover = cover
	r.buildDisplacementMap()
}

// buildDisplacementMap 按当前设备像素比重建位移贴图缓冲
func (r *EbitenRenderer) buildDisplacementMap() {
	if r.dispMap != nil {
		r.dispMap.Deallocate()
		r.dispMap = nil
	}

	t := r.dispTex
	w, h := ScaledPixelSize(r.dispViewport, r.scale)
	if t == nil || t.img == nil || w == 0 || h == 0 {
		return
	}

	r.dispMap = ebiten.NewImage(w, h)
	// 贴图未覆盖的区域保持中性（无偏移）
	r.dispMap.Fill(color.RGBA{0x80, 0x80, 0x80, 0xff})

	r.drawOp.GeoM.Reset()
	r.drawOp.GeoM.Scale(r.dispCover.Scale, r.dispCover.Scale)
	r.drawOp.GeoM.Translate(r.dispCover.Left, r.dispCover.Top)
	r.drawOp.GeoM.Scale(r.scale, r.scale)
	r.drawOp.Filter = ebiten.FilterLinear
	r.drawOp.ColorScale.Reset()
	r.dispMap.DrawImage(t.img, r.drawOp)
}

// BeginFrame 开始一帧：填充背景，按屏幕（物理）尺寸准备并清空容器层
func (r *EbitenRenderer) BeginFrame(screen *ebiten.Image) {
	r.target = screen
	screen.Fill(r.background)

	b := screen.Bounds()
	r.viewport = LogicalViewport(b.Dx(), b.Dy(), r.scale)
	if r.layer == nil || r.layer.Bounds().Dx() != b.Dx() || r.layer.Bounds().Dy() != b.Dy() {
		if r.layer != nil {
			r.layer.Deallocate()
		}
		r.layer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	r.layer.Clear()

	// 设备像素比变化后贴图缓冲与容器层尺寸不再一致
	if r.dispMap != nil && !r.dispMap.Bounds().Eq(r.layer.Bounds()) {
		w, h := ScaledPixelSize(r.dispViewport, r.scale)
		if w != r.dispMap.Bounds().Dx() || h != r.dispMap.Bounds().Dy() {
			r.buildDisplacementMap()
		}
	}
}

// DrawThumbnail 把缩略图裁剪到遮罩矩形并画到容器层
func (r *EbitenRenderer) DrawThumbnail(node carousel.ThumbnailNode) {
	if r.layer == nil {
		return
	}
	t, ok := node.Texture.(*Texture)
	if !ok || t.img == nil {
		return
	}
	if !Visible(node, r.viewport) {
		return
	}

	mw, mh := ScaledPixelSize(node.Mask, r.scale)
	if mw == 0 || mh == 0 {
		return
	}

	mask := r.masks[node.Index]
	if mask == nil || mask.Bounds().Dx() != mw || mask.Bounds().Dy() != mh {
		if mask != nil {
			mask.Deallocate()
		}
		mask = ebiten.NewImage(mw, mh)
		r.masks[node.Index] = mask
	}
	mask.Clear()

	w, h := t.Size()
	r.drawOp.GeoM = SpriteGeoM(float64(w), float64(h), node.Cover, node.InnerScale)
	r.drawOp.GeoM.Scale(r.scale, r.scale)
	r.drawOp.Filter = ebiten.FilterLinear
	r.drawOp.ColorScale.Reset()
	mask.DrawImage(t.img, r.drawOp)

	r.drawOp.GeoM.Reset()
	r.drawOp.GeoM.Translate(node.X*r.scale, node.Y*r.scale)
	r.drawOp.Filter = ebiten.FilterNearest
	r.layer.DrawImage(mask, r.drawOp)
}

// Composite 对容器层应用位移滤镜并输出到屏幕
//
// 强度为逻辑像素，按设备像素比换算成物理像素偏移。
// 强度为 0、着色器不可用或贴图缺失时直接绘制容器层。
func (r *EbitenRenderer) Composite(strengthX, strengthY float64) {
	if r.target == nil || r.layer == nil {
		return
	}

	useShader := r.shader != nil && r.dispMap != nil &&
		r.dispMap.Bounds().Eq(r.layer.Bounds()) && (strengthX != 0 || strengthY != 0)

	if useShader {
		b := r.layer.Bounds()
		r.shaderOp.Images[0] = r.layer
		r.shaderOp.Images[1] = r.dispMap
		r.shaderOp.Uniforms = map[string]any{
			"Scale": []float32{float32(strengthX * r.scale), float32(strengthY * r.scale)},
		}
		r.target.DrawRectShader(b.Dx(), b.Dy(), r.shader, r.shaderOp)
	} else {
		r.drawOp.GeoM.Reset()
		r.drawOp.ColorScale.Reset()
		r.target.DrawImage(r.layer, r.drawOp)
	}

	if r.showMap && r.dispMap != nil {
		r.drawOp.GeoM.Reset()
		r.drawOp.ColorScale.Reset()
		r.drawOp.ColorScale.ScaleAlpha(0.5)
		r.target.DrawImage(r.dispMap, r.drawOp)
		r.drawOp.ColorScale.Reset()
	}
}

// ReleaseThumbnails 释放遮罩缓冲（重新加载图片集成功后由 LoadingScene 调用）
func (r *EbitenRenderer) ReleaseThumbnails() {
	for i, m := range r.masks {
		m.Deallocate()
		delete(r.masks, i)
	}
}

// SpriteGeoM 图片在遮罩局部坐标中的变换
//
// 先以图片中心为锚点缩放 inner，再应用 cover-fit 的缩放与偏移。
func SpriteGeoM(w, h float64, cover carousel.Cover, inner float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(inner, inner)
	g.Translate(w/2, h/2)
	g.Scale(cover.Scale, cover.Scale)
	g.Translate(cover.Left, cover.Top)
	return g
}

// Visible 缩略图遮罩是否与视口相交
func Visible(node carousel.ThumbnailNode, viewport carousel.Size) bool {
	return node.X < viewport.W && node.X+node.Mask.W > 0 &&
		node.Y < viewport.H && node.Y+node.Mask.H > 0
}

// ScaledPixelSize 逻辑尺寸换算为物理像素尺寸（向上取整），空尺寸返回 0, 0
func ScaledPixelSize(s carousel.Size, scale float64) (int, int) {
	if s.Empty() {
		return 0, 0
	}
	scale = NormalizeScale(scale)
	return int(math.Ceil(s.W * scale)), int(math.Ceil(s.H * scale))
}

// LogicalViewport 物理屏幕尺寸换算为逻辑视口
func LogicalViewport(physicalW, physicalH int, scale float64) carousel.Size {
	scale = NormalizeScale(scale)
	return carousel.Size{W: float64(physicalW) / scale, H: float64(physicalH) / scale}
}
