package carousel

import "image"

// Texture 已上传到渲染后端的图片
type Texture interface {
	// Size 返回纹理的原始像素尺寸
	Size() (int, int)
}

// ThumbnailNode 一张缩略图的绘制描述
//
// 图片先按 Cover 放入遮罩局部坐标，再以图片中心为锚点应用 InnerScale，
// 最后被裁剪到 (X, Y, Mask.W, Mask.H) 矩形内。
type ThumbnailNode struct {
	Index      int
	Texture    Texture
	X, Y       float64
	Mask       Size
	Cover      Cover
	InnerScale float64
}

// Renderer 渲染后端能力
type Renderer interface {
	// LoadTexture 把解码后的图片上传为纹理
	LoadTexture(img image.Image) (Texture, error)

	// SetDisplacementMap 设置位移贴图，cover 为贴图铺满视口的 cover-fit 结果
	SetDisplacementMap(tex Texture, viewport Size, cover Cover)

	// DrawThumbnail 把缩略图绘制到容器层
	DrawThumbnail(node ThumbnailNode)

	// Composite 对容器层应用位移滤镜并输出到画面，每帧调用一次
	Composite(strengthX, strengthY float64)
}

// EaseFunc 缓动函数，t ∈ [0, 1]
type EaseFunc func(t float64) float64

// Tweener 补间能力：在 duration 秒内把数值属性过渡到 to
type Tweener interface {
	To(prop *float64, to, duration float64, ease EaseFunc)
	Update(dt float64)
}
