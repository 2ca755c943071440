package systems

import (
	"image"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/ecs"
	"github.com/decker502/scrollreel/pkg/entities"
)

type fakeTexture struct{ w, h int }

func (f fakeTexture) Size() (int, int) { return f.w, f.h }

// fakeInput 按帧返回预设位移
type fakeInput struct {
	deltas []float64
	calls  int
}

func (f *fakeInput) ScrollDelta() float64 {
	f.calls++
	if len(f.deltas) == 0 {
		return 0
	}
	d := f.deltas[0]
	f.deltas = f.deltas[1:]
	return d
}

type fakePointer struct{ x, y int }

func (f *fakePointer) PointerPosition() (int, int) { return f.x, f.y }

// fakeRenderer 记录绘制调用
type fakeRenderer struct {
	nodes      []carousel.ThumbnailNode
	composites [][2]float64
}

func (f *fakeRenderer) LoadTexture(img image.Image) (carousel.Texture, error) {
	b := img.Bounds()
	return fakeTexture{b.Dx(), b.Dy()}, nil
}

func (f *fakeRenderer) SetDisplacementMap(carousel.Texture, carousel.Size, carousel.Cover) {}

func (f *fakeRenderer) DrawThumbnail(node carousel.ThumbnailNode) {
	f.nodes = append(f.nodes, node)
}

func (f *fakeRenderer) Composite(sx, sy float64) {
	f.composites = append(f.composites, [2]float64{sx, sy})
}

// newTestCarousel 创建 count 张缩略图的轮播（1280x720 视口）
func newTestCarousel(count int) (*ecs.EntityManager, ecs.EntityID, carousel.Layout) {
	em := ecs.NewEntityManager()
	carouselID := entities.NewCarouselEntity(em, true)
	layout := carousel.NewLayout(carousel.Size{W: 1280, H: 720}, count, carousel.DefaultLayoutParams())
	for i := 0; i < count; i++ {
		entities.NewThumbnailEntity(em, i, "", fakeTexture{400 + 10*i, 300}, layout)
	}
	return em, carouselID, layout
}
