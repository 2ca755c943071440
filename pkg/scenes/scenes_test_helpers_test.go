package scenes

import (
	"image"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/config"
	"github.com/decker502/scrollreel/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeTexture struct{ w, h int }

func (f fakeTexture) Size() (int, int) { return f.w, f.h }

// fakeRenderer 记录调用，不创建 GPU 资源
type fakeRenderer struct {
	showMap    bool
	maps       []carousel.Size
	nodes      []carousel.ThumbnailNode
	composites [][2]float64
	uploads    int
	releases   int
}

func (f *fakeRenderer) LoadTexture(img image.Image) (carousel.Texture, error) {
	f.uploads++
	b := img.Bounds()
	return fakeTexture{b.Dx(), b.Dy()}, nil
}

func (f *fakeRenderer) SetDisplacementMap(_ carousel.Texture, viewport carousel.Size, _ carousel.Cover) {
	f.maps = append(f.maps, viewport)
}

func (f *fakeRenderer) DrawThumbnail(node carousel.ThumbnailNode) {
	f.nodes = append(f.nodes, node)
}

func (f *fakeRenderer) Composite(sx, sy float64) {
	f.composites = append(f.composites, [2]float64{sx, sy})
}

func (f *fakeRenderer) BeginFrame(*ebiten.Image)         {}
func (f *fakeRenderer) SetShowDisplacementMap(show bool) { f.showMap = show }
func (f *fakeRenderer) ShowDisplacementMap() bool        { return f.showMap }
func (f *fakeRenderer) ShaderAvailable() bool            { return true }
func (f *fakeRenderer) ReleaseThumbnails()               { f.releases++ }

// fakeInput 按帧返回预设滚动位移，指针固定
type fakeInput struct {
	deltas []float64
	x, y   int
}

func (f *fakeInput) ScrollDelta() float64 {
	if len(f.deltas) == 0 {
		return 0
	}
	d := f.deltas[0]
	f.deltas = f.deltas[1:]
	return d
}

func (f *fakeInput) PointerPosition() (int, int) { return f.x, f.y }

// fakePicker 立即返回预设目录
type fakePicker struct {
	dir string
	err error
}

func (p fakePicker) PickFolder(string) (string, error) { return p.dir, p.err }

// newTestEnv 创建使用假渲染器的场景依赖（设置不持久化）
func newTestEnv() (*Env, *fakeRenderer, *fakeInput) {
	renderer := &fakeRenderer{}
	input := &fakeInput{x: -1, y: -1}
	sm := game.NewSceneManager()
	sm.SetSize(1280, 720)

	env := &Env{
		Config:          config.DefaultCarouselConfig(),
		ResourceManager: game.NewResourceManager(renderer),
		SceneManager:    sm,
		Settings:        game.NewSettingsManager(nil),
		Renderer:        renderer,
		Input:           input,
	}
	return env, renderer, input
}

// testThumbs 生成 count 张不同尺寸的缩略图
func testThumbs(count int) []Thumbnail {
	thumbs := make([]Thumbnail, count)
	for i := range thumbs {
		thumbs[i] = Thumbnail{Path: "", Texture: fakeTexture{400 + 20*i, 300}}
	}
	return thumbs
}
