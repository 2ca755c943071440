package systems

import (
	"math"
	"testing"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
)

func thumbYs(em *ecs.EntityManager) []float64 {
	ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](em)
	ys := make([]float64, 0, len(ids))
	for _, id := range ids {
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](em, id)
		ys = append(ys, thumb.Y)
	}
	return ys
}

// TestCarouselSystemMatchesPureUpdate 测试系统与纯函数逐帧一致
func TestCarouselSystemMatchesPureUpdate(t *testing.T) {
	em, carouselID, layout := newTestCarousel(7)
	params := carousel.DefaultScrollParams()
	s := NewCarouselSystem(em, carouselID, layout, params)

	scroll, _ := ecs.GetComponent[*components.ScrollComponent](em, carouselID)
	scroll.State.Target = -500

	frame := carousel.NewFrame(layout)
	frame.Scroll.Target = -500

	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60)
		frame = carousel.Update(frame, layout, params, 1.0/60)

		ys := thumbYs(em)
		for j := range ys {
			if math.Abs(ys[j]-frame.Positions[j]) > 1e-9 {
				t.Fatalf("frame %d thumb %d: system %v, pure %v", i, j, ys[j], frame.Positions[j])
			}
		}
	}

	if scroll.Ticks != 120 {
		t.Errorf("Ticks = %d, want 120", scroll.Ticks)
	}
	if math.Abs(scroll.Elapsed-2.0) > 1e-9 {
		t.Errorf("Elapsed = %v, want 2", scroll.Elapsed)
	}

	disp, _ := ecs.GetComponent[*components.DisplacementComponent](em, carouselID)
	if disp.ScaleX != 0 {
		t.Errorf("ScaleX = %v, want 0", disp.ScaleX)
	}
	if math.Abs(disp.ScaleY-frame.Displacement) > 1e-9 {
		t.Errorf("ScaleY = %v, want %v", disp.ScaleY, frame.Displacement)
	}
}

// TestCarouselSystemWrapBounds 测试回绕后所有位置都在环内
func TestCarouselSystemWrapBounds(t *testing.T) {
	em, carouselID, layout := newTestCarousel(7)
	s := NewCarouselSystem(em, carouselID, layout, carousel.DefaultScrollParams())

	scroll, _ := ecs.GetComponent[*components.ScrollComponent](em, carouselID)
	scroll.State.Target = 250

	lo, hi := carousel.WrapBounds(layout.RingHeight(), layout.RowHeight, layout.Margin)
	for i := 0; i < 300; i++ {
		s.Update(1.0 / 60)
		for j, y := range thumbYs(em) {
			if y < lo-1e-9 || y >= hi+1e-9 || math.IsNaN(y) {
				t.Fatalf("frame %d thumb %d: y=%v outside [%v, %v)", i, j, y, lo, hi)
			}
		}
	}
}

// TestCarouselSystemRelayout 测试视口变化后保持相位
func TestCarouselSystemRelayout(t *testing.T) {
	em, carouselID, layout := newTestCarousel(5)
	s := NewCarouselSystem(em, carouselID, layout, carousel.DefaultScrollParams())

	s.Relayout(carousel.Size{W: 640, H: 400}, carousel.DefaultLayoutParams())
	next := s.Layout()

	if next.Count != 5 {
		t.Fatalf("Count = %d, want 5", next.Count)
	}
	// rowHeight = (400 - 100) / 3 = 100, width = 512
	if next.RowHeight != 100 || next.Width != 512 {
		t.Errorf("layout = %+v", next)
	}

	ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](em)
	for i, id := range ids {
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](em, id)
		if math.Abs(thumb.Y-next.InitialY(i)) > 1e-9 {
			t.Errorf("thumb %d Y = %v, want %v", i, thumb.Y, next.InitialY(i))
		}
		if thumb.Width != 512 || thumb.Height != 100 || thumb.X != 51.2 {
			t.Errorf("thumb %d mask = (%v, %v, %v)", i, thumb.X, thumb.Width, thumb.Height)
		}
	}
}

// TestCarouselSystemEmpty 测试没有缩略图时只推进滚动状态
func TestCarouselSystemEmpty(t *testing.T) {
	em, carouselID, layout := newTestCarousel(0)
	s := NewCarouselSystem(em, carouselID, layout, carousel.DefaultScrollParams())

	scroll, _ := ecs.GetComponent[*components.ScrollComponent](em, carouselID)
	scroll.State.Target = 10
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60)
	}
	if scroll.Ticks != 10 || math.IsNaN(scroll.State.Current) {
		t.Errorf("unexpected scroll state %+v", scroll)
	}
}
