package scenes

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/decker502/scrollreel/pkg/components"
	"github.com/decker502/scrollreel/pkg/ecs"
	"github.com/decker502/scrollreel/pkg/game"
)

func TestNewCarouselScene(t *testing.T) {
	env, renderer, _ := newTestEnv()
	s := NewCarouselScene(env, testThumbs(7), fakeTexture{512, 512}, 1280, 720)

	ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](s.entityManager)
	if len(ids) != 7 {
		t.Fatalf("got %d thumbnails, want 7", len(ids))
	}

	layout := s.carouselSystem.Layout()
	for i, id := range ids {
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](s.entityManager, id)
		if thumb.Index != i {
			t.Errorf("thumb[%d].Index = %d", i, thumb.Index)
		}
		if want := layout.InitialY(i); math.Abs(thumb.Y-want) > 1e-9 {
			t.Errorf("thumb[%d].Y = %v, want %v", i, thumb.Y, want)
		}
	}

	if len(renderer.maps) != 1 || renderer.maps[0].W != 1280 || renderer.maps[0].H != 720 {
		t.Errorf("displacement map viewports = %v, want one 1280x720", renderer.maps)
	}
}

func TestCarouselSceneStep(t *testing.T) {
	env, renderer, input := newTestEnv()
	s := NewCarouselScene(env, testThumbs(3), fakeTexture{512, 512}, 1280, 720)
	input.deltas = []float64{300}

	s.step(1.0 / 60)

	scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, s.carouselID)
	if math.Abs(scroll.State.Target-100) > 1e-9 {
		t.Errorf("Target = %v, want 100", scroll.State.Target)
	}
	if scroll.State.Current == 0 {
		t.Error("Current should move after a wheel event")
	}

	disp, _ := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID)
	if disp.ScaleX != 0 || disp.ScaleY == 0 {
		t.Errorf("displacement = (%v, %v), want (0, non-zero)", disp.ScaleX, disp.ScaleY)
	}

	s.renderSystem.Draw()
	if len(renderer.nodes) != 3 || len(renderer.composites) != 1 {
		t.Errorf("nodes=%d composites=%d, want 3 and 1", len(renderer.nodes), len(renderer.composites))
	}
}

func TestCarouselSceneResize(t *testing.T) {
	env, renderer, _ := newTestEnv()
	s := NewCarouselScene(env, testThumbs(4), fakeTexture{512, 512}, 1280, 720)

	t.Run("尺寸不变不重新布局", func(t *testing.T) {
		s.Resize(1280, 720)
		if len(renderer.maps) != 1 {
			t.Errorf("SetDisplacementMap called %d times, want 1", len(renderer.maps))
		}
	})

	t.Run("尺寸变化重新布局", func(t *testing.T) {
		s.Resize(1920, 1080)
		layout := s.carouselSystem.Layout()
		if math.Abs(layout.Width-1536) > 1e-9 {
			t.Errorf("Width = %v, want 1536", layout.Width)
		}
		if math.Abs(layout.RowHeight-(1080-100)/3.0) > 1e-9 {
			t.Errorf("RowHeight = %v", layout.RowHeight)
		}
		last := renderer.maps[len(renderer.maps)-1]
		if last.W != 1920 || last.H != 1080 {
			t.Errorf("displacement map viewport = %v, want 1920x1080", last)
		}

		ids := ecs.GetEntitiesWith1[*components.ThumbnailComponent](s.entityManager)
		thumb, _ := ecs.GetComponent[*components.ThumbnailComponent](s.entityManager, ids[0])
		if thumb.Width != layout.Width || thumb.Height != layout.RowHeight {
			t.Errorf("thumb mask = %vx%v, want %vx%v", thumb.Width, thumb.Height, layout.Width, layout.RowHeight)
		}
	})
}

func TestCarouselSceneToggles(t *testing.T) {
	env, renderer, _ := newTestEnv()
	s := NewCarouselScene(env, testThumbs(2), fakeTexture{512, 512}, 1280, 720)

	t.Run("F键开关位移滤镜", func(t *testing.T) {
		s.ToggleDistortion()
		disp, _ := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID)
		if disp.Enabled {
			t.Error("distortion should be disabled")
		}
		if env.Settings.GetSettings().DistortionEnabled {
			t.Error("setting should follow the toggle")
		}

		s.renderSystem.Draw()
		last := renderer.composites[len(renderer.composites)-1]
		if last != [2]float64{0, 0} {
			t.Errorf("composite strength = %v, want zero when disabled", last)
		}

		s.ToggleDistortion()
		if !disp.Enabled {
			t.Error("distortion should be enabled again")
		}
	})

	t.Run("D键开关贴图叠加", func(t *testing.T) {
		s.ToggleDisplacementMap()
		if !renderer.showMap || !env.Settings.GetSettings().ShowDisplacementMap {
			t.Error("overlay should be shown")
		}
		s.ToggleDisplacementMap()
		if renderer.showMap {
			t.Error("overlay should be hidden")
		}
	})
}

func TestCarouselSceneRestoresSettings(t *testing.T) {
	env, renderer, _ := newTestEnv()
	env.Settings.SetDistortionEnabled(false)
	env.Settings.SetShowDisplacementMap(true)

	s := NewCarouselScene(env, testThumbs(2), fakeTexture{512, 512}, 1280, 720)
	disp, _ := ecs.GetComponent[*components.DisplacementComponent](s.entityManager, s.carouselID)
	if disp.Enabled {
		t.Error("distortion should start disabled")
	}
	if !renderer.showMap {
		t.Error("overlay should start shown")
	}
}

func TestCarouselScenePicker(t *testing.T) {
	tests := []struct {
		name    string
		picker  fakePicker
		wantDir string
		wantHit bool
	}{
		{"选择目录后重新加载", fakePicker{dir: "/photos"}, "/photos", true},
		{"取消不切换", fakePicker{dir: ""}, "", false},
		{"对话框失败不切换", fakePicker{err: errors.New("no display")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, _, _ := newTestEnv()
			env.Picker = tt.picker

			var gotDir string
			hit := false
			env.SceneManager.SetSceneFactory(func(dir string) game.Scene {
				hit = true
				gotDir = dir
				return nil
			})

			s := NewCarouselScene(env, testThumbs(2), fakeTexture{512, 512}, 1280, 720)
			s.openPicker()
			if s.picking == nil {
				t.Fatal("picker should be running")
			}

			deadline := time.Now().Add(2 * time.Second)
			for s.picking != nil && time.Now().Before(deadline) {
				s.pollPicker()
				time.Sleep(time.Millisecond)
			}
			if s.picking != nil {
				t.Fatal("picker result never arrived")
			}

			if hit != tt.wantHit || gotDir != tt.wantDir {
				t.Errorf("factory hit=%v dir=%q, want hit=%v dir=%q", hit, gotDir, tt.wantHit, tt.wantDir)
			}
		})
	}
}

func TestCarouselSceneEmpty(t *testing.T) {
	env, renderer, _ := newTestEnv()
	s := NewCarouselScene(env, nil, fakeTexture{512, 512}, 1280, 720)

	for i := 0; i < 10; i++ {
		s.step(1.0 / 60)
	}
	s.renderSystem.Draw()
	if len(renderer.nodes) != 0 {
		t.Errorf("empty carousel drew %d nodes", len(renderer.nodes))
	}
}
