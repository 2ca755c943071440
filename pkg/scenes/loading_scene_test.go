package scenes

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/game"
)

// writePNG 在 dir 下写入一张 w x h 的纯色 PNG
func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

// waitForSwitch 反复 Update 直到当前场景不再是 s
func waitForSwitch(t *testing.T, s *LoadingScene) error {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := s.Update(1.0 / 60); err != nil {
			return err
		}
		if s.env.SceneManager.GetCurrentScene() != game.Scene(s) {
			return nil
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("loading never finished")
	return nil
}

func TestImagePaths(t *testing.T) {
	env, _, _ := newTestEnv()

	t.Run("空目录使用配置列表", func(t *testing.T) {
		paths, err := ImagePaths(env.Config, "")
		if err != nil {
			t.Fatalf("ImagePaths error: %v", err)
		}
		if len(paths) != len(env.Config.Images) || paths[0] != env.Config.Images[0] {
			t.Errorf("paths = %v, want config images", paths)
		}
		// 返回副本
		paths[0] = "changed"
		if env.Config.Images[0] == "changed" {
			t.Error("ImagePaths should not alias the config slice")
		}
	})

	t.Run("目录按文件名排序", func(t *testing.T) {
		dir := t.TempDir()
		writePNG(t, dir, "b.png", 4, 4)
		writePNG(t, dir, "a.png", 4, 4)
		if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		paths, err := ImagePaths(env.Config, dir)
		if err != nil {
			t.Fatalf("ImagePaths error: %v", err)
		}
		if len(paths) != 2 || filepath.Base(paths[0]) != "a.png" || filepath.Base(paths[1]) != "b.png" {
			t.Errorf("paths = %v, want [a.png b.png]", paths)
		}
	})

	t.Run("目录不存在", func(t *testing.T) {
		_, err := ImagePaths(env.Config, filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, carousel.ErrAssetLoad) {
			t.Errorf("err = %v, want ErrAssetLoad", err)
		}
	})
}

func TestLoadingSceneSuccess(t *testing.T) {
	env, renderer, _ := newTestEnv()
	dir := t.TempDir()
	writePNG(t, dir, "1.png", 40, 30)
	writePNG(t, dir, "2.png", 30, 40)
	env.Config.Displacement.Map = writePNG(t, t.TempDir(), "map.png", 16, 16)

	s := NewLoadingScene(env, dir, nil)
	env.SceneManager.SwitchTo(s)
	if err := waitForSwitch(t, s); err != nil {
		t.Fatalf("loading failed: %v", err)
	}

	next, ok := env.SceneManager.GetCurrentScene().(*CarouselScene)
	if !ok {
		t.Fatalf("current scene = %T, want *CarouselScene", env.SceneManager.GetCurrentScene())
	}
	if next.carouselSystem.Layout().Count != 2 {
		t.Errorf("Count = %d, want 2", next.carouselSystem.Layout().Count)
	}
	// 两张图片加一张位移贴图
	if renderer.uploads != 3 {
		t.Errorf("uploads = %d, want 3", renderer.uploads)
	}
	if env.Settings.GetSettings().LastDirectory != dir {
		t.Errorf("LastDirectory = %q, want %q", env.Settings.GetSettings().LastDirectory, dir)
	}
	// 首次加载没有旧遮罩
	if renderer.releases != 0 {
		t.Errorf("releases = %d, want 0", renderer.releases)
	}
}

func TestLoadingSceneReloadReleasesThumbnails(t *testing.T) {
	env, renderer, _ := newTestEnv()
	previous := NewCarouselScene(env, testThumbs(2), fakeTexture{512, 512}, 1280, 720)
	dir := t.TempDir()
	writePNG(t, dir, "1.png", 40, 30)
	env.Config.Displacement.Map = writePNG(t, t.TempDir(), "map.png", 16, 16)

	s := NewLoadingScene(env, dir, previous)
	env.SceneManager.SwitchTo(s)
	if err := waitForSwitch(t, s); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if _, ok := env.SceneManager.GetCurrentScene().(*CarouselScene); !ok || env.SceneManager.GetCurrentScene() == game.Scene(previous) {
		t.Fatalf("current scene = %T, want new *CarouselScene", env.SceneManager.GetCurrentScene())
	}
	if renderer.releases != 1 {
		t.Errorf("releases = %d, want 1", renderer.releases)
	}
}

func TestLoadingSceneFailure(t *testing.T) {
	t.Run("启动失败返回错误", func(t *testing.T) {
		env, _, _ := newTestEnv()
		env.Config.Images = []string{filepath.Join(t.TempDir(), "missing.png")}

		s := NewLoadingScene(env, "", nil)
		env.SceneManager.SwitchTo(s)
		err := waitForSwitch(t, s)
		if !errors.Is(err, carousel.ErrAssetLoad) {
			t.Errorf("err = %v, want ErrAssetLoad", err)
		}
	})

	t.Run("重新加载失败回到上一个场景", func(t *testing.T) {
		env, renderer, _ := newTestEnv()
		previous := NewCarouselScene(env, testThumbs(2), fakeTexture{512, 512}, 1280, 720)

		s := NewLoadingScene(env, filepath.Join(t.TempDir(), "missing"), previous)
		env.SceneManager.SwitchTo(s)
		if err := waitForSwitch(t, s); err != nil {
			t.Fatalf("reload failure should not be fatal: %v", err)
		}
		if env.SceneManager.GetCurrentScene() != game.Scene(previous) {
			t.Errorf("current scene = %T, want previous carousel", env.SceneManager.GetCurrentScene())
		}
		// 上一个场景继续使用原来的遮罩
		if renderer.releases != 0 {
			t.Errorf("releases = %d, want 0", renderer.releases)
		}
	})

	t.Run("位移贴图损坏整体失败", func(t *testing.T) {
		env, _, _ := newTestEnv()
		dir := t.TempDir()
		writePNG(t, dir, "1.png", 8, 8)
		bad := filepath.Join(t.TempDir(), "map.png")
		if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
			t.Fatal(err)
		}
		env.Config.Displacement.Map = bad

		s := NewLoadingScene(env, dir, nil)
		env.SceneManager.SwitchTo(s)
		if err := waitForSwitch(t, s); !errors.Is(err, carousel.ErrAssetLoad) {
			t.Errorf("err = %v, want ErrAssetLoad", err)
		}
	})
}
