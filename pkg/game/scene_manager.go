package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于为指定图片目录创建加载场景，避免循环依赖
// dir 为空表示使用配置中的图片列表
type SceneFactory func(dir string) Scene

// SceneManager manages the program's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景

	width, height int // 最近一次 Layout 的尺寸
	resized       bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene receives the current size before its first Update.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.resized = sm.width > 0 && sm.height > 0
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadDirectory 为指定目录创建新场景并切换
// dir: 图片目录，为空表示配置中的图片列表
func (sm *SceneManager) LoadDirectory(dir string) {
	log.Printf("[SceneManager] 加载图片目录: %q", dir)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(dir)
	if newScene != nil {
		sm.SwitchTo(newScene)
		log.Printf("[SceneManager] 成功切换场景: %q", dir)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建场景: %q", dir)
	}
}

// SetSize 记录画布尺寸，尺寸变化时在下一次 Update 前通知场景
func (sm *SceneManager) SetSize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	sm.resized = true
}

// Size 最近一次记录的画布尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	if sm.resized {
		sm.resized = false
		if r, ok := sm.currentScene.(Resizable); ok {
			r.Resize(sm.width, sm.height)
		}
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
