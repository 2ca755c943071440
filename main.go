package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/scrollreel/pkg/app"
	"github.com/decker502/scrollreel/pkg/config"
	"github.com/decker502/scrollreel/pkg/embedded"
	"github.com/decker502/scrollreel/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", config.DefaultCarouselConfigPath, "轮播配置文件路径（assets/ 开头时读取内置资源）")
	dir        = flag.String("dir", "", "启动时加载的图片目录")
	pick       = flag.Bool("pick", false, "启动前用系统对话框选择图片目录")
	fullscreen = flag.Bool("fullscreen", false, "以全屏启动")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS)

	picker := scenes.ZenityPicker{}
	startDir := *dir
	if *pick && startDir == "" {
		chosen, err := picker.PickFolder("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		// 取消对话框时使用内置图片
		startDir = chosen
	}

	viewer, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Dir:        startDir,
		Fullscreen: *fullscreen,
		Picker:     picker,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	window := viewer.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(viewer.StartFullscreen())

	err = ebiten.RunGame(viewer)
	viewer.SaveSettings()

	if err := app.ClassifyRunError(viewer.Started(), err); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
