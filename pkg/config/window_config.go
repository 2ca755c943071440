package config

// 窗口配置常量
const (
	// WindowTitle 窗口标题
	WindowTitle = "scrollreel"

	// WindowWidth 默认窗口宽度（像素）
	WindowWidth = 1280

	// WindowHeight 默认窗口高度（像素）
	WindowHeight = 720

	// BackgroundColorHex 画布背景色
	BackgroundColorHex = "#1099bb"

	// DefaultImageCount 内置图片数量（assets/images/1.png ~ 7.png）
	DefaultImageCount = 7
)
