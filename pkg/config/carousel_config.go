package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/embedded"
	"github.com/decker502/scrollreel/pkg/tween"
	"gopkg.in/yaml.v3"
)

// DefaultCarouselConfigPath 默认配置文件（嵌入资源）
const DefaultCarouselConfigPath = "assets/config/carousel.yaml"

// CarouselConfig 轮播配置
//
// 配置文件位置: assets/config/carousel.yaml
// 文件中未出现的字段保持 DefaultCarouselConfig() 中的默认值。
type CarouselConfig struct {
	// Version 配置格式版本
	Version int `yaml:"version"`

	// Images 图片路径列表，按显示顺序排列
	// 以 "assets/" 开头的路径从嵌入资源读取，其余从文件系统读取
	Images []string `yaml:"images"`

	Displacement DisplacementConfig `yaml:"displacement"`
	Layout       LayoutConfig       `yaml:"layout"`
	Scroll       ScrollConfig       `yaml:"scroll"`
	Hover        HoverConfig        `yaml:"hover"`
	Loader       LoaderConfig       `yaml:"loader"`
	Window       WindowConfig       `yaml:"window"`
}

// DisplacementConfig 位移滤镜配置
type DisplacementConfig struct {
	// Map 位移贴图路径（R/G 通道编码偏移）
	Map string `yaml:"map"`

	// Shader Kage 着色器路径
	Shader string `yaml:"shader"`

	// Gain 滚动速度到滤镜强度的倍数
	Gain float64 `yaml:"gain"`

	// Enabled 是否启用扭曲（运行时可用 F 键切换）
	Enabled bool `yaml:"enabled"`
}

// LayoutConfig 布局配置
type LayoutConfig struct {
	// WidthRatio 缩略图宽度占视口宽度的比例
	WidthRatio float64 `yaml:"widthRatio"`

	// Margin 行间距（像素）
	Margin float64 `yaml:"margin"`

	// RowsVisible 视口内同时可见的行数
	RowsVisible int `yaml:"rowsVisible"`
}

// ScrollConfig 滚动配置
type ScrollConfig struct {
	// Sensitivity 手势位移除数：target = deltaY / sensitivity
	Sensitivity float64 `yaml:"sensitivity"`

	// Follow 每帧跟随系数
	Follow float64 `yaml:"follow"`

	// Decay 每帧衰减系数
	Decay float64 `yaml:"decay"`

	// Easing 跟随公式: "literal" 或 "toward_target"
	Easing string `yaml:"easing"`

	// Tolerance 累计位移达到该值（像素）后才触发一次目标更新
	Tolerance float64 `yaml:"tolerance"`

	// WheelPixelsPerNotch 滚轮一格对应的像素位移
	WheelPixelsPerNotch float64 `yaml:"wheelPixelsPerNotch"`
}

// HoverConfig 悬停缩放配置
type HoverConfig struct {
	// Scale 悬停时的内部缩放
	Scale float64 `yaml:"scale"`

	// Duration 补间时长（秒）
	Duration float64 `yaml:"duration"`

	// Ease 缓动名称，如 "power1.out"
	Ease string `yaml:"ease"`
}

// LoaderConfig 资源加载配置
type LoaderConfig struct {
	// Timeout 整体加载超时，如 "10s"
	Timeout time.Duration `yaml:"timeout"`

	// MaxTextureSize 纹理最大边长，超过时先缩小再上传
	MaxTextureSize int `yaml:"maxTextureSize"`

	// Concurrency 并发解码数
	Concurrency int `yaml:"concurrency"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// DefaultCarouselConfig 返回内置默认配置
func DefaultCarouselConfig() *CarouselConfig {
	images := make([]string, 0, DefaultImageCount)
	for i := 1; i <= DefaultImageCount; i++ {
		images = append(images, fmt.Sprintf("assets/images/%d.png", i))
	}

	return &CarouselConfig{
		Version: 1,
		Images:  images,
		Displacement: DisplacementConfig{
			Map:     "assets/images/displacement.png",
			Shader:  "assets/shaders/displacement.kage",
			Gain:    3,
			Enabled: true,
		},
		Layout: LayoutConfig{
			WidthRatio:  0.8,
			Margin:      50,
			RowsVisible: 3,
		},
		Scroll: ScrollConfig{
			Sensitivity:         3,
			Follow:              0.1,
			Decay:               0.9,
			Easing:              string(carousel.EasingLiteral),
			Tolerance:           20,
			WheelPixelsPerNotch: 100,
		},
		Hover: HoverConfig{
			Scale:    1.1,
			Duration: 1,
			Ease:     "power1.out",
		},
		Loader: LoaderConfig{
			Timeout:        10 * time.Second,
			MaxTextureSize: 4096,
			Concurrency:    4,
		},
		Window: WindowConfig{
			Title:      WindowTitle,
			Width:      WindowWidth,
			Height:     WindowHeight,
			Background: BackgroundColorHex,
		},
	}
}

// LoadCarouselConfig 加载轮播配置
//
// 参数:
//   - path: 配置文件路径；为空时直接返回默认配置。
//     路径存在于嵌入资源中时优先读取嵌入资源，否则读取文件系统。
//
// 返回:
//   - *CarouselConfig: 覆盖在默认值之上的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadCarouselConfig(path string) (*CarouselConfig, error) {
	cfg := DefaultCarouselConfig()
	if path == "" {
		return cfg, nil
	}

	var (
		data []byte
		err  error
	)
	if embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read carousel config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid carousel config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 空图片列表是合法的（仅绘制背景）。
func (c *CarouselConfig) Validate() error {
	for i, p := range c.Images {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("image %d has empty path", i)
		}
	}

	if c.Layout.WidthRatio <= 0 || c.Layout.WidthRatio > 1 {
		return fmt.Errorf("layout.widthRatio must be in (0, 1], got %v", c.Layout.WidthRatio)
	}
	if c.Layout.Margin < 0 {
		return fmt.Errorf("layout.margin must be >= 0, got %v", c.Layout.Margin)
	}
	if c.Layout.RowsVisible <= 0 {
		return fmt.Errorf("layout.rowsVisible must be > 0, got %d", c.Layout.RowsVisible)
	}

	if err := c.ScrollParams().Validate(); err != nil {
		return fmt.Errorf("scroll: %w", err)
	}
	if c.Scroll.Tolerance < 0 {
		return fmt.Errorf("scroll.tolerance must be >= 0, got %v", c.Scroll.Tolerance)
	}
	if c.Scroll.WheelPixelsPerNotch <= 0 {
		return fmt.Errorf("scroll.wheelPixelsPerNotch must be > 0, got %v", c.Scroll.WheelPixelsPerNotch)
	}

	if c.Hover.Scale <= 0 {
		return fmt.Errorf("hover.scale must be > 0, got %v", c.Hover.Scale)
	}
	if c.Hover.Duration < 0 {
		return fmt.Errorf("hover.duration must be >= 0, got %v", c.Hover.Duration)
	}
	if _, err := tween.ByName(c.Hover.Ease); err != nil {
		return fmt.Errorf("hover.ease: %w", err)
	}

	if c.Loader.Timeout <= 0 {
		return fmt.Errorf("loader.timeout must be > 0, got %v", c.Loader.Timeout)
	}
	if c.Loader.MaxTextureSize <= 0 {
		return fmt.Errorf("loader.maxTextureSize must be > 0, got %d", c.Loader.MaxTextureSize)
	}
	if c.Loader.Concurrency <= 0 {
		return fmt.Errorf("loader.concurrency must be > 0, got %d", c.Loader.Concurrency)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := ParseHexColor(c.Window.Background); err != nil {
		return fmt.Errorf("window.background: %w", err)
	}

	return nil
}

// ScrollParams 转换为 carousel 包的滚动参数
func (c *CarouselConfig) ScrollParams() carousel.ScrollParams {
	return carousel.ScrollParams{
		Follow:           c.Scroll.Follow,
		Decay:            c.Scroll.Decay,
		Sensitivity:      c.Scroll.Sensitivity,
		DisplacementGain: c.Displacement.Gain,
		Mode:             carousel.EasingMode(c.Scroll.Easing),
	}
}

// LayoutParams 转换为 carousel 包的布局参数
func (c *CarouselConfig) LayoutParams() carousel.LayoutParams {
	return carousel.LayoutParams{
		WidthRatio:  c.Layout.WidthRatio,
		Margin:      c.Layout.Margin,
		RowsVisible: c.Layout.RowsVisible,
	}
}

// BackgroundColor 返回解析后的背景色，格式错误时回退到默认背景色
func (c *CarouselConfig) BackgroundColor() color.RGBA {
	if col, err := ParseHexColor(c.Window.Background); err == nil {
		return col
	}
	col, _ := ParseHexColor(BackgroundColorHex)
	return col
}

// ParseHexColor 解析 "#rrggbb" 或 "rrggbb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
