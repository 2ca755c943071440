// reeltrace 无窗口模拟轮播滚动，输出逐帧 CSV 和速度统计
//
// 用法:
//
//	go run ./cmd/reeltrace --frames 240 --delta 100 --out trace.csv
//	go run ./cmd/reeltrace --easing toward_target --every 30
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/decker502/scrollreel/pkg/config"
)

var (
	frames     = flag.Int("frames", 240, "模拟帧数")
	delta      = flag.Float64("delta", 100, "每次输入的手势位移（像素）")
	every      = flag.Int("every", 0, "每隔多少帧重复输入，0 表示只输入一次")
	width      = flag.Int("width", config.WindowWidth, "视口宽度")
	height     = flag.Int("height", config.WindowHeight, "视口高度")
	images     = flag.Int("images", config.DefaultImageCount, "缩略图数量")
	easing     = flag.String("easing", "", "跟随公式: literal 或 toward_target（默认取配置）")
	configPath = flag.String("config", "", "轮播配置文件路径")
	out        = flag.String("out", "", "CSV 输出路径，为空输出到标准输出")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadCarouselConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	params := cfg.ScrollParams()
	if *easing != "" {
		params.Mode = carousel.EasingMode(*easing)
	}

	rows, err := Trace(TraceOptions{
		Frames:   *frames,
		Delta:    *delta,
		Every:    *every,
		Images:   *images,
		Viewport: carousel.Size{W: float64(*width), H: float64(*height)},
	}, cfg.LayoutParams(), params)
	if err != nil {
		log.Fatalf("模拟失败: %v", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("创建输出文件失败: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := WriteCSV(w, rows); err != nil {
		log.Fatalf("%v", err)
	}

	s := Summarize(rows, params)
	fmt.Fprintf(os.Stderr, "frames=%d mode=%s mean=%.4f stddev=%.4f final=%.4f fixed_point=%.4f converges=%v\n",
		s.Frames, params.Mode, s.Mean, s.StdDev, s.Final, s.FixedPoint, s.Converges)
}
