package main

import (
	"fmt"
	"io"

	"github.com/decker502/scrollreel/pkg/carousel"
	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// TraceOptions 无窗口模拟参数
type TraceOptions struct {
	Frames   int     // 模拟帧数
	Delta    float64 // 每次输入的手势位移（像素，滚轮一格为 100）
	Every    int     // 每隔多少帧输入一次，0 表示只在第 0 帧输入
	Images   int     // 缩略图数量
	Viewport carousel.Size
}

// TraceRow 一帧的记录
type TraceRow struct {
	Tick         int     `csv:"tick"`
	Elapsed      float64 `csv:"elapsed"`
	Target       float64 `csv:"target"`
	Current      float64 `csv:"current"`
	Direction    float64 `csv:"direction"`
	Displacement float64 `csv:"displacement"`
	FirstY       float64 `csv:"first_y"`
}

// TraceSummary 滚动速度统计
type TraceSummary struct {
	Frames     int
	Mean       float64
	StdDev     float64
	Final      float64
	FixedPoint float64
	Converges  bool
}

// Trace 按固定 tick 推进轮播并记录每一帧
func Trace(opts TraceOptions, layoutParams carousel.LayoutParams, params carousel.ScrollParams) ([]TraceRow, error) {
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	layout := carousel.NewLayout(opts.Viewport, opts.Images, layoutParams)
	frame := carousel.NewFrame(layout)
	rows := make([]TraceRow, 0, opts.Frames)

	const dt = 1.0 / 60
	for i := 0; i < opts.Frames; i++ {
		if i == 0 || (opts.Every > 0 && i%opts.Every == 0) {
			frame.Scroll.Target = params.TargetFromDelta(opts.Delta)
		}
		frame = carousel.Update(frame, layout, params, dt)

		row := TraceRow{
			Tick:         frame.Ticks,
			Elapsed:      frame.Elapsed,
			Target:       frame.Scroll.Target,
			Current:      frame.Scroll.Current,
			Direction:    frame.Scroll.Direction,
			Displacement: frame.Displacement,
		}
		if len(frame.Positions) > 0 {
			row.FirstY = frame.Positions[0]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Summarize 统计滚动速度
func Summarize(rows []TraceRow, params carousel.ScrollParams) TraceSummary {
	s := TraceSummary{Frames: len(rows)}
	if len(rows) == 0 {
		return s
	}

	current := make([]float64, len(rows))
	for i, r := range rows {
		current[i] = r.Current
	}
	s.Mean, s.StdDev = stat.MeanStdDev(current, nil)
	last := rows[len(rows)-1]
	s.Final = last.Current
	s.FixedPoint, s.Converges = carousel.FixedPoint(last.Target, params)
	return s
}

// WriteCSV 输出带表头的 CSV
func WriteCSV(w io.Writer, rows []TraceRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}
