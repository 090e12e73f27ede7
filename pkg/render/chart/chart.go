// Package chart draws the performance bar chart as a PNG image.
//
// Drawing is done in pure Go with [github.com/fogleman/gg] and the Go
// Regular font, so charts look the same on every machine.
//
//	png, err := chart.PNG([]chart.Bar{{Label: "Kahn", Value: 0.012}}, chart.DefaultOptions())
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Bar is one bar of the chart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Options configures the chart.
type Options struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`

	// ValueFormat is the fmt verb used for the label above each bar.
	ValueFormat string `json:"value_format"`
}

// DefaultOptions returns the settings of the performance comparison chart.
func DefaultOptions() Options {
	return Options{
		Width:       1200,
		Height:      750,
		Title:       "Performance Comparison of Topological Sort Algorithms",
		XLabel:      "Algorithm",
		YLabel:      "Execution Time (ms)",
		ValueFormat: "%.3f",
	}
}

// ErrNoBars is returned when there is nothing to draw.
var ErrNoBars = errors.New("chart: no bars")

const (
	marginLeft   = 110.0
	marginRight  = 40.0
	marginTop    = 80.0
	marginBottom = 90.0
	barFill      = "#1f77b4"
	yTicks       = 5
)

// Draw renders bars into an image. Negative values are drawn as zero.
func Draw(bars []Bar, opts Options) (image.Image, error) {
	dc, err := draw(bars, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG renders bars and encodes the result as PNG.
func PNG(bars []Bar, opts Options) ([]byte, error) {
	dc, err := draw(bars, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func draw(bars []Bar, opts Options) (*gg.Context, error) {
	if len(bars) == 0 {
		return nil, ErrNoBars
	}
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.ValueFormat == "" {
		opts.ValueFormat = def.ValueFormat
	}

	f, err := goRegular()
	if err != nil {
		return nil, err
	}
	faces := newFaces(f)

	w, h := float64(opts.Width), float64(opts.Height)
	plotW := w - marginLeft - marginRight
	plotH := h - marginTop - marginBottom
	if plotW <= 0 || plotH <= 0 {
		return nil, fmt.Errorf("chart: %dx%d is too small", opts.Width, opts.Height)
	}

	top := 0.0
	for _, b := range bars {
		top = max(top, b.Value)
	}
	top = niceCeil(top)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Title and axis labels.
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(faces.title)
	dc.DrawStringAnchored(opts.Title, w/2, marginTop/2, 0.5, 0.5)
	dc.SetFontFace(faces.label)
	dc.DrawStringAnchored(opts.XLabel, marginLeft+plotW/2, h-marginBottom/3, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), marginLeft/4, marginTop+plotH/2)
	dc.DrawStringAnchored(opts.YLabel, marginLeft/4, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()

	// Y ticks and grid.
	dc.SetFontFace(faces.tick)
	baseY := marginTop + plotH
	for i := 0; i <= yTicks; i++ {
		v := top * float64(i) / yTicks
		y := baseY - plotH*float64(i)/yTicks
		dc.SetRGB(0.9, 0.9, 0.9)
		dc.SetLineWidth(1)
		dc.DrawLine(marginLeft, y, marginLeft+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(formatTick(v, top), marginLeft-10, y, 1, 0.5)
	}

	// Bars, value labels and category labels.
	slot := plotW / float64(len(bars))
	barW := slot * 0.6
	for i, b := range bars {
		value := max(b.Value, 0)
		barH := 0.0
		if top > 0 {
			barH = plotH * value / top
		}
		x := marginLeft + slot*float64(i) + (slot-barW)/2

		dc.SetHexColor(barFill)
		dc.DrawRectangle(x, baseY-barH, barW, barH)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.SetFontFace(faces.tick)
		dc.DrawStringAnchored(fmt.Sprintf(opts.ValueFormat, b.Value), x+barW/2, baseY-barH-8, 0.5, 0)
		dc.SetFontFace(faces.label)
		dc.DrawStringAnchored(b.Label, x+barW/2, baseY+22, 0.5, 0.5)
	}

	// Axes.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(marginLeft, marginTop, marginLeft, baseY)
	dc.DrawLine(marginLeft, baseY, marginLeft+plotW, baseY)
	dc.Stroke()

	return dc, nil
}

// niceCeil rounds v up to 1, 2, 2.5 or 5 times a power of ten, leaving some
// headroom for the value labels. Zero stays zero.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	v *= 1.1
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if m*exp >= v {
			return m * exp
		}
	}
	return 10 * exp
}

func formatTick(v, top float64) string {
	switch {
	case top == 0:
		return "0"
	case top < 0.01:
		return fmt.Sprintf("%.4f", v)
	case top < 1:
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

var goRegular = sync.OnceValues(func() (*truetype.Font, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("chart: parse font: %w", err)
	}
	return f, nil
})

// faceSet holds the faces of one drawing. Faces cache glyphs and must not be
// shared between goroutines.
type faceSet struct {
	title, label, tick font.Face
}

func newFaces(f *truetype.Font) faceSet {
	return faceSet{
		title: truetype.NewFace(f, &truetype.Options{Size: 22}),
		label: truetype.NewFace(f, &truetype.Options{Size: 16}),
		tick:  truetype.NewFace(f, &truetype.Options{Size: 13}),
	}
}
