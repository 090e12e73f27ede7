package chart

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestPNG(t *testing.T) {
	bars := []Bar{
		{Label: "Kahn", Value: 0.012},
		{Label: "DFS", Value: 0.018},
		{Label: "BFS", Value: 0.015},
	}
	data, err := PNG(bars, DefaultOptions())
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1200 || b.Dy() != 750 {
		t.Errorf("size = %dx%d, want 1200x750", b.Dx(), b.Dy())
	}
}

func TestDrawDefaults(t *testing.T) {
	img, err := Draw([]Bar{{Label: "only", Value: 0}}, Options{})
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if img.Bounds().Dx() != DefaultOptions().Width {
		t.Errorf("width = %d, want default", img.Bounds().Dx())
	}
}

func TestDrawErrors(t *testing.T) {
	if _, err := Draw(nil, DefaultOptions()); !errors.Is(err, ErrNoBars) {
		t.Errorf("Draw(nil) error = %v, want ErrNoBars", err)
	}
	if _, err := Draw([]Bar{{Label: "a", Value: 1}}, Options{Width: 100, Height: 100}); err == nil {
		t.Error("Draw() on a tiny canvas expected error")
	}
}

func TestNiceCeil(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-1, 0},
		{0.9, 1},
		{1, 2},
		{0.018, 0.02},
		{2.2, 2.5},
		{4, 5},
		{7, 10},
	}
	for _, tt := range tests {
		if got := niceCeil(tt.in); got < tt.want*0.999999 || got > tt.want*1.000001 {
			t.Errorf("niceCeil(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
