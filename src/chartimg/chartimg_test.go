package chartimg

import (
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/StreamPlot/src/streamplot"
)

func TestSurfaceProducesFrame(t *testing.T) {
	s, err := New(320, 240)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("frame is %dx%d, want 320x240", b.Dx(), b.Dy())
	}
	r, g, bl, _ := img.At(2, 2).RGBA()
	if r>>8 != 18 || g>>8 != 18 || bl>>8 != 18 {
		t.Fatalf("background pixel (%d,%d,%d), want (18,18,18)", r>>8, g>>8, bl>>8)
	}
}

func TestSurfaceResize(t *testing.T) {
	s, err := New(100, 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SetSize(200, 150)
	s.Clear()
	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image after resize: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("resized frame is %dx%d, want 200x150", b.Dx(), b.Dy())
	}
	if w, h := s.Size(); w != 200 || h != 150 {
		t.Fatalf("Size reports %vx%v", w, h)
	}
}

func TestSurfaceRendersPlotFrame(t *testing.T) {
	s, err := New(200, 200)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	series := streamplot.NewSeries()
	series.Style.Color = drawing.Color{R: 255, A: 255}
	series.Style.LineWidth = 3
	for i := 0; i <= 10; i++ {
		series.Data = append(series.Data, streamplot.Sample{X: float64(i), Y: float64(i)})
	}
	p := streamplot.New(s, s.Size, map[string]*streamplot.Series{"ramp": series}, streamplot.DefaultOptions(), nil)
	defer p.Close()
	p.Render()

	img, err := s.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	// The diagonal line must have put non-background ink somewhere.
	bg := uint32(18)
	inked := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !inked; y += 4 {
		for x := b.Min.X; x < b.Max.X; x += 4 {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r>>8 != bg || g>>8 != bg || bl>>8 != bg {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Fatalf("rendered frame is uniformly background")
	}
}

func TestBlank(t *testing.T) {
	img := Blank(64, 32)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("blank frame is %dx%d, want 64x32", b.Dx(), b.Dy())
	}
}
