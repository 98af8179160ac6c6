// Package chartimg implements the streamplot Canvas on top of go-chart's
// raster PNG renderer, producing an image.Image per frame for display or
// export.
package chartimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/StreamPlot/src/streamplot"
)

// Surface is a reusable raster drawing surface. Clear begins a fresh frame;
// Image returns the last completed frame. Safe for use by the plot's
// background tasks alongside a UI goroutine.
type Surface struct {
	mu      sync.Mutex
	w, h    int
	bg      drawing.Color
	r       chart.Renderer
	font    *truetype.Font
	lastErr error
}

var _ streamplot.Canvas = (*Surface)(nil)

// New returns a surface of the given pixel size with the viewer's dark
// background.
func New(w, h int) (*Surface, error) {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("chartimg: load default font: %w", err)
	}
	s := &Surface{
		w:    w,
		h:    h,
		bg:   drawing.Color{R: 18, G: 18, B: 18, A: 255},
		font: font,
	}
	s.Clear()
	return s, nil
}

// SetBackground changes the frame background color applied on Clear.
func (s *Surface) SetBackground(c drawing.Color) {
	s.mu.Lock()
	s.bg = c
	s.mu.Unlock()
}

// SetSize changes the pixel dimensions; the next Clear allocates a frame at
// the new size.
func (s *Surface) SetSize(w, h int) {
	s.mu.Lock()
	if w > 0 {
		s.w = w
	}
	if h > 0 {
		s.h = h
	}
	s.mu.Unlock()
}

// Size reports the current pixel dimensions.
func (s *Surface) Size() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.w), float64(s.h)
}

// Image renders the current frame to PNG and decodes it back, the same
// round-trip the go-chart based viewers use.
func (s *Surface) Image() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil {
		return nil, s.lastErr
	}
	if s.r == nil {
		return nil, fmt.Errorf("chartimg: no frame rendered")
	}
	var buf bytes.Buffer
	if err := s.r.Save(&buf); err != nil {
		return nil, fmt.Errorf("chartimg: save frame: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("chartimg: decode frame: %w", err)
	}
	return img, nil
}

// Blank returns a plain background image at the given size, for hosts that
// need a placeholder before the first frame.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// Clear starts a new frame: a fresh renderer at the current size, filled with
// the background color.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := chart.PNG(s.w, s.h)
	if err != nil {
		s.lastErr = fmt.Errorf("chartimg: new frame: %w", err)
		return
	}
	s.lastErr = nil
	s.r = r
	s.r.SetFillColor(s.bg)
	s.r.MoveTo(0, 0)
	s.r.LineTo(s.w, 0)
	s.r.LineTo(s.w, s.h)
	s.r.LineTo(0, s.h)
	s.r.Close()
	s.r.Fill()
}

func (s *Surface) MoveTo(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return
	}
	s.r.MoveTo(px(x), px(y))
}

func (s *Surface) LineTo(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return
	}
	s.r.LineTo(px(x), px(y))
}

func (s *Surface) ClosePath() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return
	}
	s.r.Close()
}

func (s *Surface) Stroke(st streamplot.StrokeStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return
	}
	s.r.SetStrokeColor(st.Color)
	s.r.SetStrokeWidth(st.Width)
	s.r.Stroke()
}

func (s *Surface) Fill(c drawing.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return
	}
	s.r.SetFillColor(c)
	s.r.Fill()
}

func (s *Surface) Circle(x, y, r float64, c drawing.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil {
		return
	}
	s.r.SetFillColor(c)
	s.r.Circle(r, px(x), px(y))
	s.r.Fill()
}

func (s *Surface) Rect(x, y, w, h float64, c drawing.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rectLocked(x, y, w, h, c)
}

func (s *Surface) rectLocked(x, y, w, h float64, c drawing.Color) {
	if s.r == nil {
		return
	}
	s.r.SetFillColor(c)
	s.r.MoveTo(px(x), px(y))
	s.r.LineTo(px(x+w), px(y))
	s.r.LineTo(px(x+w), px(y+h))
	s.r.LineTo(px(x), px(y+h))
	s.r.Close()
	s.r.Fill()
}

// GradientRect approximates the vertical blend with horizontal bands, enough
// fidelity for fills a few hundred pixels tall.
func (s *Surface) GradientRect(x, y, w, h float64, top, bottom drawing.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil || h <= 0 {
		return
	}
	bands := int(h)
	if bands < 1 {
		bands = 1
	}
	if bands > 24 {
		bands = 24
	}
	bh := h / float64(bands)
	for i := 0; i < bands; i++ {
		t := (float64(i) + 0.5) / float64(bands)
		s.rectLocked(x, y+float64(i)*bh, w, bh, lerp(top, bottom, t))
	}
}

func (s *Surface) Text(body string, x, y float64, c drawing.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r == nil || s.font == nil {
		return
	}
	s.r.SetFont(s.font)
	s.r.SetFontSize(9)
	s.r.SetFontColor(c)
	s.r.Text(body, px(x), px(y))
}

func px(v float64) int { return int(math.Round(v)) }

func lerp(a, b drawing.Color, t float64) drawing.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return drawing.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
