package main

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/StreamPlot/cmd/plotviewer/uihelpers"
	"github.com/iafilius/StreamPlot/src/chartimg"
	"github.com/iafilius/StreamPlot/src/streamplot"
)

// plotWidget hosts a streamplot.Plot inside a Fyne widget: it displays the
// rendered frames and translates drag/scroll/hover events into the engine's
// gesture calls.
type plotWidget struct {
	widget.BaseWidget
	plot    *streamplot.Plot
	surface *chartimg.Surface
	img     *canvas.Image

	dragging bool
	lastPos  fyne.Position

	// hintFn returns the readout stamped onto each frame; empty disables it.
	hintFn func() string
	// onHover receives the inverse-transformed pointer position while the
	// mouse is over the widget.
	onHover func(pos fyne.Position, dp streamplot.DataPosition, ok bool)
	// onTap receives a click that was not part of a drag.
	onTap func(pos fyne.Position, dp streamplot.DataPosition, ok bool)
}

var _ fyne.Draggable = (*plotWidget)(nil)
var _ fyne.Scrollable = (*plotWidget)(nil)
var _ fyne.Tappable = (*plotWidget)(nil)
var _ desktop.Hoverable = (*plotWidget)(nil)

func newPlotWidget(p *streamplot.Plot, s *chartimg.Surface) *plotWidget {
	w := &plotWidget{plot: p, surface: s}
	w.img = canvas.NewImageFromImage(chartimg.Blank(640, 384))
	w.img.FillMode = canvas.ImageFillContain
	w.img.SetMinSize(fyne.NewSize(640, 384))
	w.ExtendBaseWidget(w)
	return w
}

func (w *plotWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.img)
}

func (w *plotWidget) Resize(size fyne.Size) {
	w.BaseWidget.Resize(size)
	if size.Width > 0 && size.Height > 0 {
		w.surface.SetSize(int(size.Width), int(size.Height))
		w.plot.Resize(float64(size.Width), float64(size.Height))
	}
}

// refreshFrame pulls the latest completed frame from the surface onto the
// image canvas. Must run on the UI thread.
func (w *plotWidget) refreshFrame() {
	img, err := w.surface.Image()
	if err != nil {
		return
	}
	if w.hintFn != nil {
		if text := w.hintFn(); text != "" {
			img = drawHint(img, text)
		}
	}
	w.img.Image = img
	w.img.Refresh()
}

func (w *plotWidget) currentFrame() image.Image {
	return w.img.Image
}

func (w *plotWidget) Dragged(ev *fyne.DragEvent) {
	if !w.dragging {
		w.dragging = true
		w.plot.PointerDown(float64(ev.Position.X-ev.Dragged.DX), float64(ev.Position.Y-ev.Dragged.DY))
	}
	w.lastPos = ev.Position
	w.plot.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

func (w *plotWidget) DragEnd() {
	if !w.dragging {
		return
	}
	w.dragging = false
	w.plot.PointerUp(float64(w.lastPos.X), float64(w.lastPos.Y))
}

func (w *plotWidget) Scrolled(ev *fyne.ScrollEvent) {
	factor := uihelpers.ZoomFactorForScroll(ev.Scrolled.DY)
	if factor == 1 {
		return
	}
	w.lastPos = ev.Position
	w.plot.Wheel(float64(ev.Position.X), float64(ev.Position.Y), factor)
}

func (w *plotWidget) Tapped(ev *fyne.PointEvent) {
	if w.onTap == nil {
		return
	}
	dp, ok := w.plot.QueryDataPosition(float64(ev.Position.X), float64(ev.Position.Y))
	w.onTap(ev.Position, dp, ok)
}

func (w *plotWidget) MouseIn(ev *desktop.MouseEvent) { w.MouseMoved(ev) }

func (w *plotWidget) MouseMoved(ev *desktop.MouseEvent) {
	w.lastPos = ev.Position
	if w.onHover == nil {
		return
	}
	dp, ok := w.plot.QueryDataPosition(float64(ev.Position.X), float64(ev.Position.Y))
	w.onHover(ev.Position, dp, ok)
}

func (w *plotWidget) MouseOut() {
	w.plot.PointerLeave()
	w.dragging = false
	if w.onHover != nil {
		w.onHover(fyne.Position{}, streamplot.DataPosition{}, false)
	}
}
