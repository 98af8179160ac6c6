package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	png "image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/StreamPlot/cmd/plotviewer/uihelpers"
	"github.com/iafilius/StreamPlot/src/chartimg"
	"github.com/iafilius/StreamPlot/src/streamplot"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	plot    *streamplot.Plot
	surface *chartimg.Surface
	pw      *plotWidget

	filePath string

	// toggles and modes
	followEnabled bool
	normalize     bool
	adjustY       string // "keep" or "auto"
	seriesType    string // "line", "scatter", "bar", "area"
	retainN       int
	showHints     bool

	// widgets
	followChk   *widget.Check
	retainLabel *widget.Label
	statusLabel *widget.Label

	// hover readout; written and read on the UI thread only
	hoverText string

	lastTapPopup *widget.PopUp

	paused atomic.Bool
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func seriesTypeFromName(name string) streamplot.SeriesType {
	switch strings.ToLower(name) {
	case "scatter":
		return streamplot.Scatter
	case "bar":
		return streamplot.Bar
	case "area":
		return streamplot.Area
	default:
		return streamplot.Line
	}
}

func (s *uiState) followOptions() streamplot.FollowOptions {
	adj := streamplot.YKeep
	if s.adjustY == "auto" {
		adj = streamplot.YAuto
	}
	return streamplot.FollowOptions{
		Interval:             time.Second,
		JumpOffsetX:          2,
		AdjustY:              adj,
		DisableOnInteraction: true,
	}
}

func main() {
	var fileFlag string
	var logLevel string
	flag.StringVar(&fileFlag, "file", "", "Path to a CSV of x,y samples to import")
	flag.StringVar(&logLevel, "loglevel", "warn", "Engine log level: debug, info, warn, error")
	flag.Parse()
	streamplot.SetLogLevel(logLevel)

	a := app.NewWithID("com.streamplot.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("StreamPlot Viewer")
	w.Resize(fyne.NewSize(1100, 760))

	state := &uiState{
		app:        a,
		window:     w,
		filePath:   fileFlag,
		adjustY:    "keep",
		seriesType: "line",
		retainN:    2000,
	}
	loadPrefs(state)

	surface, err := chartimg.New(640, 384)
	if err != nil {
		fmt.Fprintf(os.Stderr, "plotviewer: %v\n", err)
		os.Exit(1)
	}
	state.surface = surface

	signal := streamplot.NewSeries()
	signal.Type = seriesTypeFromName(state.seriesType)
	signal.Style.Color = drawing.Color{R: 0x33, G: 0x99, B: 0xff, A: 0xff}
	signal.Style.LineWidth = 1.5
	signal.Axis = streamplot.SecondaryAxis{
		Placements: []streamplot.AxisSide{streamplot.AxisLeft},
		Visible:    true,
		Color:      drawing.Color{R: 0x66, G: 0xaa, B: 0xff, A: 0xff},
		Width:      1,
		TickCount:  5,
		TickLength: 4,
	}

	reference := streamplot.NewSeries()
	reference.Lines = []streamplot.FuncLine{{
		Fn:    func(x float64) float64 { return 3 * math.Sin(x/1.5) },
		Color: drawing.Color{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
		Width: 1,
	}}

	opts := streamplot.DefaultOptions()
	opts.Follow = state.followOptions()
	opts.NormalizeBounds = state.normalize

	// The starting window matches the 640x384 surface aspect so the first
	// aspect correction leaves it untouched.
	plot := streamplot.New(surface, surface.Size,
		map[string]*streamplot.Series{"signal": signal, "reference": reference},
		opts,
		&streamplot.InitialBounds{
			X:               &streamplot.Range{Min: 0, Max: 20},
			Y:               &streamplot.Range{Min: -6, Max: 6},
			FixedWindowSize: 20,
		})
	state.plot = plot
	plot.SetSeriesDiscardOptions("signal", streamplot.DiscardOptions{
		MaxDataLength: state.retainN,
		Interval:      time.Second,
	})

	pw := newPlotWidget(plot, surface)
	state.pw = pw
	pw.hintFn = func() string {
		if !state.showHints {
			return ""
		}
		if state.hoverText == "" {
			return "drag to pan, scroll to zoom"
		}
		return state.hoverText
	}

	state.statusLabel = widget.NewLabel("")
	pw.onHover = func(pos fyne.Position, dp streamplot.DataPosition, ok bool) {
		if !ok {
			state.hoverText = ""
			state.statusLabel.SetText("")
			return
		}
		text := fmt.Sprintf("x=%s y=%s", uihelpers.FormatCoord(dp.X), uihelpers.FormatCoord(dp.Y))
		state.hoverText = text
		state.statusLabel.SetText(text)
	}
	pw.onTap = func(pos fyne.Position, dp streamplot.DataPosition, ok bool) {
		if state.lastTapPopup != nil {
			state.lastTapPopup.Hide()
			state.lastTapPopup = nil
		}
		if !ok {
			return
		}
		lbl := widget.NewLabel(fmt.Sprintf("x=%s  y=%s", uihelpers.FormatCoord(dp.X), uihelpers.FormatCoord(dp.Y)))
		state.lastTapPopup = widget.NewPopUp(lbl, w.Canvas())
		state.lastTapPopup.ShowAtPosition(pos)
	}
	plot.OnRender(func() { go fyne.Do(pw.refreshFrame) })

	// top bar controls; callbacks wired after creation as some reference each other
	state.followChk = widget.NewCheck("Follow", nil)
	state.followChk.SetChecked(state.followEnabled)
	normalizeChk := widget.NewCheck("Normalize", nil)
	normalizeChk.SetChecked(state.normalize)
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)
	pauseChk := widget.NewCheck("Pause", nil)

	adjustSelect := widget.NewSelect([]string{"Keep Y", "Auto Y"}, nil)
	if state.adjustY == "auto" {
		adjustSelect.Selected = "Auto Y"
	} else {
		adjustSelect.Selected = "Keep Y"
	}
	typeSelect := widget.NewSelect([]string{"Line", "Scatter", "Bar", "Area"}, nil)
	switch state.seriesType {
	case "scatter":
		typeSelect.Selected = "Scatter"
	case "bar":
		typeSelect.Selected = "Bar"
	case "area":
		typeSelect.Selected = "Area"
	default:
		typeSelect.Selected = "Line"
	}

	// Retain control: - [label] +
	state.retainLabel = widget.NewLabel(fmt.Sprintf("%d", state.retainN))
	applyRetain := func(n int) {
		if n == state.retainN {
			return
		}
		state.retainN = n
		state.retainLabel.SetText(fmt.Sprintf("%d", n))
		savePrefs(state)
		state.plot.SetSeriesDiscardOptions("signal", streamplot.DiscardOptions{
			MaxDataLength: n,
			Interval:      time.Second,
		})
	}
	decR := widget.NewButton("-", func() { applyRetain(uihelpers.ClampRetain(state.retainN, -500)) })
	incR := widget.NewButton("+", func() { applyRetain(uihelpers.ClampRetain(state.retainN, 500)) })

	fitBtn := widget.NewButton("Fit", func() { state.plot.FitToView() })
	resetBtn := widget.NewButton("Reset", func() { state.plot.ResetView() })

	state.followChk.OnChanged = func(b bool) {
		state.followEnabled = b
		savePrefs(state)
		if b {
			state.plot.StartFollowingLatest()
		} else {
			state.plot.StopFollowingLatest()
		}
	}
	normalizeChk.OnChanged = func(b bool) {
		state.normalize = b
		savePrefs(state)
		state.plot.UpdateOptions(streamplot.OptionsPatch{NormalizeBounds: &b})
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		pw.refreshFrame()
	}
	pauseChk.OnChanged = func(b bool) { state.paused.Store(b) }
	adjustSelect.OnChanged = func(v string) {
		if strings.EqualFold(v, "Auto Y") {
			state.adjustY = "auto"
		} else {
			state.adjustY = "keep"
		}
		savePrefs(state)
		fo := state.followOptions()
		state.plot.UpdateOptions(streamplot.OptionsPatch{Follow: &fo})
	}
	typeSelect.OnChanged = func(v string) {
		state.seriesType = strings.ToLower(v)
		savePrefs(state)
		state.plot.UpdateSeries("signal", func(s *streamplot.Series) {
			s.Type = seriesTypeFromName(state.seriesType)
		})
	}

	// watch follow state so gesture-driven transitions reach the checkbox
	plot.OnFollowStart(func() {
		go fyne.Do(func() {
			state.followChk.Checked = true
			state.followChk.Refresh()
		})
	})
	plot.OnFollowStop(func() {
		go fyne.Do(func() {
			state.followChk.Checked = false
			state.followChk.Refresh()
		})
	})

	top := container.NewHBox(
		state.followChk, normalizeChk,
		widget.NewLabel("Y:"), adjustSelect,
		widget.NewLabel("Type:"), typeSelect,
		widget.NewLabel("Retain:"), decR, state.retainLabel, incR,
		fitBtn, resetBtn,
		hintsChk, pauseChk,
		state.statusLabel,
	)
	w.SetContent(container.NewBorder(top, nil, nil, nil, pw))

	buildMenus(state)

	done := make(chan struct{})
	w.SetOnClosed(func() {
		savePrefs(state)
		close(done)
		plot.Close()
	})

	// Redraw on window resize so the surface tracks the widget size.
	go func() {
		t := time.NewTicker(300 * time.Millisecond)
		defer t.Stop()
		var prevW, prevH float32
		for {
			select {
			case <-done:
				return
			case <-t.C:
				fyne.Do(func() {
					sz := pw.Size()
					if sz.Width != prevW || sz.Height != prevH {
						prevW, prevH = sz.Width, sz.Height
						surface.SetSize(int(sz.Width), int(sz.Height))
						state.plot.Render()
					}
				})
			}
		}
	}()

	// demo stream: a noisy sine appended in real time
	go func() {
		t := time.NewTicker(50 * time.Millisecond)
		defer t.Stop()
		start := time.Now()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if state.paused.Load() {
					continue
				}
				x := time.Since(start).Seconds()
				y := 3*math.Sin(x/1.5) + rand.Float64()*0.8 - 0.4
				state.plot.Append("signal", streamplot.Sample{X: x, Y: y})
			}
		}
	}()

	if state.followEnabled {
		plot.StartFollowingLatest()
	}
	if state.filePath != "" {
		importCSV(state, state.filePath)
	}
	plot.Render()

	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			importCSV(state, f)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open CSV…", func() { openFileDialog(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { exportPNG(state, "streamplot.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openFileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		importCSV(state, rc.URI().Path())
	}, state.window)
	d.Show()
}

// importCSV loads a file of "x,y" lines as a static scatter series next to the
// live stream.
func importCSV(state *uiState, path string) {
	samples, err := loadSamplesCSV(path)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.filePath = path
	addRecentFile(state, path)
	savePrefs(state)
	buildMenus(state)

	s := streamplot.NewSeries(samples...)
	s.Type = streamplot.Scatter
	s.Style.Color = drawing.Color{R: 0xff, G: 0x99, B: 0x33, A: 0xff}
	state.plot.SetSeries("imported", s)
	state.plot.FitToView()
}

// loadSamplesCSV parses "x,y" lines; non-numeric lines (headers, comments) are
// skipped.
func loadSamplesCSV(path string) ([]streamplot.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []streamplot.Sample
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(parts) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			continue
		}
		out = append(out, streamplot.Sample{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no x,y samples found in %s", filepath.Base(path))
	}
	return out, nil
}

// export PNG
func exportPNG(state *uiState, defaultName string) {
	img := state.pw.currentFrame()
	if img == nil {
		dialog.ShowInformation("Export", "No frame to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, img)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	prefs := state.app.Preferences()
	raw := prefs.StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	prefs := state.app.Preferences()
	list := recentFiles(state)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	prefs.SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastFile", state.filePath)
	prefs.SetBool("follow", state.followEnabled)
	prefs.SetBool("normalize", state.normalize)
	prefs.SetString("adjustY", state.adjustY)
	prefs.SetString("seriesType", state.seriesType)
	prefs.SetInt("retainN", state.retainN)
	prefs.SetBool("showHints", state.showHints)
}

func loadPrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	if state.filePath == "" {
		state.filePath = prefs.StringWithFallback("lastFile", "")
	}
	state.followEnabled = prefs.BoolWithFallback("follow", state.followEnabled)
	state.normalize = prefs.BoolWithFallback("normalize", state.normalize)
	if v := prefs.StringWithFallback("adjustY", state.adjustY); v == "keep" || v == "auto" {
		state.adjustY = v
	}
	switch v := prefs.StringWithFallback("seriesType", state.seriesType); v {
	case "line", "scatter", "bar", "area":
		state.seriesType = v
	}
	if n := prefs.IntWithFallback("retainN", state.retainN); n > 0 {
		state.retainN = n
	}
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
}

// utils
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
