// forkviewer is the interactive viewer for the multiverse fork-count
// charts: the seven per-threshold sweeps plus the aggregate
// mean-forks-vs-threshold chart. Charts are rendered off-screen to PNG and
// shown in the window; the process blocks until the window is closed.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/AdnanAhmed12/Multiverse/src/render"
	"github.com/AdnanAhmed12/Multiverse/src/results"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	charts []render.Chart
	idx    int

	showCaptions bool

	imgCanvas   *canvas.Image
	chartSelect *widget.Select
	statusLabel *widget.Label
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

func chartNames(charts []render.Chart) []string {
	names := make([]string, len(charts))
	for i, c := range charts {
		names[i] = c.Data.Name
	}
	return names
}

// chartIndexByName returns the catalog index for name, or -1.
func chartIndexByName(charts []render.Chart, name string) int {
	for i, c := range charts {
		if c.Data.Name == name {
			return i
		}
	}
	return -1
}

// redraw renders the selected chart into the canvas, falling back to a
// blank placeholder on render errors so the window still updates.
func redraw(state *uiState) {
	c := state.charts[state.idx]
	sp := c.Spec
	if !state.showCaptions {
		sp.Caption = ""
	}
	img, err := render.Render(c.Data, sp)
	if err != nil {
		fmt.Printf("[viewer] render %s failed: %v; showing blank fallback\n", c.Data.Name, err)
		w, h := render.DefaultWidth, render.DefaultHeight
		img = render.Blank(w, h)
	}
	state.imgCanvas.Image = img
	state.imgCanvas.Refresh()
	if m, err := c.Data.Mean(); err == nil {
		state.statusLabel.SetText(fmt.Sprintf("%s: %d points, mean forks %.2f", c.Data.Name, c.Data.Len(), m))
	}
}

func savePrefs(state *uiState) {
	p := state.app.Preferences()
	p.SetString("chart", state.charts[state.idx].Data.Name)
	p.SetBool("captions", state.showCaptions)
}

func exportChartPNG(state *uiState) {
	if state.imgCanvas == nil || state.imgCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.imgCanvas.Image)
	}, state.window)
	fs.SetFileName(state.charts[state.idx].Data.Name + ".png")
	fs.Show()
}

func main() {
	var chartFlag string
	var logLevel string
	flag.StringVar(&chartFlag, "chart", "", "Name of the chart to open with (see forkplot list)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	results.SetLogLevel(logLevel)

	charts, err := render.Catalog()
	if err != nil {
		results.Errorf("build catalog: %v", err)
		return
	}

	a := app.NewWithID("com.multiverse.forkviewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Multiverse Fork Charts")
	w.Resize(fyne.NewSize(1100, 760))

	state := &uiState{app: a, window: w, charts: charts}
	state.showCaptions = a.Preferences().BoolWithFallback("captions", false)

	// Initial chart: flag beats stored preference, both fall back to the
	// first catalog entry.
	initial := chartFlag
	if initial == "" {
		initial = a.Preferences().StringWithFallback("chart", charts[0].Data.Name)
	}
	if i := chartIndexByName(charts, initial); i >= 0 {
		state.idx = i
	} else if chartFlag != "" {
		fmt.Printf("[viewer] unknown chart %q; showing %s\n", chartFlag, charts[0].Data.Name)
	}

	state.imgCanvas = canvas.NewImageFromImage(render.Blank(render.DefaultWidth, render.DefaultHeight))
	state.imgCanvas.FillMode = canvas.ImageFillContain
	state.imgCanvas.SetMinSize(fyne.NewSize(900, 560))
	state.statusLabel = widget.NewLabel("")

	state.chartSelect = widget.NewSelect(chartNames(charts), func(v string) {
		if i := chartIndexByName(state.charts, v); i >= 0 {
			state.idx = i
		}
		savePrefs(state)
		redraw(state)
	})
	state.chartSelect.Selected = charts[state.idx].Data.Name

	captionsChk := widget.NewCheck("Captions", func(v bool) {
		state.showCaptions = v
		savePrefs(state)
		redraw(state)
	})
	captionsChk.SetChecked(state.showCaptions)

	exportBtn := widget.NewButton("Export PNG…", func() { exportChartPNG(state) })

	top := container.NewHBox(widget.NewLabel("Chart:"), state.chartSelect, captionsChk, exportBtn)
	w.SetContent(container.NewBorder(top, state.statusLabel, nil, nil, state.imgCanvas))

	redraw(state)
	w.ShowAndRun()
}
