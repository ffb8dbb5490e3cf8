package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/AdnanAhmed12/Multiverse/src/results"
)

// seriesStyle is the dashed-blue-line, black-filled-circle styling every
// fork chart uses.
func seriesStyle(sp Spec) chart.Style {
	return chart.Style{
		StrokeColor:     chart.ColorBlue,
		StrokeWidth:     sp.lineWidth(),
		StrokeDashArray: []float64{6.0, 4.0},
		DotColor:        chart.ColorBlack,
		DotWidth:        sp.markerSize(),
	}
}

// buildChart validates ds and assembles the go-chart model without
// rendering it. Split out so tests can inspect the series and ranges that
// will be drawn.
func buildChart(ds results.Dataset, sp Spec) (chart.Chart, error) {
	if err := ds.Validate(); err != nil {
		return chart.Chart{}, err
	}
	w, h := sp.size()
	ch := chart.Chart{
		Title:      sp.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:  sp.XLabel,
			Range: &chart.ContinuousRange{Min: sp.XMin, Max: sp.XMax},
			Ticks: niceTicks(sp.XMin, sp.XMax, 8),
		},
		YAxis: chart.YAxis{
			Name:  sp.YLabel,
			Range: &chart.ContinuousRange{Min: sp.YMin, Max: sp.YMax},
			Ticks: niceTicks(sp.YMin, sp.YMax, 6),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    ds.Name,
				XValues: ds.XValues,
				YValues: ds.YValues,
				Style:   seriesStyle(sp),
			},
		},
	}
	return ch, nil
}

// RenderPNG renders the dataset under the spec and returns the encoded PNG
// bytes. Rendering is deterministic: identical inputs yield identical
// bytes.
func RenderPNG(ds results.Dataset, sp Spec) ([]byte, error) {
	ch, err := buildChart(ds, sp)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", ds.Name, err)
	}
	if sp.Caption == "" {
		return buf.Bytes(), nil
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ds.Name, err)
	}
	var out bytes.Buffer
	if err := png.Encode(&out, drawCaption(img, sp.Caption)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", ds.Name, err)
	}
	return out.Bytes(), nil
}

// Render renders the dataset under the spec to an image for on-screen
// display.
func Render(ds results.Dataset, sp Spec) (image.Image, error) {
	b, err := RenderPNG(ds, sp)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ds.Name, err)
	}
	return img, nil
}
