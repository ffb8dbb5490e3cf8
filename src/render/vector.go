package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/AdnanAhmed12/Multiverse/src/results"
)

// RenderSVG renders the dataset under the spec as scalable vector output,
// for embedding charts in reports. Styling mirrors the raster renderer:
// dashed blue line, black filled circle markers, fixed axis bounds.
func RenderSVG(ds results.Dataset, sp Spec, w io.Writer) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = sp.Title
	p.X.Label.Text = sp.XLabel
	p.Y.Label.Text = sp.YLabel
	p.X.Min, p.X.Max = sp.XMin, sp.XMax
	p.Y.Min, p.Y.Max = sp.YMin, sp.YMax
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, ds.Len())
	for i := range pts {
		pts[i].X = ds.XValues[i]
		pts[i].Y = ds.YValues[i]
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("svg %s: %w", ds.Name, err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	line.Width = vg.Points(sp.lineWidth())
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(sp.markerSize() * 0.75)
	points.GlyphStyle.Color = color.Black
	p.Add(line, points)

	pw, ph := sp.size()
	wt, err := p.WriterTo(vg.Points(float64(pw)*0.75), vg.Points(float64(ph)*0.75), "svg")
	if err != nil {
		return fmt.Errorf("svg writer %s: %w", ds.Name, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("svg write %s: %w", ds.Name, err)
	}
	return nil
}
