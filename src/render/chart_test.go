package render

import (
	"bytes"
	"errors"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/AdnanAhmed12/Multiverse/src/results"
)

func threePointDataset() results.Dataset {
	return results.Dataset{
		Name:    "three",
		XValues: []float64{10, 20, 30},
		YValues: []float64{59, 50, 50},
	}
}

func standardSpec() Spec {
	return Spec{
		Title:  "test chart",
		XLabel: "Number of Nodes",
		YLabel: "Number of Forks",
		XMin:   10, XMax: 350,
		YMin: 10, YMax: 100,
	}
}

func TestBuildChartPreservesSeriesOrder(t *testing.T) {
	ds := threePointDataset()
	ch, err := buildChart(ds, standardSpec())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ch.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(ch.Series))
	}
	cs, ok := ch.Series[0].(chart.ContinuousSeries)
	if !ok {
		t.Fatalf("expected ContinuousSeries, got %T", ch.Series[0])
	}
	if len(cs.XValues) != 3 || len(cs.YValues) != 3 {
		t.Fatalf("series length mismatch: x=%d y=%d", len(cs.XValues), len(cs.YValues))
	}
	for i := range ds.XValues {
		if cs.XValues[i] != ds.XValues[i] || cs.YValues[i] != ds.YValues[i] {
			t.Fatalf("point %d: got (%v,%v), want (%v,%v)", i, cs.XValues[i], cs.YValues[i], ds.XValues[i], ds.YValues[i])
		}
	}
}

func TestBuildChartAppliesSpec(t *testing.T) {
	ch, err := buildChart(threePointDataset(), standardSpec())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	xr, ok := ch.XAxis.Range.(*chart.ContinuousRange)
	if !ok {
		t.Fatalf("expected fixed x range, got %T", ch.XAxis.Range)
	}
	if xr.Min != 10 || xr.Max != 350 {
		t.Fatalf("x range [%v,%v], want [10,350]", xr.Min, xr.Max)
	}
	yr, ok := ch.YAxis.Range.(*chart.ContinuousRange)
	if !ok {
		t.Fatalf("expected fixed y range, got %T", ch.YAxis.Range)
	}
	if yr.Min != 10 || yr.Max != 100 {
		t.Fatalf("y range [%v,%v], want [10,100]", yr.Min, yr.Max)
	}
	if ch.Title != "test chart" || ch.XAxis.Name != "Number of Nodes" || ch.YAxis.Name != "Number of Forks" {
		t.Fatalf("labels not applied: %q / %q / %q", ch.Title, ch.XAxis.Name, ch.YAxis.Name)
	}
}

func TestBuildChartDashedWithMarkers(t *testing.T) {
	ch, err := buildChart(threePointDataset(), standardSpec())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	st := ch.Series[0].(chart.ContinuousSeries).Style
	if len(st.StrokeDashArray) == 0 {
		t.Fatalf("expected dashed stroke")
	}
	if st.DotWidth <= 0 {
		t.Fatalf("expected point markers, got dot width %v", st.DotWidth)
	}
	if st.StrokeWidth != 2 {
		t.Fatalf("expected default stroke width 2, got %v", st.StrokeWidth)
	}
}

func TestRenderEmptyDatasetFails(t *testing.T) {
	_, err := Render(results.Dataset{Name: "empty"}, standardSpec())
	if !errors.Is(err, results.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestRenderLengthMismatchFails(t *testing.T) {
	ds := results.Dataset{Name: "bad", XValues: []float64{1, 2}, YValues: []float64{1}}
	if _, err := Render(ds, standardSpec()); !errors.Is(err, results.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestRenderSize(t *testing.T) {
	sp := standardSpec()
	sp.Width, sp.Height = 640, 360
	img, err := Render(threePointDataset(), sp)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 360 {
		t.Fatalf("expected 640x360, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderIdempotent(t *testing.T) {
	ds := threePointDataset()
	sp := standardSpec()
	first, err := RenderPNG(ds, sp)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := RenderPNG(ds, sp)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("renders differ: %d vs %d bytes", len(first), len(second))
	}
}

func TestRenderCaptionChangesOutput(t *testing.T) {
	ds := threePointDataset()
	plain, err := RenderPNG(ds, standardSpec())
	if err != nil {
		t.Fatalf("plain render: %v", err)
	}
	sp := standardSpec()
	sp.Caption = "forks per network size"
	captioned, err := RenderPNG(ds, sp)
	if err != nil {
		t.Fatalf("captioned render: %v", err)
	}
	if bytes.Equal(plain, captioned) {
		t.Fatalf("caption had no visible effect")
	}
}
