package render

import (
	"fmt"

	"github.com/AdnanAhmed12/Multiverse/src/results"
)

// Chart pairs a dataset with the spec it is displayed under.
type Chart struct {
	Data results.Dataset
	Spec Spec
}

// nodesSpec is the presentation shared by the per-threshold charts:
// nodes on X, forks on Y, fixed fork range 10..100.
func nodesSpec(title string, xMin, xMax float64) Spec {
	return Spec{
		Title:  title,
		XLabel: "Number of Nodes",
		YLabel: "Number of Forks",
		XMin:   xMin, XMax: xMax,
		YMin: 10, YMax: 100,
	}
}

// Catalog returns the eight standard charts: one per confirmation threshold
// plus the aggregate mean-forks-vs-threshold chart, in display order. The
// titles and axis bounds mirror the experiment reports the data was first
// published in: the threshold-10 sweep plots on 10..350 nodes, the later
// sweeps on 10..400, and the aggregate on thresholds 1..60.
func Catalog() ([]Chart, error) {
	charts := make([]Chart, 0, 8)
	for _, d := range results.Builtin() {
		xMax := 400.0
		if d.Threshold == 10 {
			xMax = 350
		}
		title := fmt.Sprintf("TPS = 100 ,Threshold %.0f, zipf = 0.8", d.Threshold)
		sp := nodesSpec(title, 10, xMax)
		sp.Caption = fmt.Sprintf("Forks observed per network size at confirmation threshold %.0f.", d.Threshold)
		charts = append(charts, Chart{Data: d, Spec: sp})
	}
	agg, err := results.Aggregate()
	if err != nil {
		return nil, err
	}
	aggSpec := Spec{
		Title:  "TPS = 100, zipf = 0.8",
		XLabel: "Confirmation Threshold Values",
		YLabel: "Number of Forks",
		XMin:   1, XMax: 60,
		YMin: 10, YMax: 100,
		Caption: "Mean fork count of each threshold sweep.",
	}
	charts = append(charts, Chart{Data: agg, Spec: aggSpec})
	return charts, nil
}

// CatalogChart returns the catalog entry whose dataset has the given name.
func CatalogChart(name string) (Chart, error) {
	charts, err := Catalog()
	if err != nil {
		return Chart{}, err
	}
	for _, c := range charts {
		if c.Data.Name == name {
			return c, nil
		}
	}
	return Chart{}, fmt.Errorf("no chart named %q", name)
}
