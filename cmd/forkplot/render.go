package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/AdnanAhmed12/Multiverse/src/render"
	"github.com/AdnanAhmed12/Multiverse/src/results"
)

const (
	formatPNG = "png"
	formatSVG = "svg"
)

type renderOptions struct {
	outDir string
	format string
	chart  string
	input  string
	title  string
}

// writeChart renders one chart in the requested format into outDir.
func writeChart(c render.Chart, outDir, format string) (string, error) {
	outPath := filepath.Join(outDir, c.Data.Name+"."+format)
	switch format {
	case formatPNG:
		b, err := render.RenderPNG(c.Data, c.Spec)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(outPath, b, 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", outPath, err)
		}
	case formatSVG:
		f, err := os.Create(outPath)
		if err != nil {
			return "", fmt.Errorf("create %s: %w", outPath, err)
		}
		if err := render.RenderSVG(c.Data, c.Spec, f); err != nil {
			f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", outPath, err)
		}
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
	return outPath, nil
}

// renderAll writes every catalog chart into the output directory.
func renderAll(opts renderOptions) error {
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	charts, err := render.Catalog()
	if err != nil {
		return err
	}
	for _, c := range charts {
		outPath, err := writeChart(c, opts.outDir, opts.format)
		if err != nil {
			return err
		}
		results.Infof("wrote %s", outPath)
	}
	return nil
}

func renderOne(opts renderOptions) error {
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	c, err := render.CatalogChart(opts.chart)
	if err != nil {
		return err
	}
	outPath, err := writeChart(c, opts.outDir, opts.format)
	if err != nil {
		return err
	}
	results.Infof("wrote %s", outPath)
	return nil
}

// renderCSV charts a user-supplied two-column CSV under the standard fork
// chart styling, with axis bounds padded around the data.
func renderCSV(opts renderOptions) error {
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	ds, err := results.LoadCSV(opts.input)
	if err != nil {
		return err
	}
	title := opts.title
	if title == "" {
		title = ds.Name
	}
	sp := csvSpec(ds, title)
	c := render.Chart{Data: ds, Spec: sp}
	outPath, err := writeChart(c, opts.outDir, opts.format)
	if err != nil {
		return err
	}
	results.Infof("wrote %s", outPath)
	return nil
}

// csvSpec derives presentation for ad-hoc data: standard labels and a 10%
// margin around the observed value range.
func csvSpec(ds results.Dataset, title string) render.Spec {
	xMin, xMax := results.MinMax(ds.XValues)
	yMin, yMax := results.MinMax(ds.YValues)
	xPad := (xMax - xMin) * 0.1
	yPad := (yMax - yMin) * 0.1
	if xPad <= 0 {
		xPad = 1
	}
	if yPad <= 0 {
		yPad = 1
	}
	return render.Spec{
		Title:  title,
		XLabel: "Number of Nodes",
		YLabel: "Number of Forks",
		XMin:   xMin - xPad, XMax: xMax + xPad,
		YMin: yMin - yPad, YMax: yMax + yPad,
	}
}

func writeList(w io.Writer) error {
	charts, err := render.Catalog()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTHRESHOLD\tPOINTS")
	for _, c := range charts {
		if c.Data.Name == results.AggregateName {
			fmt.Fprintf(tw, "%s\t-\t%d\n", c.Data.Name, c.Data.Len())
			continue
		}
		fmt.Fprintf(tw, "%s\t%.0f\t%d\n", c.Data.Name, c.Data.Threshold, c.Data.Len())
	}
	return tw.Flush()
}

func writeMeans(w io.Writer) error {
	agg, err := results.Aggregate()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "THRESHOLD\tMEAN FORKS")
	for i := range agg.XValues {
		fmt.Fprintf(tw, "%.0f\t%.3f\n", agg.XValues[i], agg.YValues[i])
	}
	return tw.Flush()
}
