// Package render turns result datasets into chart images: raster (PNG) via
// go-chart for the viewer, vector (SVG) via gonum/plot for publication
// export.
package render

// Spec carries the presentation options for one chart: fixed axis bounds,
// labels, title, and the dashed-line/marker styling shared by every fork
// chart.
type Spec struct {
	Title  string
	XLabel string
	YLabel string

	XMin, XMax float64
	YMin, YMax float64

	// LineWidth is the stroke width of the dashed series line.
	LineWidth float64
	// MarkerSize is the diameter of the filled circle drawn at each point.
	MarkerSize float64

	// Width and Height of the rendered image in pixels. Zero means
	// DefaultWidth x DefaultHeight.
	Width, Height int

	// Caption, when non-empty, is drawn onto the bottom-left of the
	// rendered image.
	Caption string
}

const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// size returns the pixel size to render at, applying defaults.
func (s Spec) size() (int, int) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (s Spec) lineWidth() float64 {
	if s.LineWidth <= 0 {
		return 2
	}
	return s.LineWidth
}

func (s Spec) markerSize() float64 {
	if s.MarkerSize <= 0 {
		return 4
	}
	return s.MarkerSize
}
