package results

import "fmt"

// The series below were produced by multiverse simulation runs at TPS 100,
// zipf 0.8, sweeping the network size for each confirmation threshold. The
// threshold-10 run covered the full sweep from 10 nodes; later runs start at
// 90 nodes. Values are fork counts observed at the end of each run.

// AggregateName identifies the derived mean-forks-per-threshold series.
const AggregateName = "threshold-means"

var builtin = []Dataset{
	{
		Name:      "threshold-10",
		Threshold: 10,
		XValues:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{59, 50, 50, 61, 51, 39, 62, 52, 45, 62, 64, 39, 60, 52, 44, 62, 64},
	},
	{
		Name:      "threshold-12",
		Threshold: 12,
		XValues:   []float64{90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{45, 50, 59, 56, 58, 50, 56, 55, 56},
	},
	{
		Name:      "threshold-18",
		Threshold: 18,
		XValues:   []float64{90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{47, 61, 58, 43, 71, 48, 57, 63, 44},
	},
	{
		Name:      "threshold-24",
		Threshold: 24,
		XValues:   []float64{90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{48, 68, 51, 51, 57, 61, 57, 62, 68},
	},
	{
		Name:      "threshold-30",
		Threshold: 30,
		XValues:   []float64{90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{40, 47, 55, 45, 61, 62, 40, 50, 50},
	},
	{
		Name:      "threshold-40",
		Threshold: 40,
		XValues:   []float64{90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{43, 43, 49, 43, 60, 49, 53, 42, 55},
	},
	{
		Name:      "threshold-50",
		Threshold: 50,
		XValues:   []float64{90, 100, 120, 130, 150, 200, 250, 300, 350},
		YValues:   []float64{40, 58, 39, 44, 63, 54, 49, 51, 43},
	},
}

// Builtin returns the seven per-threshold series in ascending threshold
// order. The returned slice is a copy; the underlying value slices are
// shared and must not be mutated.
func Builtin() []Dataset {
	out := make([]Dataset, len(builtin))
	copy(out, builtin)
	return out
}

// ByName looks up a built-in series (or the aggregate) by its Name.
func ByName(name string) (Dataset, error) {
	if name == AggregateName {
		return Aggregate()
	}
	for _, d := range builtin {
		if d.Name == name {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("no dataset named %q", name)
}

// Aggregate derives the mean fork count of every built-in series and pairs
// it with that series' confirmation threshold, yielding the
// mean-forks-vs-threshold series.
func Aggregate() (Dataset, error) {
	agg := Dataset{Name: AggregateName}
	for _, d := range builtin {
		m, err := d.Mean()
		if err != nil {
			return Dataset{}, fmt.Errorf("aggregate: %w", err)
		}
		agg.XValues = append(agg.XValues, d.Threshold)
		agg.YValues = append(agg.YValues, m)
	}
	return agg, nil
}
