package results

import (
	"errors"
	"testing"
)

func TestMeanExact(t *testing.T) {
	// Nine fork counts from the threshold-12 sweep; they sum to 485.
	vals := []float64{45, 50, 59, 56, 58, 50, 56, 55, 56}
	m, err := Mean(vals)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	if m != 485.0/9.0 {
		t.Fatalf("expected %v, got %v", 485.0/9.0, m)
	}
}

func TestMeanEmpty(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{47, 61, 58, 43, 71})
	if min != 43 || max != 71 {
		t.Fatalf("expected 43/71, got %v/%v", min, max)
	}
	min, max = MinMax(nil)
	if min != 0 || max != 0 {
		t.Fatalf("expected 0/0 for empty input, got %v/%v", min, max)
	}
}
