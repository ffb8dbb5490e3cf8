package render

import (
	"testing"

	"github.com/AdnanAhmed12/Multiverse/src/results"
)

func TestCatalogShape(t *testing.T) {
	charts, err := Catalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(charts) != 8 {
		t.Fatalf("expected 8 charts, got %d", len(charts))
	}
	seen := map[string]bool{}
	for _, c := range charts {
		if seen[c.Data.Name] {
			t.Fatalf("duplicate chart name %q", c.Data.Name)
		}
		seen[c.Data.Name] = true
		if c.Spec.YMin != 10 || c.Spec.YMax != 100 {
			t.Fatalf("%s: y range [%v,%v], want [10,100]", c.Data.Name, c.Spec.YMin, c.Spec.YMax)
		}
		if err := c.Data.Validate(); err != nil {
			t.Fatalf("%s: %v", c.Data.Name, err)
		}
	}
	if !seen[results.AggregateName] {
		t.Fatalf("catalog missing aggregate chart")
	}
}

func TestCatalogAxisBounds(t *testing.T) {
	c, err := CatalogChart("threshold-10")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if c.Spec.XMin != 10 || c.Spec.XMax != 350 {
		t.Fatalf("threshold-10 x range [%v,%v], want [10,350]", c.Spec.XMin, c.Spec.XMax)
	}
	c, err = CatalogChart("threshold-24")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if c.Spec.XMin != 10 || c.Spec.XMax != 400 {
		t.Fatalf("threshold-24 x range [%v,%v], want [10,400]", c.Spec.XMin, c.Spec.XMax)
	}
	c, err = CatalogChart(results.AggregateName)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if c.Spec.XMin != 1 || c.Spec.XMax != 60 {
		t.Fatalf("aggregate x range [%v,%v], want [1,60]", c.Spec.XMin, c.Spec.XMax)
	}
	if c.Spec.XLabel != "Confirmation Threshold Values" {
		t.Fatalf("aggregate x label %q", c.Spec.XLabel)
	}
}

func TestCatalogChartUnknown(t *testing.T) {
	if _, err := CatalogChart("threshold-99"); err == nil {
		t.Fatalf("expected error for unknown chart")
	}
}
