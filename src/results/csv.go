package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadCSV reads a two-column (x, y) CSV file into a Dataset so fresh
// simulation output can be charted without a code change. A single header
// row is skipped when the first field does not parse as a number. The
// dataset Name is derived from the file name.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	ds := Dataset{Name: name}

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read csv %s: %w", path, err)
		}
		line++
		if len(rec) < 2 {
			return Dataset{}, fmt.Errorf("csv %s line %d: want 2 columns, got %d", path, line, len(rec))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if line == 1 {
				// header row
				continue
			}
			return Dataset{}, fmt.Errorf("csv %s line %d: non-numeric value", path, line)
		}
		ds.XValues = append(ds.XValues, x)
		ds.YValues = append(ds.YValues, y)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	Debugf("loaded %d points from %s", ds.Len(), path)
	return ds, nil
}
