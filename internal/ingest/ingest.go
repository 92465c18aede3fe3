// Package ingest reads the three CSV input files of §6 (yard_config.csv,
// mock_yard.csv, mock_commands.csv) into typed domain values.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/elektrokombinacija/yard-beam-scheduler/internal/config"
	"github.com/elektrokombinacija/yard-beam-scheduler/internal/errs"
)

// readRows parses path as a header-plus-data CSV file and returns each data
// row as a header-keyed map.
func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", errs.ErrIO, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s has no header row", errs.ErrIO, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s header: %v", errs.ErrIO, path, err)
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", errs.ErrIO, path, err)
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Config reads yard_config.csv's sole data row into a validated Config. A
// file with no data row falls back to Defaults(), which fails validation
// because the default yard dimensions are zero.
func Config(path string) (config.Config, error) {
	rows, err := readRows(path)
	if err != nil {
		return config.Config{}, err
	}
	if len(rows) == 0 {
		cfg := config.Defaults()
		if verr := cfg.Validate(); verr != nil {
			return config.Config{}, verr
		}
		return cfg, nil
	}
	return config.Decode(rows[0])
}

// atoiField parses row[key] as an integer, defaulting empty/absent fields
// to 0. sku_qty, whose default is 1, is not read through this helper:
// Commands parses it separately.
func atoiField(row map[string]string, key string) (int, error) {
	v, ok := row[key]
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return n, nil
}
