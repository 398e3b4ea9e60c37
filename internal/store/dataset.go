package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var spanishMonths = map[string]time.Month{
	"ene": time.January,
	"feb": time.February,
	"mar": time.March,
	"abr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"sep": time.September,
	"set": time.September,
	"oct": time.October,
	"nov": time.November,
	"dic": time.December,
}

// Row is one dataset line as written in the YAML file.
type Row struct {
	Provider string `yaml:"provider"`
	Brand    string `yaml:"brand"`
	Country  string `yaml:"country"`
	Date     string `yaml:"date"`
}

type datasetFile struct {
	Orders []Row `yaml:"orders"`
}

// ParseDate accepts short Spanish dates ("30-ene-25") and ISO dates
// ("2025-01-30").
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("bad date %q", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day in %q", s)
	}
	month, ok := spanishMonths[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("bad month in %q", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad year in %q", s)
	}
	if year < 100 {
		year += 2000
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, fmt.Errorf("day out of range in %q", s)
	}
	return t, nil
}

// Orders converts rows to orders. Rows without a date are planned but not
// yet scheduled and are skipped.
func Orders(rows []Row) ([]Order, error) {
	out := make([]Order, 0, len(rows))
	for i, r := range rows {
		if strings.TrimSpace(r.Date) == "" {
			continue
		}
		if strings.TrimSpace(r.Provider) == "" || strings.TrimSpace(r.Brand) == "" || strings.TrimSpace(r.Country) == "" {
			return nil, fmt.Errorf("row %d: provider, brand and country are required", i+1)
		}
		d, err := ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, Order{Provider: r.Provider, Brand: r.Brand, Country: r.Country, Date: d})
	}
	return out, nil
}

// ReadDataset parses a YAML dataset file.
func ReadDataset(path string) ([]Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f datasetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	orders, err := Orders(f.Orders)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return orders, nil
}

// LoadDataset replaces the stored orders with the file at path, or with
// the demo seed when path is empty. It returns the number of orders loaded.
func (d *DB) LoadDataset(ctx context.Context, path string) (int, error) {
	var (
		orders []Order
		err    error
	)
	if path == "" {
		orders, err = Orders(DemoRows())
	} else {
		orders, err = ReadDataset(path)
	}
	if err != nil {
		return 0, err
	}
	if err := d.Replace(ctx, orders); err != nil {
		return 0, err
	}
	return len(orders), nil
}
