package reftable

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
)

// Paths locates the reference table files.
type Paths struct {
	Countries string
	Years     string
	Viewers   string
	Names     string
}

// PathsIn returns the conventional file names under dir.
func PathsIn(dir string) Paths {
	return Paths{
		Countries: filepath.Join(dir, "country_analysis.txt"),
		Years:     filepath.Join(dir, "year_analysis.txt"),
		Viewers:   filepath.Join(dir, "viewer_analysis.txt"),
		Names:     filepath.Join(dir, "country_list.txt"),
	}
}

// Tables holds the per-kind reference tables. Row i belongs to analysis kind i.
type Tables struct {
	Countries Rows
	Years     Rows
	Viewers   Rows
}

// YearRange is the inclusive span of years an analysis kind supports.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether [start, end] lies within the range.
func (r YearRange) Contains(start, end int) bool {
	return start >= r.Min && start <= r.Max && end >= r.Min && end <= r.Max
}

// Load reads all per-kind tables. A table that cannot be read is logged and
// left empty, so lookups against it find nothing.
func Load(p Paths) *Tables {
	t := &Tables{}
	t.Countries = readOrEmpty("country", p.Countries)
	t.Years = readOrEmpty("year", p.Years)
	t.Viewers = readOrEmpty("viewer", p.Viewers)
	return t
}

func readOrEmpty(name, path string) Rows {
	rows, err := ReadRows(path)
	if err != nil {
		log.Printf("[WARN] %s table unavailable: %v", name, err)
		return nil
	}
	log.Printf("[INFO] %s table loaded: %s (%d rows)", name, path, len(rows))
	return rows
}

// YearRange parses the year row for kind.
func (t *Tables) YearRange(kind int) (YearRange, error) {
	row, ok := t.Years.Row(kind)
	if !ok {
		return YearRange{}, fmt.Errorf("no year range for kind %d", kind)
	}
	if len(row) < 2 {
		return YearRange{}, fmt.Errorf("year range for kind %d: want min,max, got %v", kind, row)
	}
	lo, err := strconv.Atoi(row[0])
	if err != nil {
		return YearRange{}, fmt.Errorf("year range for kind %d: %w", kind, err)
	}
	hi, err := strconv.Atoi(row[1])
	if err != nil {
		return YearRange{}, fmt.Errorf("year range for kind %d: %w", kind, err)
	}
	return YearRange{Min: lo, Max: hi}, nil
}
