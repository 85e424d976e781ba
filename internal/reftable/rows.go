package reftable

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Rows is a line-oriented table; every line is one row of comma-separated
// cells. Blank lines are kept so row positions match line numbers.
type Rows [][]string

// ReadRows reads a comma-separated table from path.
func ReadRows(path string) (Rows, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}
	return ParseRows(data), nil
}

// ParseRows splits data into rows of trimmed cells.
func ParseRows(data []byte) Rows {
	var rows Rows
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			rows = append(rows, nil)
			continue
		}
		parts := strings.Split(line, ",")
		cells := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cells = append(cells, p)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

// Row returns the cells of the 1-based row n.
func (r Rows) Row(n int) ([]string, bool) {
	if n < 1 || n > len(r) {
		return nil, false
	}
	return r[n-1], true
}

// Contains reports whether the 1-based row n holds cell exactly.
func (r Rows) Contains(n int, cell string) bool {
	row, ok := r.Row(n)
	if !ok {
		return false
	}
	for _, c := range row {
		if c == cell {
			return true
		}
	}
	return false
}
