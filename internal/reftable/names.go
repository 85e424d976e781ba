package reftable

import (
	"log"
	"strings"
)

// CountryNames maps lower-cased full country names to country codes.
type CountryNames struct {
	codes map[string]string
	order []string
}

// LoadCountryNames reads `FullName,Code` lines. A missing file yields an
// empty mapping.
func LoadCountryNames(path string) *CountryNames {
	rows, err := ReadRows(path)
	if err != nil {
		log.Printf("[WARN] country list unavailable: %v", err)
		return NewCountryNames(nil)
	}
	return NewCountryNames(rows)
}

// NewCountryNames builds the mapping from parsed rows, skipping rows that do
// not hold a name and a code.
func NewCountryNames(rows Rows) *CountryNames {
	n := &CountryNames{codes: make(map[string]string)}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.ToLower(row[0])
		if _, dup := n.codes[key]; !dup {
			n.order = append(n.order, row[0])
		}
		n.codes[key] = row[1]
	}
	return n
}

// Code returns the code for a country name, ignoring case.
func (n *CountryNames) Code(name string) (string, bool) {
	code, ok := n.codes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// Names returns the full names in file order.
func (n *CountryNames) Names() []string {
	return append([]string(nil), n.order...)
}
