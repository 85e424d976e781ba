package model

import (
	"fmt"
	"strconv"
	"strings"
)

// AnalysisKind identifies one of the eight predefined analyses.
type AnalysisKind int

const (
	KindEmissionsEnergyPollution AnalysisKind = iota + 1
	KindPollutionForest
	KindEmissionsGDPRatio
	KindAverageForest
	KindAverageEducationSpend
	KindBedsHealthSpend
	KindHealthSpendMortality
	KindEducationHealthRatio
)

// KindCount is the number of analysis kinds.
const KindCount = 8

// Kinds lists every analysis kind in order.
func Kinds() []AnalysisKind {
	kinds := make([]AnalysisKind, KindCount)
	for i := range kinds {
		kinds[i] = AnalysisKind(i + 1)
	}
	return kinds
}

// Valid reports whether k is one of the eight analysis kinds.
func (k AnalysisKind) Valid() bool {
	return k >= KindEmissionsEnergyPollution && k <= KindEducationHealthRatio
}

// ViewerKind identifies a visualization.
type ViewerKind string

const (
	ViewerLine    ViewerKind = "line"
	ViewerScatter ViewerKind = "scatter"
	ViewerTime    ViewerKind = "time"
	ViewerPie     ViewerKind = "pie"
	ViewerReport  ViewerKind = "report"
)

// ViewerKinds lists every viewer kind.
func ViewerKinds() []ViewerKind {
	return []ViewerKind{ViewerLine, ViewerScatter, ViewerTime, ViewerPie, ViewerReport}
}

// ParseViewerKind accepts a viewer name in any case, e.g. "Line" or "line chart".
func ParseViewerKind(s string) (ViewerKind, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return "", fmt.Errorf("empty viewer kind")
	}
	for _, k := range ViewerKinds() {
		if fields[0] == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown viewer kind %q", s)
}

// ParseAnalysisKind parses a decimal kind number without range checks;
// range is the validator's job.
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse analysis kind %q: %w", s, err)
	}
	return AnalysisKind(n), nil
}
