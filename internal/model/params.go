package model

import "fmt"

// Parameters is the active analysis selection.
type Parameters struct {
	Kind      AnalysisKind
	Country   string
	StartYear int
	EndYear   int
}

// DefaultParameters returns the selection used before the user picks one.
func DefaultParameters() Parameters {
	return Parameters{
		Kind:      KindEmissionsEnergyPollution,
		Country:   "CAN",
		StartYear: 2015,
		EndYear:   2016,
	}
}

func (p Parameters) String() string {
	return fmt.Sprintf("kind=%d country=%s years=%d-%d", int(p.Kind), p.Country, p.StartYear, p.EndYear)
}
