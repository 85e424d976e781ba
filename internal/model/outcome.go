package model

// Outcome is the result of a recalculation request.
type Outcome int

const (
	Success Outcome = iota
	InvalidCountry
	InvalidYearRange
	MalformedInput
	StartAfterEnd
	InsufficientData
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "SUCCESS"
	case InvalidCountry:
		return "INVALID_COUNTRY"
	case InvalidYearRange:
		return "INVALID_YEAR_RANGE"
	case MalformedInput:
		return "MALFORMED_INPUT"
	case StartAfterEnd:
		return "START_AFTER_END"
	case InsufficientData:
		return "INSUFFICIENT_DATA"
	default:
		return "UNKNOWN"
	}
}

// Message returns the user-facing text for the outcome.
func (o Outcome) Message() string {
	switch o {
	case Success:
		return "Analysis complete"
	case InvalidCountry:
		return "Invalid country for analysis"
	case InvalidYearRange:
		return "Invalid time range for analysis"
	case MalformedInput:
		return "Unexpected format, cannot validate setup"
	case StartAfterEnd:
		return "Starting year is after the ending year"
	case InsufficientData:
		return "Insufficient data for analysis, try different parameters"
	default:
		return "Unknown outcome"
	}
}
