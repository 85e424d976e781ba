package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/reftable"
)

func testTables() *reftable.Tables {
	return &reftable.Tables{
		Countries: reftable.ParseRows([]byte("CAN,USA\nCAN\nCAN,BRA\n")),
		Years:     reftable.ParseRows([]byte("2000,2020\n1990,2018\n2010,2016\n")),
		Viewers:   reftable.ParseRows([]byte("line,scatter,report\nline\npie,report\n")),
	}
}

func TestValidate_Success(t *testing.T) {
	v := New(testTables())
	assert.Equal(t, model.Success, v.Validate(1, "CAN", 2000, 2020))
	assert.Equal(t, model.Success, v.Validate(1, "USA", 2010, 2010))
	assert.Equal(t, model.Success, v.Validate(3, "BRA", 2015, 2016))
}

func TestValidate_Malformed(t *testing.T) {
	v := New(testTables())
	tests := []struct {
		name    string
		kind    model.AnalysisKind
		country string
		start   int
		end     int
	}{
		{"zero kind", 0, "CAN", 2000, 2001},
		{"negative kind", -3, "CAN", 2000, 2001},
		{"negative start", 1, "CAN", -1, 2001},
		{"negative end", 1, "CAN", 2000, -1},
		{"empty country", 1, "", 2000, 2001},
		{"start after end and empty country", 1, "", 2005, 2001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.MalformedInput, v.Validate(tt.kind, tt.country, tt.start, tt.end))
		})
	}
}

func TestValidate_StartAfterEndWins(t *testing.T) {
	v := New(testTables())
	// Country and bounds would pass; ordering is checked first.
	assert.Equal(t, model.StartAfterEnd, v.Validate(1, "CAN", 2010, 2005))
	// Precedes the country check too.
	assert.Equal(t, model.StartAfterEnd, v.Validate(1, "ZZZ", 2010, 2005))
}

func TestValidate_InvalidCountry(t *testing.T) {
	v := New(testTables())
	assert.Equal(t, model.InvalidCountry, v.Validate(2, "USA", 2000, 2001))
	assert.Equal(t, model.InvalidCountry, v.Validate(9, "CAN", 2000, 2001))
}

func TestValidate_InvalidYearRange(t *testing.T) {
	v := New(testTables())
	assert.Equal(t, model.InvalidYearRange, v.Validate(3, "CAN", 2009, 2012))
	assert.Equal(t, model.InvalidYearRange, v.Validate(3, "CAN", 2012, 2017))
	assert.Equal(t, model.InvalidYearRange, v.Validate(2, "CAN", 1980, 2019))
}

func TestValidate_MissingTables(t *testing.T) {
	v := New(&reftable.Tables{})
	assert.Equal(t, model.InvalidCountry, v.Validate(1, "CAN", 2000, 2001))
	assert.False(t, v.IsValidViewer(1, model.ViewerLine))

	noYears := testTables()
	noYears.Years = nil
	assert.Equal(t, model.InvalidYearRange, New(noYears).Validate(1, "CAN", 2000, 2001))
}

func TestIsValidViewer(t *testing.T) {
	v := New(testTables())
	assert.True(t, v.IsValidViewer(1, model.ViewerScatter))
	assert.False(t, v.IsValidViewer(1, model.ViewerPie))
	assert.True(t, v.IsValidViewer(3, model.ViewerPie))
	assert.False(t, v.IsValidViewer(4, model.ViewerLine))
	assert.False(t, v.IsValidViewer(0, model.ViewerLine))
	assert.False(t, v.IsValidViewer(1, ""))
}
