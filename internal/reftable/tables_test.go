package reftable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestParseRows_KeepsBlankLinePositions(t *testing.T) {
	rows := ParseRows([]byte("CAN,USA\n\n BRA , IND \n"))
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"CAN", "USA"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, []string{"BRA", "IND"}, rows[2])

	assert.True(t, rows.Contains(3, "IND"))
	assert.False(t, rows.Contains(2, "CAN"))
	assert.False(t, rows.Contains(4, "CAN"))
	assert.False(t, rows.Contains(0, "CAN"))
}

func TestLoad_MissingFilesDegradeToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "country_analysis.txt", "CAN\n")

	tables := Load(PathsIn(dir))
	assert.True(t, tables.Countries.Contains(1, "CAN"))
	assert.Nil(t, tables.Years)
	assert.Nil(t, tables.Viewers)

	_, err := tables.YearRange(1)
	assert.Error(t, err)
}

func TestYearRange(t *testing.T) {
	tables := &Tables{Years: ParseRows([]byte("1990,2020\nbad,2020\n2000\n"))}

	r, err := tables.YearRange(1)
	require.NoError(t, err)
	assert.Equal(t, YearRange{Min: 1990, Max: 2020}, r)
	assert.True(t, r.Contains(1990, 2020))
	assert.False(t, r.Contains(1989, 2000))
	assert.False(t, r.Contains(2000, 2021))

	_, err = tables.YearRange(2)
	assert.Error(t, err)
	_, err = tables.YearRange(3)
	assert.Error(t, err)
}

func TestCountryNames(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "country_list.txt", "Canada,CAN\nUnited States,USA\nbroken\n")

	names := LoadCountryNames(p)
	code, ok := names.Code("  canada ")
	assert.True(t, ok)
	assert.Equal(t, "CAN", code)

	code, ok = names.Code("UNITED STATES")
	assert.True(t, ok)
	assert.Equal(t, "USA", code)

	_, ok = names.Code("Atlantis")
	assert.False(t, ok)
	assert.Equal(t, []string{"Canada", "United States"}, names.Names())

	empty := LoadCountryNames(filepath.Join(dir, "missing.txt"))
	_, ok = empty.Code("Canada")
	assert.False(t, ok)
}
