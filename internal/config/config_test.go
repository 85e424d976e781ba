package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"IndicatorScope/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "worldbank", cfg.DataSource.Type)
	assert.Equal(t, "https://api.worldbank.org/v2", cfg.DataSource.BaseURL)
	assert.Equal(t, 30, cfg.DataSource.TimeoutSeconds)
	assert.Equal(t, model.DefaultParameters(), cfg.DefaultParameters())
	assert.Equal(t, filepath.Join("data", "country_analysis.txt"), cfg.TablePaths().Countries)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
data_source:
  type: file
  data_dir: fixtures
tables:
  dir: tables
  viewers: custom/viewers.txt
defaults:
  kind: 3
  country: USA
  start_year: 2010
  end_year: 2015
schedule:
  refresh_cron: "0 */5 * * * *"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("CRON_REFRESH", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "file", cfg.DataSource.Type)
	assert.Equal(t, "fixtures", cfg.DataSource.DataDir)
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)
	assert.Equal(t, "0 */5 * * * *", cfg.Schedule.RefreshCron)
	assert.Equal(t, model.Parameters{Kind: 3, Country: "USA", StartYear: 2010, EndYear: 2015}, cfg.DefaultParameters())

	paths := cfg.TablePaths()
	assert.Equal(t, filepath.Join("tables", "year_analysis.txt"), paths.Years)
	assert.Equal(t, "custom/viewers.txt", paths.Viewers)
	assert.Equal(t, filepath.Join("tables", "credential_database.txt"), cfg.Auth.Credentials)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_source: [oops"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	cfg.DataSource.Type = "ftp"
	assert.Error(t, cfg.Validate())

	cfg.DataSource.Type = "worldbank"
	cfg.Defaults.Kind = 9
	assert.Error(t, cfg.Validate())

	cfg.Defaults.Kind = 2
	cfg.Defaults.StartYear = 2022
	assert.Error(t, cfg.Validate())
}
