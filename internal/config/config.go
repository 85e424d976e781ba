package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"IndicatorScope/internal/model"
	"IndicatorScope/internal/reftable"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Type              string  `yaml:"type"` // "worldbank" or "file"
		BaseURL           string  `yaml:"base_url"`
		DataDir           string  `yaml:"data_dir"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
	} `yaml:"data_source"`
	Tables struct {
		Dir       string `yaml:"dir"`
		Countries string `yaml:"countries"`
		Years     string `yaml:"years"`
		Viewers   string `yaml:"viewers"`
		Names     string `yaml:"names"`
	} `yaml:"tables"`
	Defaults struct {
		Kind      int    `yaml:"kind"`
		Country   string `yaml:"country"`
		StartYear int    `yaml:"start_year"`
		EndYear   int    `yaml:"end_year"`
	} `yaml:"defaults"`
	Auth struct {
		Required    bool   `yaml:"required"`
		Credentials string `yaml:"credentials"`
	} `yaml:"auth"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCOPE_SOURCE"); v != "" {
		cfg.DataSource.Type = v
	}
	if v := os.Getenv("SCOPE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("SCOPE_DATA_DIR"); v != "" {
		cfg.DataSource.DataDir = v
	}
	if v := os.Getenv("SCOPE_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.DataSource.RequestsPerSecond = rps
		}
	}
	if v := os.Getenv("SCOPE_TABLES_DIR"); v != "" {
		cfg.Tables.Dir = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SCOPE_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SCOPE_AUTH_REQUIRED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Auth.Required = b
		}
	}

	// Defaults
	def := model.DefaultParameters()
	if cfg.DataSource.Type == "" {
		cfg.DataSource.Type = "worldbank"
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://api.worldbank.org/v2"
	}
	if cfg.DataSource.DataDir == "" {
		cfg.DataSource.DataDir = "data/series"
	}
	if cfg.DataSource.RequestsPerSecond == 0 {
		cfg.DataSource.RequestsPerSecond = 5
	}
	if cfg.DataSource.TimeoutSeconds == 0 {
		cfg.DataSource.TimeoutSeconds = 30
	}
	if cfg.Tables.Dir == "" {
		cfg.Tables.Dir = "data"
	}
	if cfg.Auth.Credentials == "" {
		cfg.Auth.Credentials = filepath.Join(cfg.Tables.Dir, "credential_database.txt")
	}
	if cfg.Defaults.Kind == 0 {
		cfg.Defaults.Kind = int(def.Kind)
	}
	if cfg.Defaults.Country == "" {
		cfg.Defaults.Country = def.Country
	}
	if cfg.Defaults.StartYear == 0 {
		cfg.Defaults.StartYear = def.StartYear
	}
	if cfg.Defaults.EndYear == 0 {
		cfg.Defaults.EndYear = def.EndYear
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 6 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/indicator_scope.db"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "out"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Type {
	case "worldbank":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required")
		}
	case "file":
		if c.DataSource.DataDir == "" {
			return fmt.Errorf("data_source.data_dir is required")
		}
	default:
		return fmt.Errorf("data_source.type must be worldbank or file, got %q", c.DataSource.Type)
	}
	if c.DataSource.TimeoutSeconds < 0 {
		return fmt.Errorf("data_source.timeout_seconds must not be negative")
	}
	if !model.AnalysisKind(c.Defaults.Kind).Valid() {
		return fmt.Errorf("defaults.kind must be between 1 and %d", model.KindCount)
	}
	if c.Defaults.StartYear > c.Defaults.EndYear {
		return fmt.Errorf("defaults.start_year must not be after defaults.end_year")
	}
	return nil
}

// TablePaths returns the reference table locations. Unset file names fall
// back to the standard names inside Tables.Dir.
func (c *Config) TablePaths() reftable.Paths {
	p := reftable.PathsIn(c.Tables.Dir)
	if c.Tables.Countries != "" {
		p.Countries = c.Tables.Countries
	}
	if c.Tables.Years != "" {
		p.Years = c.Tables.Years
	}
	if c.Tables.Viewers != "" {
		p.Viewers = c.Tables.Viewers
	}
	if c.Tables.Names != "" {
		p.Names = c.Tables.Names
	}
	return p
}

// DefaultParameters returns the configured initial selection.
func (c *Config) DefaultParameters() model.Parameters {
	return model.Parameters{
		Kind:      model.AnalysisKind(c.Defaults.Kind),
		Country:   c.Defaults.Country,
		StartYear: c.Defaults.StartYear,
		EndYear:   c.Defaults.EndYear,
	}
}
