package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Dataset source kinds.
const (
	SourceHTTP     = "http"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// DefaultDatasetURL is the published launch dataset.
const DefaultDatasetURL = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBM-DS0321EN-SkillsNetwork/datasets/spacex_launch_dash.csv"

type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Database  DatabaseConfig
	Dashboard DashboardConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type DatasetConfig struct {
	Source  string
	URL     string
	Path    string
	Table   string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DSN builds a libpq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type DashboardConfig struct {
	SliderMin       float64
	SliderMax       float64
	SliderStep      float64
	SliderMarkStep  int
	ReportBandWidth float64
}

type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, optionally layered over the
// file named by CONFIG_FILE.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8050)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DATASET_SOURCE", SourceHTTP)
	v.SetDefault("DATASET_URL", DefaultDatasetURL)
	v.SetDefault("DATASET_PATH", "spacex_launch_dash.csv")
	v.SetDefault("DATASET_TABLE", "spacex_launches")
	v.SetDefault("DATASET_TIMEOUT", "30s")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_NAME", "launches")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 4)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("SLIDER_MIN", 0)
	v.SetDefault("SLIDER_MAX", 10000)
	v.SetDefault("SLIDER_STEP", 100)
	v.SetDefault("SLIDER_MARK_STEP", 2500)
	v.SetDefault("REPORT_BAND_WIDTH", 1000)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	shutdownTimeout, err := duration(v, "SERVER_SHUTDOWN_TIMEOUT")
	if err != nil {
		return nil, err
	}
	datasetTimeout, err := duration(v, "DATASET_TIMEOUT")
	if err != nil {
		return nil, err
	}
	connMaxLifetime, err := duration(v, "DATABASE_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: shutdownTimeout,
		},
		Dataset: DatasetConfig{
			Source:  strings.ToLower(v.GetString("DATASET_SOURCE")),
			URL:     v.GetString("DATASET_URL"),
			Path:    v.GetString("DATASET_PATH"),
			Table:   v.GetString("DATASET_TABLE"),
			Timeout: datasetTimeout,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Dashboard: DashboardConfig{
			SliderMin:       v.GetFloat64("SLIDER_MIN"),
			SliderMax:       v.GetFloat64("SLIDER_MAX"),
			SliderStep:      v.GetFloat64("SLIDER_STEP"),
			SliderMarkStep:  v.GetInt("SLIDER_MARK_STEP"),
			ReportBandWidth: v.GetFloat64("REPORT_BAND_WIDTH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceHTTP:
		if c.Dataset.URL == "" {
			return fmt.Errorf("DATASET_URL is required for source %q", SourceHTTP)
		}
	case SourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required for source %q", SourceFile)
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			return fmt.Errorf("DATABASE_HOST and DATABASE_NAME are required for source %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q (want %s, %s or %s)", c.Dataset.Source, SourceHTTP, SourceFile, SourcePostgres)
	}

	if c.Dashboard.SliderMax < c.Dashboard.SliderMin {
		return fmt.Errorf("SLIDER_MAX (%v) is below SLIDER_MIN (%v)", c.Dashboard.SliderMax, c.Dashboard.SliderMin)
	}
	if c.Dashboard.ReportBandWidth <= 0 {
		return fmt.Errorf("REPORT_BAND_WIDTH must be positive")
	}
	return nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
