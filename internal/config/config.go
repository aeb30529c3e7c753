// Package config builds the runtime configuration record for PolicyRadar.
// Values come from defaults, an optional policyradar.yaml, POLICYRADAR_*
// environment variables and a .env file, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration. It is constructed once by Load
// and passed explicitly to the orchestrator; nothing mutates it afterwards.
type Config struct {
	App      App      `mapstructure:"app"`
	Fetch    Fetch    `mapstructure:"fetch"`
	Pipeline Pipeline `mapstructure:"pipeline"`
	Output   Output   `mapstructure:"output"`
	Health   Health   `mapstructure:"health"`
}

// App holds general application settings.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	DataDir  string `mapstructure:"data_dir"`
	LogDir   string `mapstructure:"log_dir"`
	CacheDir string `mapstructure:"cache_dir"`
	BackupDir string `mapstructure:"backup_dir"`
	ExportDir string `mapstructure:"export_dir"`
	CI       bool   `mapstructure:"ci"` // derived from GITHUB_ACTIONS at load time
}

// Fetch holds HTTP client and scheduler settings.
type Fetch struct {
	Workers           int           `mapstructure:"workers"`
	GovConcurrency    int           `mapstructure:"gov_concurrency"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	BackoffBase       time.Duration `mapstructure:"backoff_base"`
	RunBudget         time.Duration `mapstructure:"run_budget"`
	PerHostLimit      int           `mapstructure:"per_host_limit"`
	RetryAfterHours   int           `mapstructure:"retry_after_hours"`
}

// Pipeline holds collection caps and thresholds.
type Pipeline struct {
	MaxFeeds          int     `mapstructure:"max_feeds"`
	MaxPerFeed        int     `mapstructure:"max_per_feed"`
	MaxPerPage        int     `mapstructure:"max_per_page"`
	MaxGoogleNews     int     `mapstructure:"max_google_news"`
	MinRelevance      float64 `mapstructure:"min_relevance"`
	FreshnessDays     int     `mapstructure:"freshness_days"`
	Fresh             bool    `mapstructure:"fresh"` // disable duplicate suppression
	RetentionDays     int     `mapstructure:"retention_days"`
}

// Output holds artifact paths.
type Output struct {
	SiteDir   string `mapstructure:"site_dir"`
	IndexPath string `mapstructure:"index_path"`
	Export    bool   `mapstructure:"export"`
	Filter    string `mapstructure:"filter"`
}

// Health holds feed-health gating settings.
type Health struct {
	FailureThreshold int `mapstructure:"failure_threshold"`
	RetryAfterHours  int `mapstructure:"retry_after_hours"`
}

// Load reads configuration from the given file (or the default search path)
// and returns the resulting record. CI mode is detected from GITHUB_ACTIONS
// here, at construction time.
func Load(configFile string) (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
		}
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName("policyradar")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix("POLICYRADAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		applyCIMode(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.debug", false)
	v.SetDefault("app.data_dir", "data")
	v.SetDefault("app.log_dir", "logs")
	v.SetDefault("app.cache_dir", "cache")
	v.SetDefault("app.backup_dir", "backup")
	v.SetDefault("app.export_dir", "exports")

	v.SetDefault("fetch.workers", 6)
	v.SetDefault("fetch.gov_concurrency", 3)
	v.SetDefault("fetch.timeout", 60*time.Second)
	v.SetDefault("fetch.max_retries", 5)
	v.SetDefault("fetch.backoff_base", 1*time.Second)
	v.SetDefault("fetch.run_budget", 300*time.Second)
	v.SetDefault("fetch.per_host_limit", 2)
	v.SetDefault("fetch.retry_after_hours", 24)

	v.SetDefault("pipeline.max_feeds", 0)
	v.SetDefault("pipeline.max_per_feed", 20)
	v.SetDefault("pipeline.max_per_page", 30)
	v.SetDefault("pipeline.max_google_news", 150)
	v.SetDefault("pipeline.min_relevance", 0.15)
	v.SetDefault("pipeline.freshness_days", 90)
	v.SetDefault("pipeline.fresh", false)
	v.SetDefault("pipeline.retention_days", 30)

	v.SetDefault("output.site_dir", "docs")
	v.SetDefault("output.index_path", filepath.Join("docs", "index.html"))
	v.SetDefault("output.export", false)
	v.SetDefault("output.filter", "")

	v.SetDefault("health.failure_threshold", 5)
	v.SetDefault("health.retry_after_hours", 24)
}

// applyCIMode shrinks the run footprint for continuous-integration runs:
// fewer workers, tighter timeouts and a shorter wall-clock budget.
func applyCIMode(cfg *Config) {
	cfg.App.CI = true
	if cfg.Fetch.Workers > 10 {
		cfg.Fetch.Workers = 10
	}
	if cfg.Fetch.Timeout > 30*time.Second {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	cfg.Fetch.RunBudget = 180 * time.Second
}

func validate(cfg *Config) error {
	if cfg.Fetch.Workers < 1 {
		return fmt.Errorf("fetch.workers must be at least 1, got %d", cfg.Fetch.Workers)
	}
	if cfg.Fetch.GovConcurrency < 1 {
		return fmt.Errorf("fetch.gov_concurrency must be at least 1, got %d", cfg.Fetch.GovConcurrency)
	}
	if cfg.Pipeline.MinRelevance < 0 || cfg.Pipeline.MinRelevance > 1 {
		return fmt.Errorf("pipeline.min_relevance must be in [0,1], got %f", cfg.Pipeline.MinRelevance)
	}
	return nil
}

// EnsureDirs creates the working directories the pipeline expects. Missing
// directories are created; existing ones are left alone.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		c.App.DataDir, c.App.LogDir, c.App.CacheDir,
		c.App.BackupDir, c.App.ExportDir, c.Output.SiteDir,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
