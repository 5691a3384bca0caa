package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AppName is used for the default registry location under the user's
// config directory.
const AppName = "compete"

// Config holds the full application configuration.
type Config struct {
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Fetch    FetchConfig    `yaml:"fetch" mapstructure:"fetch"`
	News     NewsConfig     `yaml:"news" mapstructure:"news"`
	Export   ExportConfig   `yaml:"export" mapstructure:"export"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// RegistryConfig configures the competitor registry backend.
type RegistryConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	Path   string `yaml:"path" mapstructure:"path"`
}

// FetchConfig configures outbound HTTP behavior.
type FetchConfig struct {
	UserAgent        string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs      int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimitDelayMs int    `yaml:"rate_limit_delay_ms" mapstructure:"rate_limit_delay_ms"`
}

// Timeout returns the per-request timeout as a duration.
func (c FetchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// RateLimitDelay returns the minimum spacing between outbound requests.
func (c FetchConfig) RateLimitDelay() time.Duration {
	return time.Duration(c.RateLimitDelayMs) * time.Millisecond
}

// NewsConfig configures the news search feed.
type NewsConfig struct {
	FeedBaseURL string `yaml:"feed_base_url" mapstructure:"feed_base_url"`
}

// ExportConfig configures default export output.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("COMPETE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("registry.driver", "file")
	v.SetDefault("fetch.user_agent", "CompetitiveAnalysis/0.1 (Research Tool)")
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.rate_limit_delay_ms", 1000)
	v.SetDefault("news.feed_base_url", "https://news.google.com/rss/search")
	v.SetDefault("export.output_dir", "./output")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if cfg.Registry.Path == "" {
		cfg.Registry.Path = DefaultRegistryPath(cfg.Registry.Driver)
	}

	return &cfg, nil
}

// DefaultRegistryPath returns the registry location for a driver under
// the XDG config home.
func DefaultRegistryPath(driver string) string {
	name := "competitors.json"
	if driver == "sqlite" {
		name = "competitors.db"
	}
	return filepath.Join(xdg.ConfigHome, AppName, name)
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
