package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Source   SourceConfig
	DeepSeek DeepSeekConfig
	Files    FilesConfig
	Archive  ArchiveConfig
	Cache    CacheConfig
}

// ServerConfig holds configuration for the read-only API server
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SourceConfig holds the price-list document location
type SourceConfig struct {
	URL string `mapstructure:"url"`
}

// DeepSeekConfig holds enrichment API configuration
type DeepSeekConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	APIKeyFile   string        `mapstructure:"api_key_file"`
	BaseURL      string        `mapstructure:"base_url"`
	Model        string        `mapstructure:"model"`
	RequestDelay time.Duration `mapstructure:"request_delay"`
}

// FilesConfig holds the paths of the JSON artifacts the pipeline produces
type FilesConfig struct {
	Catalog      string `mapstructure:"catalog"`
	Encyclopedia string `mapstructure:"encyclopedia"`
	PIPIndex     string `mapstructure:"pip_index"`
}

// ArchiveConfig holds the run-history database location
type ArchiveConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds cache settings for the API server
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/oilwatch/")

	v.SetEnvPrefix("OILWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults carry the rest.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Source defaults
	v.SetDefault("source.url", "https://media.doterra.com/hk-otg/zh/brochures/hkotg-price-list.pdf")

	// DeepSeek defaults
	v.SetDefault("deepseek.base_url", "https://api.deepseek.com")
	v.SetDefault("deepseek.model", "deepseek-chat")
	v.SetDefault("deepseek.api_key_file", "deepseek_api_key.txt")
	v.SetDefault("deepseek.request_delay", "400ms")

	// File defaults match the published artifact names
	v.SetDefault("files.catalog", "doterra_products.json")
	v.SetDefault("files.encyclopedia", "encyclopedia.json")
	v.SetDefault("files.pip_index", "PIP.json")

	// Archive defaults
	v.SetDefault("archive.path", "oilwatch.db")

	// Cache defaults
	v.SetDefault("cache.ttl", "1m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Source.URL == "" {
		return fmt.Errorf("source URL is required (set OILWATCH_SOURCE_URL)")
	}

	if config.Files.Catalog == "" || config.Files.Encyclopedia == "" || config.Files.PIPIndex == "" {
		return fmt.Errorf("all artifact file paths are required")
	}

	if config.DeepSeek.RequestDelay < 0 {
		return fmt.Errorf("deepseek request delay must not be negative")
	}

	return nil
}

// ResolveAPIKey returns the enrichment API key, reading the key file when
// the key itself is not configured.
func (c *DeepSeekConfig) ResolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}

	if c.APIKeyFile == "" {
		return "", fmt.Errorf("DeepSeek API key is required (set OILWATCH_DEEPSEEK_API_KEY)")
	}

	data, err := os.ReadFile(c.APIKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file %s: %w", c.APIKeyFile, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file %s is empty", c.APIKeyFile)
	}
	return key, nil
}
