// internal/common/config/loader.go
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

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like NOTION_TOKEN
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, e.g. config.production.yaml
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or the project root.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig falls back to well-known environment variables for
// secrets that are usually not committed to the YAML file.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Notion.Token == "" {
		if val := os.Getenv("NOTION_WEBHOOK_SECRET"); val != "" {
			cfg.Notion.Token = val
		}
	}
	if cfg.Notion.IssuesDatabaseID == "" {
		if val := os.Getenv("NOTION_ISSUES_DATABASE_ID"); val != "" {
			cfg.Notion.IssuesDatabaseID = val
		}
	}
	if cfg.Discord.WebhookURL == "" {
		if val := os.Getenv("DISCORD_LIVE_ISSUES_WEBHOOK_URL"); val != "" {
			cfg.Discord.WebhookURL = val
		}
	}
	if cfg.Database.Redis.Address == "" {
		host := os.Getenv("REDIS_HOST")
		port := os.Getenv("REDIS_PORT")
		if host != "" {
			if port == "" {
				port = "6379"
			}
			cfg.Database.Redis.Address = host + ":" + port
		}
	}
	if cfg.Server.Port == 0 {
		if val := os.Getenv("PORT"); val != "" {
			fmt.Sscanf(val, "%d", &cfg.Server.Port)
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "notion-relay"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0"
	}

	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15000
	}

	// Notion defaults
	if cfg.Notion.BaseURL == "" {
		cfg.Notion.BaseURL = "https://api.notion.com"
	}
	if cfg.Notion.APIVersion == "" {
		cfg.Notion.APIVersion = "2022-06-28"
	}
	if cfg.Notion.Timeout == 0 {
		cfg.Notion.Timeout = 10000
	}

	if cfg.Discord.Timeout == 0 {
		cfg.Discord.Timeout = 15000
	}

	// Dedup defaults: issue_<pageID>, expires after 7 days
	if cfg.Dedup.KeyPrefix == "" {
		cfg.Dedup.KeyPrefix = "issue_"
	}
	if cfg.Dedup.TTLHours == 0 {
		cfg.Dedup.TTLHours = 7 * 24
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required")
	}

	if cfg.Notion.Token == "" {
		return fmt.Errorf("notion.token is required")
	}
	if cfg.Notion.IssuesDatabaseID == "" {
		return fmt.Errorf("notion.issues_database_id is required")
	}

	for _, prop := range append(append([]PropertyRef{}, cfg.Properties.Required...), cfg.Properties.Optional...) {
		if prop.Name == "" || prop.Type == "" {
			return fmt.Errorf("properties entries need both name and type")
		}
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// DedupTTL returns the marker lifetime as a duration.
func (d DedupConfig) DedupTTL() time.Duration {
	return time.Duration(d.TTLHours) * time.Hour
}
