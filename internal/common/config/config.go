// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Notion     NotionConfig     `mapstructure:"notion"`
	Discord    DiscordConfig    `mapstructure:"discord"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Dedup      DedupConfig      `mapstructure:"dedup"`
	Properties PropertiesConfig `mapstructure:"properties"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`  // milliseconds
	WriteTimeout int `mapstructure:"write_timeout"` // milliseconds
}

// NotionConfig holds settings for the Notion API and the issues database filter.
type NotionConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	APIVersion       string `mapstructure:"api_version"`
	Token            string `mapstructure:"token"`
	IssuesDatabaseID string `mapstructure:"issues_database_id"`
	Timeout          int    `mapstructure:"timeout"` // milliseconds
}

// DiscordConfig holds the outbound webhook settings for the notification channel.
type DiscordConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
	Timeout    int    `mapstructure:"timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DedupConfig controls the already-notified marker written per page.
type DedupConfig struct {
	KeyPrefix string `mapstructure:"key_prefix"`
	TTLHours  int    `mapstructure:"ttl_hours"`
}

// PropertyRef names a single Notion page property and its declared type.
type PropertyRef struct {
	Name string `mapstructure:"name" json:"name"`
	Type string `mapstructure:"type" json:"type"`
}

// PropertiesConfig lists the page properties that gate and fill the notification.
// Required properties must all extract to a value before a page is forwarded;
// optional ones are included in the message when present.
type PropertiesConfig struct {
	Required []PropertyRef `mapstructure:"required"`
	Optional []PropertyRef `mapstructure:"optional"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
