package configs

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Feed     FeedConfig     `mapstructure:"feed" validate:"required"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FeedConfig holds the behavioral-analytics feed endpoint configuration.
// Token is a secret: it is left out of the config file and supplied via the
// BI_FEED_TOKEN environment variable.
type FeedConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	Token          string `mapstructure:"token" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,min=1"`
}

// SnapshotConfig holds the snapshot refresh policy and chart shaping knobs.
type SnapshotConfig struct {
	WindowDays       int `mapstructure:"window_days" validate:"required,min=1,max=90"`
	StalenessSeconds int `mapstructure:"staleness_seconds" validate:"required,min=1"`
	RetryMax         int `mapstructure:"retry_max" validate:"min=0,max=5"`
	TopN             int `mapstructure:"top_n" validate:"required,min=1"`
	TrendBuckets     int `mapstructure:"trend_buckets" validate:"required,min=1,max=90"`
}
