package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration loaded from config.toml.
// Secrets (LINE credentials, JWT signing key) are never stored in the file;
// they are read from the environment in Load.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Line      LineConfig      `toml:"line"`
	Auth      AuthConfig      `toml:"auth"`
	Uploads   UploadsConfig   `toml:"uploads"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
	DB      int    `toml:"db"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type BookingConfig struct {
	// AutoConfirm creates new appointments directly in "confirmed" instead of
	// "pending". Off by default: the operator confirms each request.
	AutoConfirm bool `toml:"auto_confirm"`
	// OutboxPollSeconds is the notification dispatcher poll interval
	OutboxPollSeconds int `toml:"outbox_poll_seconds"`
	// OutboxMaxAttempts is how many delivery attempts a notification gets
	// before it is marked failed permanently
	OutboxMaxAttempts int `toml:"outbox_max_attempts"`
}

type LineConfig struct {
	// ChannelID is the LINE Login channel used to verify LIFF id tokens
	ChannelID string `toml:"channel_id"`
	// VerifyTimeout bounds the id-token verification call, in seconds
	VerifyTimeout int `toml:"verify_timeout"`
	// PushTimeout bounds push message delivery, in seconds
	PushTimeout int `toml:"push_timeout"`

	// From environment, never from the file
	ChannelAccessToken string `toml:"-"`
	ChannelSecret      string `toml:"-"`
}

type AuthConfig struct {
	// TokenTTLMinutes is the lifetime of issued operator session tokens
	TokenTTLMinutes int `toml:"token_ttl_minutes"`

	// JWTSecret comes from the environment
	JWTSecret string `toml:"-"`
}

type UploadsConfig struct {
	Dir            string `toml:"dir"`
	BaseURL        string `toml:"base_url"`
	ThumbnailWidth int    `toml:"thumbnail_width"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

// Load reads the TOML file, applies defaults and pulls secrets from the environment
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	cfg.Line.ChannelAccessToken = os.Getenv("LINE_CHANNEL_ACCESS_TOKEN")
	cfg.Line.ChannelSecret = os.Getenv("LINE_CHANNEL_SECRET")
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")

	// DB password may come from the environment in deployments that keep
	// config.toml in the repo
	if pw := os.Getenv("DB_PASSWORD"); pw != "" {
		cfg.Database.Password = pw
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "mb-beauty-service"
	}
	if cfg.Booking.OutboxPollSeconds == 0 {
		cfg.Booking.OutboxPollSeconds = 5
	}
	if cfg.Booking.OutboxMaxAttempts == 0 {
		cfg.Booking.OutboxMaxAttempts = 5
	}
	if cfg.Line.VerifyTimeout == 0 {
		cfg.Line.VerifyTimeout = 3
	}
	if cfg.Line.PushTimeout == 0 {
		cfg.Line.PushTimeout = 5
	}
	if cfg.Auth.TokenTTLMinutes == 0 {
		cfg.Auth.TokenTTLMinutes = 12 * 60
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "./uploads"
	}
	if cfg.Uploads.ThumbnailWidth == 0 {
		cfg.Uploads.ThumbnailWidth = 480
	}
	if cfg.RateLimit.RPS == 0 {
		cfg.RateLimit.RPS = 10
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 20
	}
}

func (cfg *Config) validate() error {
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return fmt.Errorf("config: database host and dbname are required")
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET environment variable is required")
	}
	return nil
}
