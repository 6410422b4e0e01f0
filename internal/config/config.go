package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	timex "github.com/ferdiebergado/kubodir/internal/pkg/time"
)

type App struct {
	Name    string `json:"name,omitempty" env:"APP_NAME" env-default:"user-directory"`
	Version string `json:"version,omitempty" env:"APP_VERSION" env-default:"1.0.0"`
	Env     string `json:"env,omitempty" env:"ENV" env-default:"development"`
}

type GRPC struct {
	Port                 int            `json:"port,omitempty" env:"GRPC_PORT" env-default:"50051"`
	MaxWorkers           int            `json:"max_workers,omitempty" env:"GRPC_MAX_WORKERS" env-default:"10"`
	MaxConcurrentStreams int            `json:"max_concurrent_streams,omitempty" env-default:"1000"`
	MaxMsgBytes          int            `json:"max_msg_bytes,omitempty" env-default:"52428800"`
	KeepaliveTime        timex.Duration `json:"keepalive_time,omitempty"`
	KeepaliveTimeout     timex.Duration `json:"keepalive_timeout,omitempty"`
	ShutdownTimeout      timex.Duration `json:"shutdown_timeout,omitempty" env:"GRPC_SHUTDOWN_TIMEOUT"`
}

type HTTP struct {
	Port         int            `json:"port,omitempty" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout  timex.Duration `json:"idle_timeout,omitempty"`
}

type Log struct {
	Level string `json:"level,omitempty" env:"LOG_LEVEL" env-default:"info"`
}

type DB struct {
	// Driver is either "postgres" or "memory".
	Driver          string         `json:"driver,omitempty" env:"DB_DRIVER" env-default:"postgres"`
	Host            string         `json:"host,omitempty" env:"DB_HOST" env-default:"localhost"`
	Port            int            `json:"port,omitempty" env:"DB_PORT" env-default:"5432"`
	User            string         `json:"user,omitempty" env:"DB_USER" env-default:"postgres"`
	Pass            string         `json:"-" env:"DB_PASS"`
	Name            string         `json:"name,omitempty" env:"DB_NAME" env-default:"users"`
	SSLMode         string         `json:"ssl_mode,omitempty" env:"DB_SSLMODE" env-default:"disable"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty" env-default:"25"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty" env-default:"5"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
	Migrate         bool           `json:"migrate,omitempty" env:"DB_MIGRATE"`
}

// DSN builds the pgx connection string.
func (d DB) DSN() string {
	const dsnFmt = "postgres://%s:%s@%s:%d/%s?sslmode=%s"
	return fmt.Sprintf(dsnFmt, d.User, d.Pass, d.Host, d.Port, d.Name, d.SSLMode)
}

type Cache struct {
	// Addr is empty when caching is disabled.
	Addr string         `json:"addr,omitempty" env:"REDIS_ADDR"`
	Pass string         `json:"-" env:"REDIS_PASS"`
	DB   int            `json:"db,omitempty" env:"REDIS_DB"`
	TTL  timex.Duration `json:"ttl,omitempty" env:"REDIS_TTL"`
}

func (c Cache) Enabled() bool {
	return c.Addr != ""
}

type Events struct {
	// Brokers is empty when event publishing is disabled.
	Brokers []string `json:"brokers,omitempty" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `json:"topic,omitempty" env:"KAFKA_TOPIC" env-default:"user-events"`
}

func (e Events) Enabled() bool {
	return len(e.Brokers) > 0
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty" env-default:"65536"`
	Iterations uint32 `json:"iterations,omitempty" env-default:"3"`
	Threads    uint8  `json:"threads,omitempty" env-default:"2"`
	SaltLength uint32 `json:"salt_length,omitempty" env-default:"16"`
	KeyLength  uint32 `json:"key_length,omitempty" env-default:"32"`
}

type Auth struct {
	// Enabled turns on bearer token verification for inbound calls.
	Enabled bool   `json:"enabled,omitempty" env:"AUTH_ENABLED"`
	Issuer  string `json:"issuer,omitempty" env:"AUTH_ISSUER"`
}

type Health struct {
	Interval timex.Duration `json:"interval,omitempty"`
	Timeout  timex.Duration `json:"timeout,omitempty"`
}

type Config struct {
	App    App    `json:"app"`
	GRPC   GRPC   `json:"grpc"`
	HTTP   HTTP   `json:"http"`
	Log    Log    `json:"log"`
	DB     DB     `json:"db"`
	Cache  Cache  `json:"cache"`
	Events Events `json:"events"`
	Argon2 Argon2 `json:"argon2"`
	Auth   Auth   `json:"auth"`
	Health Health `json:"health"`

	// Key peppers password hashes and signs caller tokens.
	Key string `json:"-" env:"KEY"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("grpc", c.GRPC),
		slog.Any("http", c.HTTP),
		slog.Any("log", c.Log),
		slog.String("db_driver", c.DB.Driver),
		slog.String("db_host", c.DB.Host),
		slog.String("db_name", c.DB.Name),
		slog.Bool("cache", c.Cache.Enabled()),
		slog.Any("events", c.Events),
		slog.Any("argon2", c.Argon2),
		slog.Bool("auth", c.Auth.Enabled),
		slog.Any("health", c.Health),
	)
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load reads the JSON config file then applies environment variables on top of it.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfgFile = filepath.Clean(cfgFile)

	var cfg Config
	if err := cleanenv.ReadConfig(cfgFile, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	setDefaultDurations(&cfg)

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", &cfg))
	return &cfg, nil
}

// FromEnv builds the config without a file, used when no config file is shipped.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}

	setDefaultDurations(&cfg)
	return &cfg, nil
}

func setDefaultDurations(cfg *Config) {
	defaults := []struct {
		d   *timex.Duration
		val time.Duration
	}{
		{&cfg.GRPC.KeepaliveTime, 10 * time.Second},
		{&cfg.GRPC.KeepaliveTimeout, 5 * time.Second},
		{&cfg.GRPC.ShutdownTimeout, 5 * time.Second},
		{&cfg.HTTP.ReadTimeout, 5 * time.Second},
		{&cfg.HTTP.WriteTimeout, 10 * time.Second},
		{&cfg.HTTP.IdleTimeout, 60 * time.Second},
		{&cfg.DB.ConnMaxIdleTime, 5 * time.Minute},
		{&cfg.DB.ConnMaxLifetime, 30 * time.Minute},
		{&cfg.DB.PingTimeout, 5 * time.Second},
		{&cfg.Cache.TTL, 30 * time.Second},
		{&cfg.Health.Interval, 15 * time.Second},
		{&cfg.Health.Timeout, 2 * time.Second},
	}

	for _, def := range defaults {
		if def.d.Duration == 0 {
			def.d.Duration = def.val
		}
	}
}
