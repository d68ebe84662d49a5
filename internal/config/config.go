package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Render cache drivers.
const (
	CacheNone     = "none"
	CachePostgres = "postgres"
	CacheBolt     = "bolt"
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	Server        Server        `yaml:"server"`
	GitLab        GitLab        `yaml:"gitlab"`
	Backend       Backend       `yaml:"backend"`
	Diagram       Diagram       `yaml:"diagram"`
	Cache         Cache         `yaml:"cache"`
	Postgres      Postgres      `yaml:"postgres"`
	Notifications Notifications `yaml:"notifications"`
}

type Server struct {
	Host            string        `yaml:"host" env:"SERVER_HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type GitLab struct {
	BaseURL string        `yaml:"base_url" env:"GITLAB_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Backend struct {
	BaseURL string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Diagram struct {
	RendererURL string        `yaml:"renderer_url" env:"DIAGRAM_RENDERER_URL"`
	SettleDelay time.Duration `yaml:"settle_delay" env-default:"50ms"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
}

type Cache struct {
	Driver   string `yaml:"driver" env:"CACHE_DRIVER" env-default:"none"`
	BoltPath string `yaml:"bolt_path" env:"CACHE_BOLT_PATH" env-default:"dashboard-cache.db"`
}

type Postgres struct {
	Username        string        `yaml:"username" env:"POSTGRES_USER"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST"`
	Port            string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Database        string        `yaml:"database" env:"POSTGRES_DB"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env-default:"1m"`
}

type Notifications struct {
	Debounce time.Duration `yaml:"debounce" env-default:"500ms"`
}

// DSN returns the lib/pq connection URL.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.Username, p.Password, p.Host, p.Port, p.Database,
	)
}

// Load reads the YAML file at CONFIG_PATH, with environment overrides. A
// .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot read .env: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	return LoadFile(configPath)
}

// LoadFile reads configuration from path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Cache.Driver {
	case CacheNone, CacheBolt:
	case CachePostgres:
		if c.Postgres.Host == "" || c.Postgres.Database == "" {
			return errors.New("postgres cache requires postgres.host and postgres.database")
		}
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}

	return nil
}
