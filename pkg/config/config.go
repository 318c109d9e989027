package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Backend      BackendConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Backend.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KTUCRM_APP_ENV" required:"true"`
	Port         string `envconfig:"KTUCRM_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"KTUCRM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KTUCRM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// BackendConfig locates the remote REST backend every page loader and
// service talks to.
type BackendConfig struct {
	BaseURL        string        `envconfig:"KTUCRM_BACKEND_BASE_URL" required:"true"`
	RequestTimeout time.Duration `envconfig:"KTUCRM_BACKEND_REQUEST_TIMEOUT" default:"10s"`
}

func (b BackendConfig) validate() error {
	parsed, err := url.Parse(b.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing backend base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend base url %q must be absolute", b.BaseURL)
	}
	if b.RequestTimeout <= 0 {
		return fmt.Errorf("backend request timeout must be positive")
	}
	return nil
}

// RedisConfig backs the durable layout store. Optional: when URL is
// empty the app falls back to in-memory persistence.
type RedisConfig struct {
	URL          string        `envconfig:"KTUCRM_REDIS_URL"`
	Address      string        `envconfig:"KTUCRM_REDIS_ADDR"`
	Password     string        `envconfig:"KTUCRM_REDIS_PASSWORD"`
	DB           int           `envconfig:"KTUCRM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KTUCRM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"KTUCRM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"KTUCRM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KTUCRM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"KTUCRM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type FeatureFlagsConfig struct {
	// PermissionCheckEnabled gates the menu access predicate. The
	// predicate historically always granted access; the flag keeps
	// that behavior visible and toggleable instead of silently fixed.
	PermissionCheckEnabled bool `envconfig:"KTUCRM_PERMISSION_CHECK_ENABLED" default:"false"`
}
