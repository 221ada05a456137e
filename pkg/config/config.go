package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "venturelink"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Service   ServiceConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Password  PasswordConfig
	Scheduler SchedulerConfig
	Assistant AssistantConfig
	Flags     FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VENTURELINK_APP_ENV" required:"true"`
	Port         string `envconfig:"VENTURELINK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VENTURELINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VENTURELINK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"VENTURELINK_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"VENTURELINK_DB_DSN"`
	Driver string `envconfig:"VENTURELINK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"VENTURELINK_DB_HOST"`
	LegacyPort     int    `envconfig:"VENTURELINK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"VENTURELINK_DB_USER"`
	LegacyPassword string `envconfig:"VENTURELINK_DB_PASSWORD"`
	LegacyName     string `envconfig:"VENTURELINK_DB_NAME"`
	LegacySSLMode  string `envconfig:"VENTURELINK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"VENTURELINK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"VENTURELINK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"VENTURELINK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"VENTURELINK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite dialector should be used.
func (d DBConfig) IsSQLite() bool {
	return strings.EqualFold(d.Driver, "sqlite")
}

func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" || d.IsSQLite() {
		return nil
	}
	if d.LegacyHost == "" || d.LegacyUser == "" || d.LegacyName == "" {
		return fmt.Errorf("either VENTURELINK_DB_DSN or host/user/name parts are required")
	}
	userInfo := url.User(d.LegacyUser)
	if d.LegacyPassword != "" {
		userInfo = url.UserPassword(d.LegacyUser, d.LegacyPassword)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", d.LegacyHost, d.LegacyPort),
		Path:     d.LegacyName,
		RawQuery: "sslmode=" + d.LegacySSLMode,
	}
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"VENTURELINK_REDIS_URL" required:"true"`
	Password     string        `envconfig:"VENTURELINK_REDIS_PASSWORD"`
	DB           int           `envconfig:"VENTURELINK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VENTURELINK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VENTURELINK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VENTURELINK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VENTURELINK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VENTURELINK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"VENTURELINK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"VENTURELINK_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"VENTURELINK_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"VENTURELINK_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the redis session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"VENTURELINK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"VENTURELINK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"VENTURELINK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"VENTURELINK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"VENTURELINK_ARGON_KEY_LEN" default:"32"`
}

type SchedulerConfig struct {
	Interval time.Duration `envconfig:"VENTURELINK_SCHEDULER_INTERVAL" default:"1m"`
	LockTTL  time.Duration `envconfig:"VENTURELINK_SCHEDULER_LOCK_TTL" default:"5m"`
	LockKey  string        `envconfig:"VENTURELINK_SCHEDULER_LOCK_KEY" default:"venturelink:scheduler:lock"`
}

type AssistantConfig struct {
	APIKey  string        `envconfig:"VENTURELINK_OPENAI_API_KEY"`
	BaseURL string        `envconfig:"VENTURELINK_OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model   string        `envconfig:"VENTURELINK_OPENAI_MODEL" default:"gpt-4o-mini"`
	Timeout time.Duration `envconfig:"VENTURELINK_OPENAI_TIMEOUT" default:"20s"`
}

// Enabled reports whether live assistant calls are configured.
func (a AssistantConfig) Enabled() bool {
	return a.APIKey != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"VENTURELINK_AUTO_MIGRATE" default:"false"`
}
