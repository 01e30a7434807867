package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env       string `env:"ENV" env-required:"true"`
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"3001"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	// BodyLimit caps incoming request bodies, 10MB by default.
	BodyLimit int64 `env:"HTTP_BODY_LIMIT" env-default:"10485760"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-required:"true"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-required:"true"`
	Password       string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database       string        `env:"POSTGRES_DATABASE" env-required:"true"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	MaxConns       int32         `env:"POSTGRES_MAX_CONNS" env-default:"10"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

type CORSConfig struct {
	Origin string `env:"CORS_ORIGIN" env-default:"http://localhost:3000"`
}

type RateLimitConfig struct {
	Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"15m"`
	Max    int64         `env:"RATE_LIMIT_MAX" env-default:"100"`
}
