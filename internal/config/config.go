package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/weiawesome/library-id/internal/generator"
	pkgconfig "github.com/weiawesome/library-id/pkg/config"
)

type Config struct {
	Server    ServerConfig
	Snowflake SnowflakeConfig
	NanoID    NanoIDConfig `mapstructure:"nanoid"`
	CUID2     CUID2Config  `mapstructure:"cuid2"`
	Catalog   CatalogConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type SnowflakeConfig struct {
	MachineID int64 `mapstructure:"machine_id"`
	Epoch     int64
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size"`
	Alphabet string `mapstructure:"alphabet"`
}

type CUID2Config struct {
	Length int `mapstructure:"length"`
}

// CatalogConfig points at the remote catalog backend. An empty BaseURL
// disables book registration.
type CatalogConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIToken       string `mapstructure:"api_token"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout for catalog calls.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RateLimitConfig limits API requests per client IP. RPS <= 0 disables it.
// TrustProxyHeaders takes the client IP from X-Forwarded-For/X-Real-IP before
// the connection address; enable it only behind a proxy that overwrites them.
type RateLimitConfig struct {
	RPS               float64 `mapstructure:"rps"`
	TrustProxyHeaders bool    `mapstructure:"trust_proxy_headers"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load("./config", "config", ".env")
	if err != nil {
		return nil, err
	}

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("snowflake.machine_id", 1)
	v.SetDefault("snowflake.epoch", generator.DefaultSnowflakeEpoch)
	v.SetDefault("nanoid.size", generator.DefaultBarcodeSize)
	v.SetDefault("nanoid.alphabet", generator.DefaultBarcodeAlphabet)
	v.SetDefault("cuid2.length", generator.DefaultMemberCardLength)
	v.SetDefault("catalog.base_url", "")
	v.SetDefault("catalog.api_token", "")
	v.SetDefault("catalog.timeout_seconds", 10)
	v.SetDefault("rate_limit.rps", 20)
	v.SetDefault("rate_limit.trust_proxy_headers", false)
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	for key, env := range map[string]string{
		"server.port":                    "PORT",
		"snowflake.machine_id":           "SNOWFLAKE_MACHINE_ID",
		"nanoid.size":                    "NANOID_SIZE",
		"nanoid.alphabet":                "NANOID_ALPHABET",
		"cuid2.length":                   "CUID2_LENGTH",
		"catalog.base_url":               "CATALOG_BASE_URL",
		"catalog.api_token":              "CATALOG_API_TOKEN",
		"rate_limit.rps":                 "RATE_LIMIT_RPS",
		"rate_limit.trust_proxy_headers": "RATE_LIMIT_TRUST_PROXY_HEADERS",
		"log.level":                      "LOG_LEVEL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// comma-separated origins from the environment arrive as one element
	if len(cfg.CORS.AllowOrigins) == 1 {
		cfg.CORS.AllowOrigins = strings.Split(cfg.CORS.AllowOrigins[0], ",")
	}
	cfg.Catalog.BaseURL = strings.TrimRight(cfg.Catalog.BaseURL, "/")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Catalog.TimeoutSeconds <= 0 {
		return fmt.Errorf("catalog.timeout_seconds must be positive, got %d", c.Catalog.TimeoutSeconds)
	}
	return nil
}
