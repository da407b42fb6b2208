package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "fmcommerce"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv         = "FMCOMMERCE_APP_ENV"
	EnvPort           = "FMCOMMERCE_APP_PORT"
	EnvCatalogBaseURL = "FMCOMMERCE_CATALOG_BASE_URL"
	EnvStoragePath    = "FMCOMMERCE_STORAGE_PATH"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Storage StorageConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Catalog.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FMCOMMERCE_APP_ENV" required:"true"`
	Port         string `envconfig:"FMCOMMERCE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FMCOMMERCE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FMCOMMERCE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig points at the remote product catalog API.
type CatalogConfig struct {
	BaseURL string        `envconfig:"FMCOMMERCE_CATALOG_BASE_URL" default:"https://fakestoreapi.com"`
	Timeout time.Duration `envconfig:"FMCOMMERCE_CATALOG_TIMEOUT" default:"10s"`
}

func (c CatalogConfig) validate() error {
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("%s must be an http(s) URL, got %q", EnvCatalogBaseURL, c.BaseURL)
	}
	return nil
}

// StorageConfig controls the durable key/value store backing cart and theme
// persistence. An empty path keeps state in memory only.
type StorageConfig struct {
	Path string `envconfig:"FMCOMMERCE_STORAGE_PATH" default:"fmcommerce.db"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"FMCOMMERCE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
