package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultAPIBaseURL = "http://67.205.142.104:3000/api"

const (
	FlashMemory = "memory"
	FlashRedis  = "redis"
)

type Config struct {
	App   AppConfig
	API   APIConfig
	UI    UIConfig
	Flash FlashConfig
	Redis RedisConfig
	Log   LogConfig

	// MockAPI solo lo usa cmd/mockapi.
	MockAPI MockAPIConfig
}

type AppConfig struct {
	Port string
	Name string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UIConfig struct {
	// Tiempo que un diálogo de resultado queda visible antes de cerrarse/navegar.
	DismissDelay time.Duration
}

type FlashConfig struct {
	Backend string // memory | redis
	TTL     time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

type MockAPIConfig struct {
	Port  string
	DBDSN string
}

// Load lee la configuración desde un .env opcional y variables de entorno.
// Las variables de entorno siempre ganan sobre el archivo.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if strings.TrimSpace(envFile) != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Port: v.GetString("PORT"),
			Name: v.GetString("APP_NAME"),
		},
		API: APIConfig{
			BaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("API_BASE_URL")), "/"),
			Timeout: v.GetDuration("HTTP_TIMEOUT"),
		},
		UI: UIConfig{
			DismissDelay: v.GetDuration("DIALOG_DISMISS_DELAY"),
		},
		Flash: FlashConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("FLASH_BACKEND"))),
			TTL:     v.GetDuration("FLASH_TTL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		MockAPI: MockAPIConfig{
			Port:  v.GetString("MOCKAPI_PORT"),
			DBDSN: v.GetString("DB_DSN"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_NAME", "vet-clinic-admin")
	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("DIALOG_DISMISS_DELAY", "1500ms")
	v.SetDefault("FLASH_BACKEND", FlashMemory)
	v.SetDefault("FLASH_TTL", "1m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("MOCKAPI_PORT", "3000")
}

func (c *Config) validate() error {
	u, err := url.ParseRequestURI(c.API.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("config: invalid API_BASE_URL %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return errors.New("config: HTTP_TIMEOUT must be positive")
	}
	if c.UI.DismissDelay < 0 {
		return errors.New("config: DIALOG_DISMISS_DELAY must not be negative")
	}
	switch c.Flash.Backend {
	case FlashMemory, FlashRedis:
	default:
		return fmt.Errorf("config: unknown FLASH_BACKEND %q", c.Flash.Backend)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
