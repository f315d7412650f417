package config

import (
	"os"
	"strings"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	Session SessionConfig
	Log     LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type StoreConfig struct {
	// Path of the SQLite database file.
	Path string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type SessionConfig struct {
	// CookiesFile points at a JSON file of site session cookies. An
	// empty or missing file means the crawl runs unauthenticated.
	CookiesFile string
}

type LogConfig struct {
	Level    string
	FilePath string
}

func Load() (Config, error) {
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg := Config{}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "jobscout"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", "8080"),
	}

	cfg.Store = StoreConfig{
		Path: opt("DB_PATH", "jobscout.db"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	cfg.Session = SessionConfig{
		CookiesFile: opt("COOKIES_FILE", ""),
	}

	cfg.Log = LogConfig{
		Level:    opt("LOG_LEVEL", "info"),
		FilePath: opt("LOG_FILE", ""),
	}

	return cfg, nil
}
