package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	LogLevel         string
	HTTPAddr         string
	DirectoryBackend string
	DirectoryFile    string
	PostgresDSN      string
	SessionBackend   string
	RedisAddr        string
	SessionTTL       time.Duration
	ReplyDelay       time.Duration
	CORSOrigins      []string
}

var (
	cfg  *Config
	once sync.Once
)

// Load reads the configuration once per process. A .env file in the working
// directory is applied first; real environment variables win over it.
func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		c, err := FromEnv()
		if err != nil {
			panic("Invalid config: " + err.Error())
		}
		cfg = c
	})
	return cfg
}

// FromEnv builds and validates a Config from the current environment without
// touching the process-wide singleton.
func FromEnv() (*Config, error) {
	c := &Config{
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8088"),
		DirectoryBackend: getEnv("DIRECTORY_BACKEND", "file"),
		DirectoryFile:    getEnv("DIRECTORY_FILE", "data/Users.csv"),
		PostgresDSN:      getEnv("POSTGRES_DSN", ""),
		SessionBackend:   getEnv("SESSION_BACKEND", "memory"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		SessionTTL:       getDuration("SESSION_TTL", 12*time.Hour),
		ReplyDelay:       getDuration("REPLY_DELAY", time.Second),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	switch c.DirectoryBackend {
	case "file":
		if c.DirectoryFile == "" {
			return errors.New("DIRECTORY_FILE is required when DIRECTORY_BACKEND=file")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when DIRECTORY_BACKEND=postgres")
		}
	default:
		return errors.New("DIRECTORY_BACKEND must be one of: file, postgres")
	}
	switch c.SessionBackend {
	case "memory":
	case "redis":
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when SESSION_BACKEND=redis")
		}
	default:
		return errors.New("SESSION_BACKEND must be one of: memory, redis")
	}
	if c.ReplyDelay < 0 {
		return errors.New("REPLY_DELAY must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go duration strings ("750ms", "2s"). Unparseable values
// fall back to the default.
func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
