package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server      ServerConfig
	App         AppConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	GoogleOAuth GoogleOAuthConfig
	OpenAI      OpenAIConfig
	Redis       RedisConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Name        string
	Environment string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// DatabaseConfig carries the Postgres connection settings. An empty DSN means
// the application runs against in-memory storage (demo mode).
type DatabaseConfig struct {
	DSN             string
	Host            string
	Port            int
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type GoogleOAuthConfig struct {
	Enabled      bool
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// OpenAIConfig gates the AI endpoints. Enabled follows the presence of the
// API key, mirroring how the HTTP layer decides between a real call and a
// 503 response.
type OpenAIConfig struct {
	APIKey      string
	ChatModel   string
	VisionModel string
}

func (o OpenAIConfig) Enabled() bool {
	return o.APIKey != ""
}

type RedisConfig struct {
	Addr string
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		App: AppConfig{
			Name:        getEnv("APP_NAME", "smartfinance"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			TTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		GoogleOAuth: GoogleOAuthConfig{
			Enabled:      getEnvBool("GOOGLE_OAUTH_ENABLED", false),
			ClientID:     getEnv("GOOGLE_OAUTH_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_OAUTH_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_OAUTH_REDIRECT_URL", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			VisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4o"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
	}

	cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName = parseDatabaseURL(cfg.Database.DSN)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		if c.App.IsProduction() {
			return fmt.Errorf("config: JWT_SECRET is required in production")
		}
		c.JWT.Secret = "smartfinance-dev-secret"
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	if c.Database.DSN == "" && c.App.IsProduction() {
		return fmt.Errorf("config: DATABASE_URL is required in production")
	}
	if c.GoogleOAuth.Enabled && c.GoogleOAuth.ClientID == "" {
		return fmt.Errorf("config: GOOGLE_OAUTH_CLIENT_ID is required when GOOGLE_OAUTH_ENABLED=true")
	}
	return nil
}

// parseDatabaseURL extracts host, port and database name for log context.
// Credentials never leave the DSN.
func parseDatabaseURL(dsn string) (string, int, string) {
	if dsn == "" {
		return "", 0, ""
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", 0, ""
	}
	port := 5432
	if p := u.Port(); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			port = n
		}
	}
	return u.Hostname(), port, strings.TrimPrefix(u.Path, "/")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
