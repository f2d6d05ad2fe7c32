package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	AppHost     string
	AppPort     string
	AppEnv      string
	FrontendURL string
	LogDir      string
	LogLevel    string

	// DatabaseURLOverride is DATABASE_URL; when set it wins over the DB_* parts.
	DatabaseURLOverride string
	DB                  struct {
		Host     string
		Port     string
		User     string
		Password string
		Database string
		SSLMode  string
	}

	JWTSecret string
	JWTTTL    time.Duration

	TelegramBotToken string
	TelegramChatID   int64

	KafkaBrokers []string
	KafkaTopic   string

	SystemOwnerUsername string
	ManagerUsername     string
	ManagerPassword     string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	cfg := &Config{
		AppHost:             getEnv("APP_HOST", "0.0.0.0"),
		AppPort:             firstEnv("APP_PORT", "PORT", "8080"),
		AppEnv:              getEnv("APP_ENV", "development"),
		FrontendURL:         getEnv("FRONTEND_URL", "*"),
		LogDir:              getEnv("LOG_DIR", "log/app"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseURLOverride: getEnv("DATABASE_URL", ""),
		JWTSecret:           firstEnv("JWT_SECRET", "SESSION_SECRET", ""),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		KafkaBrokers:        ParseList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "shipment-requests"),
		SystemOwnerUsername: getEnv("SYSTEM_OWNER_USERNAME", "system"),
		ManagerUsername:     getEnv("MANAGER_USERNAME", ""),
		ManagerPassword:     getEnv("MANAGER_PASSWORD", ""),
	}
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = firstEnv("DB_USERNAME", "DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "")
	cfg.DB.Database = getEnv("DB_DATABASE", "logistics")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("config: JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	// A malformed chat id disables notifications like a missing one does.
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURLOverride == "" && (c.DB.Host == "" || c.DB.Database == "") {
		return errors.New("config: DATABASE_URL or DB_HOST and DB_DATABASE are required")
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.IsProduction() {
		if len(c.JWTSecret) < 32 {
			return errors.New("config: in production JWT_SECRET must be at least 32 bytes")
		}
		if c.DatabaseURLOverride == "" && c.DB.Password == "" {
			return errors.New("config: in production DB_PASSWORD is required")
		}
	}
	if c.JWTTTL <= 0 {
		return errors.New("config: JWT_TTL must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// TelegramEnabled reports whether both the bot token and chat id are present.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}

// DSN returns a connection string for the gorm postgres driver.
func (c *Config) DSN() string {
	if c.DatabaseURLOverride != "" {
		return c.DatabaseURLOverride
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) DatabaseURL() string {
	if c.DatabaseURLOverride != "" {
		return c.DatabaseURLOverride
	}
	pass := url.QueryEscape(c.DB.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DB.User, pass, c.DB.Host, c.DB.Port, c.DB.Database, c.DB.SSLMode)
}

func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

// ParseList splits "a, b,c" into trimmed non-empty parts.
func ParseList(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// firstEnv returns the first non-empty variable among keys; the last argument is the default.
func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	for _, k := range keysAndDef[:len(keysAndDef)-1] {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return def
}
