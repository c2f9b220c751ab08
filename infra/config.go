package infra

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const defaultSecretKey = "default-secret"

type DBConfig struct {
	Name       string
	Host       string
	User       string
	Password   string
	Port       string
	SQLitePath string
}

type AIConfig struct {
	APIKey string
	Model  string
}

// BlacklistRetention が 0 なら期限なしトークンのブラックリストは削除しない
type Config struct {
	Env                string
	Port               string
	APIPrefix          string
	LogLevel           string
	SecretKey          string
	TokenTTL           time.Duration
	BlacklistRetention time.Duration
	CORSOrigins        []string
	DB                 DBConfig
	AI                 AIConfig
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// LoadConfig は Initialize 済みの環境変数から設定を組み立てる
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:       getEnv("ENV", "dev"),
		APIPrefix: getEnv("API_PREFIX", "/api"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		SecretKey: os.Getenv("SECRET_KEY"),
		DB: DBConfig{
			Name:       os.Getenv("DB_NAME"),
			Host:       os.Getenv("DB_HOST"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Port:       getEnv("DB_PORT", "5432"),
			SQLitePath: getEnv("SQLITE_PATH", "grocery.db"),
		},
		AI: AIConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
	}

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = os.Getenv("AWS_LWA_PORT")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.SecretKey == "" {
		if cfg.IsProd() {
			return nil, fmt.Errorf("SECRET_KEY must be set when ENV=prod")
		}
		cfg.SecretKey = defaultSecretKey
	}

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL %q: %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if retention := os.Getenv("BLACKLIST_RETENTION"); retention != "" {
		d, err := time.ParseDuration(retention)
		if err != nil {
			return nil, fmt.Errorf("invalid BLACKLIST_RETENTION %q: %w", retention, err)
		}
		cfg.BlacklistRetention = d
	}

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	if !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
