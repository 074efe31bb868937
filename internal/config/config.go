package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	JWTSecret         string
	AuthBaseURL       string
	AuthAPIKey        string
	CatalogPath       string
	CatalogDetailPath string
	DetailScenarioIDs []string
	DashboardCacheTTL time.Duration
	LoginRateLimit    int
	LoginRateWindow   time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SAFEZARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "SafeZard API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("catalog.path", "data/scenarios.json")
	v.SetDefault("catalog.detail_path", "data/PC1scenario.json")
	v.SetDefault("catalog.detail_ids", "PC1,lab_chemical_spill")
	v.SetDefault("dashboard.cache_ttl", "2m")
	v.SetDefault("login.rate_limit", 10)
	v.SetDefault("login.rate_window", "1m")

	ttl, err := time.ParseDuration(v.GetString("dashboard.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid dashboard cache ttl: %w", err)
	}

	window, err := time.ParseDuration(v.GetString("login.rate_window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid login rate window: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		JWTSecret:         v.GetString("jwt.secret"),
		AuthBaseURL:       v.GetString("auth.base_url"),
		AuthAPIKey:        v.GetString("auth.api_key"),
		CatalogPath:       v.GetString("catalog.path"),
		CatalogDetailPath: v.GetString("catalog.detail_path"),
		DetailScenarioIDs: splitList(v.GetString("catalog.detail_ids")),
		DashboardCacheTTL: ttl,
		LoginRateLimit:    v.GetInt("login.rate_limit"),
		LoginRateWindow:   window,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url must be provided")
	}

	if cfg.AuthBaseURL == "" {
		return Config{}, fmt.Errorf("auth base url must be provided")
	}

	return cfg, nil
}

func splitList(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
