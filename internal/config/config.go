package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	RedisAddr     string `env:"REDIS_ADDR"`

	BotToken         string `env:"BOT_TOKEN"`
	BotWebhookSecret string `env:"BOT_WEBHOOK_SECRET"`

	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`

	ShortestAPIToken string `env:"SHORTEST_API_TOKEN"`
	CPAGripUserID    string `env:"CPAGRIP_USER_ID"`
	CPAGripAPIKey    string `env:"CPAGRIP_API_KEY"`
}

func LoadConfig() (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.BotToken == "" {
		return nil, errors.New("bot token is not set")
	}
	if conf.AdminJWTSecret == "" {
		return nil, errors.New("admin JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.RedisAddr, "r", "localhost:6379", "Redis address in format host:port")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		RedisAddr:     defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),

		BotToken:         envConfig.BotToken,
		BotWebhookSecret: envConfig.BotWebhookSecret,
		AdminJWTSecret:   envConfig.AdminJWTSecret,
		ShortestAPIToken: envConfig.ShortestAPIToken,
		CPAGripUserID:    envConfig.CPAGripUserID,
		CPAGripAPIKey:    envConfig.CPAGripAPIKey,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
