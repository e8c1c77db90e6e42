package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	Delivery DeliveryConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Addr string
	Env  string // "dev" or "prod"; controls gin mode and log format
}

type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

type DeliveryConfig struct {
	FlatFee int64 // flat delivery fee added to every order
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	ttlHours, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	fee, _ := strconv.ParseInt(getEnv("DELIVERY_FEE", "30"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "vendorhub"),
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8000"),
			Env:  getEnv("APP_ENV", "dev"),
		},
		Auth: AuthConfig{
			TokenSecret: getEnv("TOKEN_SECRET", ""),
			TokenTTL:    time.Duration(ttlHours) * time.Hour,
		},
		Delivery: DeliveryConfig{
			FlatFee: fee,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
