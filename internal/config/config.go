package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/pix-brcode-service/internal/brcode"
	"github.com/anyulbade/pix-brcode-service/internal/qrcode"
)

type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool
	GinMode     string
	LogLevel    zerolog.Level

	MigrationsDir       string
	MerchantDefaultName string
	MerchantDefaultCity string
	QRDefaultSize       int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "pix"),
		DBPassword:  getEnv("DB_PASSWORD", "pix_secret"),
		DBName:      getEnv("DB_NAME", "pix"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		AutoMigrate: getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),

		MigrationsDir:       getEnv("MIGRATIONS_DIR", "file://migrations"),
		MerchantDefaultName: getEnv("MERCHANT_DEFAULT_NAME", brcode.DefaultMerchantName),
		MerchantDefaultCity: getEnv("MERCHANT_DEFAULT_CITY", brcode.DefaultMerchantCity),
		QRDefaultSize:       getEnvInt("QR_DEFAULT_SIZE", qrcode.DefaultSize),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("not an integer, using default")
		return fallback
	}
	return n
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
