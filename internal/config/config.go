package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"rentalbilling/internal/billing"
)

const devJWTSecret = "default_super_secret_key"

// Config is loaded once at startup and passed explicitly to whoever needs it.
type Config struct {
	Port    string `validate:"required,numeric"`
	GinMode string `validate:"omitempty,oneof=debug release test"`

	DB       DB
	Redis    Redis
	LogLevel string `validate:"omitempty,oneof=debug info warn error"`

	CORSOrigins []string `validate:"dive,url"`
	JWTSecret   string   `validate:"required,min=8"`

	Currency billing.Currency
	Locale   string `validate:"required"`
	Company  billing.Company
}

type DB struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required,min=1,max=65535"`
	User     string `validate:"required"`
	Password string
	Name     string `validate:"required"`
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// Redis is optional; without an address idempotency keys live in process memory.
type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"min=0"`
}

type currencyRules struct {
	Code string `validate:"required,len=3,alpha"`
}

// Load reads configs/.env when present, then the process environment, and validates the result.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{"configs/.env"}
	}
	// A missing file is fine: the environment may carry everything.
	_ = godotenv.Load(envFiles...)

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: os.Getenv("GIN_MODE"),
		DB: DB{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Currency: billing.Currency{
			Code:   strings.ToUpper(getEnv("CURRENCY_CODE", "EUR")),
			Symbol: getEnv("CURRENCY_SYMBOL", "€"),
			Name:   getEnv("CURRENCY_NAME", "Euro"),
		},
		Locale: getEnv("LOCALE", "fr"),
		Company: billing.Company{
			Name:      os.Getenv("COMPANY_NAME"),
			Street:    os.Getenv("COMPANY_STREET"),
			ZipCode:   os.Getenv("COMPANY_ZIP"),
			Locality:  os.Getenv("COMPANY_LOCALITY"),
			Country:   os.Getenv("COMPANY_COUNTRY"),
			Phone:     os.Getenv("COMPANY_PHONE"),
			VATNumber: os.Getenv("COMPANY_VAT_NUMBER"),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			return nil, fmt.Errorf("JWT_SECRET is required in release mode")
		}
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags and the currency code.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validate.Struct(currencyRules{Code: c.Currency.Code}); err != nil {
		return fmt.Errorf("invalid CURRENCY_CODE %q: %w", c.Currency.Code, err)
	}
	return nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// BillingSettings assembles the pricing configuration handed to every quote.
// curve and taxes are the current defaults; either may be empty.
func (c *Config) BillingSettings(curve *billing.DegressiveRateCurve, taxes []billing.FlatTax) billing.Settings {
	return billing.Settings{
		Currency:       c.Currency,
		Locale:         c.Locale,
		Company:        c.Company,
		DegressiveRate: curve,
		Taxes:          taxes,
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
