// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// SQLite database file written by the importer.
	DBPath string

	// Directory walked for sale CSV files.
	DataDir string

	// Event location attributes. An empty Venue falls back to the
	// path-based venue lookup per file.
	Venue string
	City  string
	State string

	// Quality scorer weights.
	PriceWeight     float64
	ClearanceWeight float64

	Debug bool

	// PostgreSQL – used only by cmd/migrate.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DB_PATH", "db.sqlite")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("VENUE", "TD Garden")
	v.SetDefault("CITY", "Boston")
	v.SetDefault("STATE", "MA")
	v.SetDefault("PRICE_WEIGHT", 0.7)
	v.SetDefault("CLEARANCE_WEIGHT", 0.3)
	v.SetDefault("DEBUG", false)
	v.SetDefault("DB_USER", "sammy")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "ticketdata")
	v.SetDefault("DB_SSLMODE", "disable")

	cfg := &Config{
		DBPath:          v.GetString("DB_PATH"),
		DataDir:         v.GetString("DATA_DIR"),
		Venue:           v.GetString("VENUE"),
		City:            v.GetString("CITY"),
		State:           v.GetString("STATE"),
		PriceWeight:     v.GetFloat64("PRICE_WEIGHT"),
		ClearanceWeight: v.GetFloat64("CLEARANCE_WEIGHT"),
		Debug:           v.GetBool("DEBUG"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// ValidatePostgres ensures the PostgreSQL settings needed by cmd/migrate are
// present. The importer itself never needs them.
func (c *Config) ValidatePostgres() {
	if c.DatabaseURL == "" && c.DBPass == "" {
		log.Fatal("config: DATABASE_URL or DB_PASS must be set")
	}
}

func (c *Config) validate() {
	if c.DBPath == "" {
		log.Fatal("config: DB_PATH must be set")
	}
	if c.PriceWeight < 0 || c.ClearanceWeight < 0 {
		log.Fatal("config: PRICE_WEIGHT and CLEARANCE_WEIGHT must be non-negative")
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}
