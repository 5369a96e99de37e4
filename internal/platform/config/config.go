package config

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// defaultVaultSeed is the opening cash position used when VAULT_SEED is not
// configured. Quantities are per currency code, with LOCAL for local cash.
const defaultVaultSeed = `{"USD": 10000, "EUR": 5000, "GBP": 5000, "LOCAL": 500000}`

// defaultRateSeed keeps a freshly initialized desk quoting until an
// administrator replaces the catalog.
const defaultRateSeed = `{"USD": {"buy": "1.00", "sell": "1.02"}, "EUR": {"buy": "0.90", "sell": "0.92"}, "GBP": {"buy": "0.80", "sell": "0.82"}}`

// RateSeed is one configured fallback quote for the rate catalog.
type RateSeed struct {
	Buy  decimal.Decimal `json:"buy"`
	Sell decimal.Decimal `json:"sell"`
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// VaultSeed is the exchange desk's opening position. Holdings are
	// always this seed folded over the recorded history.
	VaultSeed map[string]decimal.Decimal

	// SeedRatesWhenEmpty controls whether a never-written rate catalog
	// resolves to DefaultRates instead of an empty table.
	SeedRatesWhenEmpty bool

	// DefaultRates is the fallback quote set a never-written catalog
	// resolves to, keyed by currency code.
	DefaultRates map[string]RateSeed

	// LowStockPacks is the dashboard threshold: items with fewer storage
	// units than this remaining are flagged as low stock.
	LowStockPacks int64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("VAULT_SEED", defaultVaultSeed)
	viper.SetDefault("SEED_RATES_WHEN_EMPTY", true)
	viper.SetDefault("DEFAULT_RATES", defaultRateSeed)
	viper.SetDefault("LOW_STOCK_PACKS", 5)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
		// Consider returning an error depending on requirements
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.SeedRatesWhenEmpty = viper.GetBool("SEED_RATES_WHEN_EMPTY")

	cfg.LowStockPacks = viper.GetInt64("LOW_STOCK_PACKS")
	if cfg.LowStockPacks < 0 {
		log.Printf("Warning: LOW_STOCK_PACKS is negative (%d). Defaulting to 5.\n", cfg.LowStockPacks)
		cfg.LowStockPacks = 5
	}

	seedJSON := viper.GetString("VAULT_SEED")
	if seedJSON == "" {
		seedJSON = defaultVaultSeed
	}
	if err := json.Unmarshal([]byte(seedJSON), &cfg.VaultSeed); err != nil {
		return nil, fmt.Errorf("invalid VAULT_SEED: %w", err)
	}

	ratesJSON := viper.GetString("DEFAULT_RATES")
	if ratesJSON == "" {
		ratesJSON = defaultRateSeed
	}
	if err := json.Unmarshal([]byte(ratesJSON), &cfg.DefaultRates); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_RATES: %w", err)
	}

	return cfg, nil
}
