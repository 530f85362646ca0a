package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	defaultAvailableBalance = "56980.00"
	defaultTransferLatency  = 2 * time.Second
	defaultLoginLatency     = 1500 * time.Millisecond
	defaultBeneficiaryID    = "2"
)

// Config holds the settings of the wallet demo
type Config struct {
	AvailableBalance     decimal.Decimal // Ceiling for amount entry
	TransferLatency      time.Duration
	LoginLatency         time.Duration
	RandomSeed           int64 // Zero seeds from the clock
	DefaultBeneficiaryID string
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// maxAvailableBalance keeps the balance within exact display range
var maxAvailableBalance = decimal.NewFromInt(999_999_999_999_999)

// Load reads the configuration from the environment, falling back to defaults
func Load() Config {
	return Config{
		AvailableBalance:     getBalanceEnv("WALLET_AVAILABLE_BALANCE"),
		TransferLatency:      GetDurationEnv("WALLET_TRANSFER_LATENCY", defaultTransferLatency),
		LoginLatency:         GetDurationEnv("WALLET_LOGIN_LATENCY", defaultLoginLatency),
		RandomSeed:           GetInt64Env("WALLET_RANDOM_SEED", 0),
		DefaultBeneficiaryID: GetEnv("WALLET_DEFAULT_BENEFICIARY", defaultBeneficiaryID),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetInt64Env returns an int64 environment variable or a default value.
func GetInt64Env(key string, defaultVal int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable (e.g. "1500ms") or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil && d >= 0 {
			return d
		}
	}
	return defaultVal
}

// GetDecimalEnv returns a non-negative decimal environment variable or a default value.
func GetDecimalEnv(key string, defaultVal decimal.Decimal) decimal.Decimal {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := decimal.NewFromString(val); err == nil && !d.IsNegative() {
			return d
		}
	}
	return defaultVal
}

// getBalanceEnv reads the available balance, falling back to the default above maxAvailableBalance
func getBalanceEnv(key string) decimal.Decimal {
	fallback := decimal.RequireFromString(defaultAvailableBalance)
	balance := GetDecimalEnv(key, fallback)
	if balance.GreaterThan(maxAvailableBalance) {
		log.Printf("%s=%s exceeds %s, using %s", key, balance, maxAvailableBalance, fallback)
		return fallback
	}
	return balance
}
