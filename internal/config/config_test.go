package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"WALLET_AVAILABLE_BALANCE",
		"WALLET_TRANSFER_LATENCY",
		"WALLET_LOGIN_LATENCY",
		"WALLET_RANDOM_SEED",
		"WALLET_DEFAULT_BENEFICIARY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.True(t, cfg.AvailableBalance.Equal(decimal.NewFromInt(56980)))
	assert.Equal(t, 2*time.Second, cfg.TransferLatency)
	assert.Equal(t, 1500*time.Millisecond, cfg.LoginLatency)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Equal(t, "2", cfg.DefaultBeneficiaryID)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("WALLET_AVAILABLE_BALANCE", "100.50")
	t.Setenv("WALLET_TRANSFER_LATENCY", "0s")
	t.Setenv("WALLET_LOGIN_LATENCY", "250ms")
	t.Setenv("WALLET_RANDOM_SEED", "42")
	t.Setenv("WALLET_DEFAULT_BENEFICIARY", "4")

	cfg := Load()

	assert.True(t, cfg.AvailableBalance.Equal(decimal.RequireFromString("100.5")))
	assert.Equal(t, time.Duration(0), cfg.TransferLatency)
	assert.Equal(t, 250*time.Millisecond, cfg.LoginLatency)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, "4", cfg.DefaultBeneficiaryID)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WALLET_AVAILABLE_BALANCE", "-5")
	t.Setenv("WALLET_TRANSFER_LATENCY", "soon")
	t.Setenv("WALLET_LOGIN_LATENCY", "-1s")
	t.Setenv("WALLET_RANDOM_SEED", "abc")

	cfg := Load()

	assert.True(t, cfg.AvailableBalance.Equal(decimal.NewFromInt(56980)))
	assert.Equal(t, 2*time.Second, cfg.TransferLatency)
	assert.Equal(t, 1500*time.Millisecond, cfg.LoginLatency)
	assert.Equal(t, int64(0), cfg.RandomSeed)
}

func TestLoad_BalanceAboveDisplayRangeFallsBack(t *testing.T) {
	t.Setenv("WALLET_AVAILABLE_BALANCE", "12345678901234567.89")
	assert.True(t, Load().AvailableBalance.Equal(decimal.NewFromInt(56980)))

	t.Setenv("WALLET_AVAILABLE_BALANCE", "999999999999999")
	assert.True(t, Load().AvailableBalance.Equal(decimal.NewFromInt(999_999_999_999_999)))
}
