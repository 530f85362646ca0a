package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransferOutcome_Title(t *testing.T) {
	success := TransferOutcome{Status: TransferStatusSuccess}
	failed := TransferOutcome{Status: TransferStatusFailed, FailureReason: "Network error"}

	assert.True(t, success.Succeeded())
	assert.Equal(t, "Transfer Successful", success.Title())

	assert.False(t, failed.Succeeded())
	assert.Equal(t, "Transfer Failed", failed.Title())
}

func TestTransferOutcome_FormattedAmount(t *testing.T) {
	tests := []struct {
		amount decimal.Decimal
		want   string
	}{
		{decimal.NewFromInt(100), "$100.00"},
		{decimal.RequireFromString("5.5"), "$5.50"},
		{decimal.Zero, "$0.00"},
		{decimal.RequireFromString("56980"), "$56980.00"}, // no grouping on the detail screen
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			outcome := TransferOutcome{Amount: tt.amount}
			assert.Equal(t, tt.want, outcome.FormattedAmount())
		})
	}
}
