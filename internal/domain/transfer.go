package domain

import "github.com/shopspring/decimal"

// TransferStatus represents the modelled result of a transfer attempt
type TransferStatus string

const (
	TransferStatusSuccess TransferStatus = "success"
	TransferStatusFailed  TransferStatus = "failed"
)

// BeneficiarySnapshot is a copy of the beneficiary display fields taken at submission time
type BeneficiarySnapshot struct {
	Name   string
	Avatar string
}

// TransferOutcome represents the synthetic result of a simulated transfer
// FailureReason is set if and only if Status is TransferStatusFailed.
type TransferOutcome struct {
	Status        TransferStatus
	Amount        decimal.Decimal
	Beneficiary   BeneficiarySnapshot
	TransactionID string
	Timestamp     string // Display formatted, e.g. "Mon, Oct 19, 3:04 PM"
	FailureReason string
}

// Succeeded reports whether the outcome is a success
func (o TransferOutcome) Succeeded() bool {
	return o.Status == TransferStatusSuccess
}

// Title returns the heading shown on the transaction detail screen
func (o TransferOutcome) Title() string {
	if o.Succeeded() {
		return "Transfer Successful"
	}
	return "Transfer Failed"
}

// FormattedAmount renders the amount with a dollar sign and exactly two decimals
func (o TransferOutcome) FormattedAmount() string {
	return "$" + o.Amount.StringFixed(2)
}
