package transfer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

const (
	// TransactionIDPrefix starts every generated transaction ID
	TransactionIDPrefix = "TXN"

	// TimestampLayout renders like en-US short weekday/month, e.g. "Mon, Oct 19, 3:04 PM"
	TimestampLayout = "Mon, Jan 2, 3:04 PM"

	transactionIDLength   = 9
	transactionIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// A draw at or below this value fails, giving a 70% success rate
	failureThreshold = 0.3
)

// FailureReasons lists the reasons a simulated transfer can fail with
var FailureReasons = []string{
	"Insufficient funds",
	"Network error",
	"Bank server timeout",
	"Transaction limit exceeded",
	"Security verification required",
}

// Generator manufactures synthetic transfer outcomes.
// Randomness and time are injected so both outcomes can be forced in tests.
type Generator struct {
	Rand  RandomSource
	Clock Clock
}

// NewGenerator creates a new Generator instance
func NewGenerator(rnd RandomSource, clock Clock) *Generator {
	return &Generator{
		Rand:  rnd,
		Clock: clock,
	}
}

// Generate produces the outcome of a simulated transfer to beneficiaryID
// Logic:
//   - Snapshot the beneficiary from the directory (empty fields when absent)
//   - Draw a uniform number in [0,1): success above the failure threshold
//   - On failure, pick a reason uniformly from FailureReasons
//   - Stamp a fresh TXN identifier and the current display time
//
// Generate never fails; a failed transfer is a modelled outcome, not an error.
func (g *Generator) Generate(beneficiaryID string, amount decimal.Decimal, directory []domain.Beneficiary) domain.TransferOutcome {
	var snapshot domain.BeneficiarySnapshot
	if beneficiary := domain.FindBeneficiary(directory, beneficiaryID); beneficiary != nil {
		snapshot = beneficiary.Snapshot()
	}

	outcome := domain.TransferOutcome{
		Status:      domain.TransferStatusSuccess,
		Amount:      amount,
		Beneficiary: snapshot,
	}

	if g.Rand.Float64() <= failureThreshold {
		outcome.Status = domain.TransferStatusFailed
		outcome.FailureReason = FailureReasons[g.Rand.Intn(len(FailureReasons))]
	}

	outcome.TransactionID = g.transactionID()
	outcome.Timestamp = FormatTimestamp(g.Clock.Now())

	return outcome
}

// transactionID returns the prefix followed by upper-case base-36 characters.
// Uniqueness is probabilistic; no collision check is made.
func (g *Generator) transactionID() string {
	var b strings.Builder
	b.Grow(len(TransactionIDPrefix) + transactionIDLength)
	b.WriteString(TransactionIDPrefix)
	for i := 0; i < transactionIDLength; i++ {
		b.WriteByte(transactionIDAlphabet[g.Rand.Intn(len(transactionIDAlphabet))])
	}
	return b.String()
}

// FormatTimestamp renders t for the transaction detail screen
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
