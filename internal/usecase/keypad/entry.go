package keypad

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// Entry holds the state of an open amount entry surface.
// It is created empty, mutated per keypress and reset after submission or close.
// An Entry is not safe for concurrent use.
type Entry struct {
	ID uuid.UUID

	amount               domain.AmountString
	ceiling              decimal.Decimal
	beneficiaryID        string
	defaultBeneficiaryID string
}

// NewEntry opens an entry surface bounded by the available balance
func NewEntry(ceiling decimal.Decimal, defaultBeneficiaryID string) *Entry {
	return &Entry{
		ID:                   uuid.New(),
		ceiling:              ceiling,
		beneficiaryID:        defaultBeneficiaryID,
		defaultBeneficiaryID: defaultBeneficiaryID,
	}
}

// Press applies a keypad key and returns the resulting amount
func (e *Entry) Press(key string) domain.AmountString {
	e.amount = Press(e.amount, key, e.ceiling)
	return e.amount
}

// Amount returns the amount as typed
func (e *Entry) Amount() domain.AmountString {
	return e.amount
}

// Display returns the amount as rendered on the entry screen
func (e *Entry) Display() string {
	return ToDisplayString(e.amount)
}

// Value returns the numeric amount
func (e *Entry) Value() decimal.Decimal {
	return ToNumericValue(e.amount)
}

// Ceiling returns the available balance the entry is bounded by
func (e *Entry) Ceiling() decimal.Decimal {
	return e.ceiling
}

// ExceedsBalance reports whether the typed amount is above the ceiling.
// AppendDigit never lets this happen; the screen still checks it for the balance highlight.
func (e *Entry) ExceedsBalance() bool {
	return e.Value().GreaterThan(e.ceiling)
}

// CanSend reports whether the send button is enabled:
// a non-zero amount that satisfies the keypad invariants under the ceiling.
func (e *Entry) CanSend() bool {
	if e.Value().IsZero() {
		return false
	}
	return e.amount.Validate(e.ceiling) == nil
}

// SendLabel returns the caption of the send button, e.g. "Send $5.00"
func (e *Entry) SendLabel() string {
	return "Send $" + e.Value().StringFixed(2)
}

// Select records the beneficiary the transfer will be sent to
func (e *Entry) Select(beneficiaryID string) {
	e.beneficiaryID = beneficiaryID
}

// BeneficiaryID returns the selected beneficiary
func (e *Entry) BeneficiaryID() string {
	return e.beneficiaryID
}

// Reset clears the amount and selection and starts a new session
func (e *Entry) Reset() {
	e.ID = uuid.New()
	e.amount = ""
	e.beneficiaryID = e.defaultBeneficiaryID
}
