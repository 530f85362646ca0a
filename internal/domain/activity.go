package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ActivityType represents the direction of a home feed entry
type ActivityType string

const (
	ActivityTypeIncoming ActivityType = "incoming"
	ActivityTypeOutgoing ActivityType = "outgoing"
)

// Activity represents an entry of the recent activity feed on the home screen
type Activity struct {
	ID        string
	Title     string
	Amount    decimal.Decimal // ABSOLUTE VALUE, direction is carried by Type
	Timestamp string          // Display string, e.g. "Today, 12:30 pm"
	Type      ActivityType
	Category  string
}

// Validate ensures the activity adheres to domain rules
// Returns an error if validation fails
func (a *Activity) Validate() error {
	if a.ID == "" {
		return errors.New("activity id cannot be empty")
	}

	if a.Type != ActivityTypeIncoming && a.Type != ActivityTypeOutgoing {
		return errors.New("activity type must be incoming or outgoing")
	}

	if a.Amount.IsNegative() {
		return errors.New("activity amount must be an absolute value")
	}

	return nil
}

// SignedDisplayAmount renders the amount as shown in the feed, e.g. "+$1,200" or "-$438"
func (a *Activity) SignedDisplayAmount() string {
	sign := "-"
	if a.Type == ActivityTypeIncoming {
		sign = "+"
	}
	return sign + "$" + FormatLocaleNumber(a.Amount)
}
