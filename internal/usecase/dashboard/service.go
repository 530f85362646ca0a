package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// RecentActivityLimit is the number of feed entries shown on the home screen
const RecentActivityLimit = 5

// ActivityLine is a feed entry ready for display
type ActivityLine struct {
	Title     string
	Timestamp string
	Category  string
	Type      domain.ActivityType
	Amount    string // Signed, e.g. "+$1,200"
}

// HomeSummary represents the data shown on the home screen
type HomeSummary struct {
	TotalBalance          decimal.Decimal
	FormattedBalance      string // "$56,980.00"
	AvailableBalanceLabel string // "Available balance: $56,980"
	RecentActivity        []ActivityLine
}

// DashboardService handles home screen operations
type DashboardService struct {
	ActivityRepo domain.ActivityRepository
	Balance      decimal.Decimal
	LoginLatency time.Duration // Cosmetic delay standing in for a sign-in call
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	activityRepo domain.ActivityRepository,
	balance decimal.Decimal,
	loginLatency time.Duration,
) *DashboardService {
	return &DashboardService{
		ActivityRepo: activityRepo,
		Balance:      balance,
		LoginLatency: loginLatency,
	}
}

// GetHome builds the home screen summary
// Logic:
//   - Balance: the fixed available balance, grouped as currency
//   - Activity: the most recent feed entries, signed by direction
func (s *DashboardService) GetHome(ctx context.Context) (*HomeSummary, error) {
	activities, err := s.ActivityRepo.List(ctx, RecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}

	lines := make([]ActivityLine, 0, len(activities))
	for _, activity := range activities {
		lines = append(lines, ActivityLine{
			Title:     activity.Title,
			Timestamp: activity.Timestamp,
			Category:  activity.Category,
			Type:      activity.Type,
			Amount:    activity.SignedDisplayAmount(),
		})
	}

	return &HomeSummary{
		TotalBalance:          s.Balance,
		FormattedBalance:      domain.FormatCurrency(s.Balance),
		AvailableBalanceLabel: "Available balance: $" + domain.FormatLocaleNumber(s.Balance),
		RecentActivity:        lines,
	}, nil
}

// SignIn simulates the login call and lands on the home screen.
// No credentials are checked.
func (s *DashboardService) SignIn(ctx context.Context) (*HomeSummary, error) {
	if s.LoginLatency > 0 {
		timer := time.NewTimer(s.LoginLatency)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("sign in cancelled: %w", ctx.Err())
		}
	}

	return s.GetHome(ctx)
}
