package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
)

// DefaultBeneficiaryID is the beneficiary preselected when the transfer screen opens
const DefaultBeneficiaryID = "2"

// Beneficiaries is the directory shown on the transfer screen, "Add New" tile first
func Beneficiaries() []domain.Beneficiary {
	return []domain.Beneficiary{
		{ID: domain.AddNewBeneficiaryID, Name: "Add New", Avatar: "plus"},
		{ID: "1", Name: "Theresa Webb", Avatar: "avatar1"},
		{ID: DefaultBeneficiaryID, Name: "Kathryn Murphy", Avatar: "avatar2", Selected: true},
		{ID: "3", Name: "Kristin Watson", Avatar: "avatar3"},
		{ID: "4", Name: "Esther Howard", Avatar: "avatar4"},
	}
}

// Activities is the recent activity feed shown on the home screen
func Activities() []domain.Activity {
	return []domain.Activity{
		{ID: "1", Title: "Grocery Shopping", Amount: decimal.NewFromInt(438), Timestamp: "Today, 12:30 pm", Type: domain.ActivityTypeOutgoing, Category: "shopping"},
		{ID: "2", Title: "Salary Deposit", Amount: decimal.NewFromInt(1200), Timestamp: "Today, 12:30 pm", Type: domain.ActivityTypeIncoming, Category: "salary"},
		{ID: "3", Title: "Netflix Subscription", Amount: decimal.NewFromInt(15), Timestamp: "Today, 12:30 pm", Type: domain.ActivityTypeOutgoing, Category: "entertainment"},
		{ID: "4", Title: "Freelance Payment", Amount: decimal.NewFromInt(786), Timestamp: "Today, 12:30 pm", Type: domain.ActivityTypeIncoming, Category: "work"},
		{ID: "5", Title: "Restaurant Payment", Amount: decimal.NewFromInt(55), Timestamp: "Today, 12:30 pm", Type: domain.ActivityTypeOutgoing, Category: "food"},
	}
}

// SupportAgents is the contact list shown on the chat screen
func SupportAgents() []domain.SupportAgent {
	return []domain.SupportAgent{
		{ID: "1", Name: "Sarah Johnson", Role: "Financial Advisor", Avatar: "avatar1", Online: true, LastMessage: "Hello! How can I help you today?", LastMessageTime: "2m ago"},
		{ID: "2", Name: "Michael Chen", Role: "Account Manager", Avatar: "avatar2", Online: true, LastMessage: "Your account has been updated", LastMessageTime: "1h ago"},
		{ID: "3", Name: "Emma Wilson", Role: "Support Specialist", Avatar: "avatar3", Online: false, LastMessage: "Thank you for your patience", LastMessageTime: "2h ago"},
		{ID: "4", Name: "James Rodriguez", Role: "Investment Advisor", Avatar: "avatar4", Online: false, LastMessage: "Let me check that for you", LastMessageTime: "1d ago"},
	}
}

// FixtureSeeder loads the static fixtures the screens display
type FixtureSeeder struct {
	beneficiaryRepo domain.BeneficiaryRepository
	activityRepo    domain.ActivityRepository
	agentRepo       domain.SupportAgentRepository
}

// NewFixtureSeeder creates a new FixtureSeeder instance
func NewFixtureSeeder(
	beneficiaryRepo domain.BeneficiaryRepository,
	activityRepo domain.ActivityRepository,
	agentRepo domain.SupportAgentRepository,
) *FixtureSeeder {
	return &FixtureSeeder{
		beneficiaryRepo: beneficiaryRepo,
		activityRepo:    activityRepo,
		agentRepo:       agentRepo,
	}
}

// Seed ensures every fixture exists
// A fixture that is already present is left untouched, so Seed can run more than once.
func (s *FixtureSeeder) Seed(ctx context.Context) error {
	for _, beneficiary := range Beneficiaries() {
		_, err := s.beneficiaryRepo.GetByID(ctx, beneficiary.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := beneficiary.Validate(); err != nil {
			return fmt.Errorf("invalid beneficiary fixture %q: %w", beneficiary.ID, err)
		}
		if err := s.beneficiaryRepo.Create(ctx, &beneficiary); err != nil {
			return err
		}
	}

	for _, activity := range Activities() {
		_, err := s.activityRepo.GetByID(ctx, activity.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := activity.Validate(); err != nil {
			return fmt.Errorf("invalid activity fixture %q: %w", activity.ID, err)
		}
		if err := s.activityRepo.Create(ctx, &activity); err != nil {
			return err
		}
	}

	for _, agent := range SupportAgents() {
		_, err := s.agentRepo.GetByID(ctx, agent.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := agent.Validate(); err != nil {
			return fmt.Errorf("invalid support agent fixture %q: %w", agent.ID, err)
		}
		if err := s.agentRepo.Create(ctx, &agent); err != nil {
			return err
		}
	}

	return nil
}
