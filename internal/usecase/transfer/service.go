package transfer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/wealthflow-wallet/internal/domain"
	"github.com/simaogato/wealthflow-wallet/internal/usecase/keypad"
)

// ErrNothingToSend is returned when the entry holds no amount or an amount above the balance
var ErrNothingToSend = errors.New("amount must be positive and within the available balance")

// TransferService handles the send money flow
type TransferService struct {
	BeneficiaryRepo domain.BeneficiaryRepository
	Generator       *Generator
	Latency         time.Duration // Cosmetic delay standing in for a network call
}

// NewTransferService creates a new TransferService instance
func NewTransferService(
	beneficiaryRepo domain.BeneficiaryRepository,
	generator *Generator,
	latency time.Duration,
) *TransferService {
	return &TransferService{
		BeneficiaryRepo: beneficiaryRepo,
		Generator:       generator,
		Latency:         latency,
	}
}

// Directory returns the beneficiary directory in display order
func (s *TransferService) Directory(ctx context.Context) ([]domain.Beneficiary, error) {
	directory, err := s.BeneficiaryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	return directory, nil
}

// SelectBeneficiary makes id the selected beneficiary of the directory and of the entry
func (s *TransferService) SelectBeneficiary(ctx context.Context, entry *keypad.Entry, id string) error {
	if err := s.BeneficiaryRepo.Select(ctx, id); err != nil {
		return fmt.Errorf("failed to select beneficiary %q: %w", id, err)
	}
	entry.Select(id)
	return nil
}

// AddBeneficiary adds a new recipient to the directory behind the "Add New" tile
func (s *TransferService) AddBeneficiary(ctx context.Context, name, avatar string) (*domain.Beneficiary, error) {
	beneficiary := &domain.Beneficiary{
		ID:     uuid.NewString(),
		Name:   name,
		Avatar: avatar,
	}

	if err := beneficiary.Validate(); err != nil {
		return nil, err
	}

	if err := s.BeneficiaryRepo.Create(ctx, beneficiary); err != nil {
		return nil, fmt.Errorf("failed to create beneficiary: %w", err)
	}

	return beneficiary, nil
}

// Send submits the entry and returns the simulated outcome
// Logic:
//  0. Reject an empty, zero or over-balance amount, leaving the entry untouched
//  1. Snapshot the directory
//  2. Wait the cosmetic latency (cancelling ctx aborts and leaves the entry untouched)
//  3. Generate the outcome for the entry's amount and beneficiary
//  4. Reset the entry so the surface reopens empty
func (s *TransferService) Send(ctx context.Context, entry *keypad.Entry) (*domain.TransferOutcome, error) {
	if !entry.CanSend() {
		return nil, ErrNothingToSend
	}

	directory, err := s.Directory(ctx)
	if err != nil {
		return nil, err
	}

	if err := wait(ctx, s.Latency); err != nil {
		return nil, fmt.Errorf("transfer cancelled: %w", err)
	}

	outcome := s.Generator.Generate(entry.BeneficiaryID(), entry.Value(), directory)

	if outcome.Succeeded() {
		log.Printf("transfer %s: %s to %q succeeded (entry %s)",
			outcome.TransactionID, outcome.FormattedAmount(), outcome.Beneficiary.Name, entry.ID)
	} else {
		log.Printf("transfer %s: %s to %q failed: %s (entry %s)",
			outcome.TransactionID, outcome.FormattedAmount(), outcome.Beneficiary.Name, outcome.FailureReason, entry.ID)
	}

	entry.Reset()
	return &outcome, nil
}

// wait blocks for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsCancelled reports whether err was caused by the caller giving up on a pending transfer
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
