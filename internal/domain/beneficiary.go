package domain

import "errors"

// AddNewBeneficiaryID is the reserved directory entry rendered as the "Add New" tile
const AddNewBeneficiaryID = "new"

// Beneficiary represents a transfer recipient in the static directory
type Beneficiary struct {
	ID       string // Unique and stable within the directory
	Name     string
	Avatar   string // Asset reference, not a URL
	Selected bool   // At most one beneficiary in a directory is selected
}

// Validate ensures the beneficiary adheres to domain rules
// Returns an error if validation fails
func (b *Beneficiary) Validate() error {
	if b.ID == "" {
		return errors.New("beneficiary id cannot be empty")
	}

	if b.Name == "" {
		return errors.New("beneficiary name cannot be empty")
	}

	return nil
}

// Snapshot copies the display fields of the beneficiary
func (b *Beneficiary) Snapshot() BeneficiarySnapshot {
	return BeneficiarySnapshot{
		Name:   b.Name,
		Avatar: b.Avatar,
	}
}

// FindBeneficiary looks up a beneficiary by ID in a directory
// Returns nil when the ID is absent
func FindBeneficiary(directory []Beneficiary, id string) *Beneficiary {
	for i := range directory {
		if directory[i].ID == id {
			return &directory[i]
		}
	}
	return nil
}
