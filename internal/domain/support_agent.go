package domain

import "errors"

// SupportAgent represents a support contact listed on the chat screen
type SupportAgent struct {
	ID              string
	Name            string
	Role            string
	Avatar          string
	Online          bool
	LastMessage     string
	LastMessageTime string // Relative display string, e.g. "2m ago"
}

// Validate ensures the agent adheres to domain rules
func (a *SupportAgent) Validate() error {
	if a.ID == "" {
		return errors.New("support agent id cannot be empty")
	}
	if a.Name == "" {
		return errors.New("support agent name cannot be empty")
	}
	return nil
}
