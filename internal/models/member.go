package models

import (
	"strings"
	"time"
)

// CommunityMember represents a newsletter/community signup
type CommunityMember struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Interests []string  `json:"interests,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
	IsActive  bool      `json:"is_active"`
}

// MemberFilter holds filtering options for listing community members
type MemberFilter struct {
	Email    string
	Page     int
	PageSize int
}

// Validate performs basic validation on member data
func (m *CommunityMember) Validate() error {
	if m.Email == "" {
		return ErrInvalidInput("email is required")
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidInput("email is invalid")
	}
	if m.Name == "" {
		return ErrInvalidInput("name is required")
	}
	return nil
}
