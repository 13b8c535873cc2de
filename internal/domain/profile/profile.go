package profile

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
)

// Profile is the candidate-facing record keyed by the auth user id.
type Profile struct {
	UserID       common.UUID `json:"user_id"`
	FullName     string      `json:"full_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	Location     string      `json:"location,omitempty"`
	ResumeURL    string      `json:"resume_url,omitempty"`
	PortfolioURL string      `json:"portfolio_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type Repository interface {
	Upsert(ctx context.Context, p Profile) (*Profile, error)
	GetByUserID(ctx context.Context, userID common.UUID) (*Profile, error)
}
