package application

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// All is the closed status set. Transitions between any two members are
// legal for an authorized reviewer; see ApplicationService.UpdateStatus.
func All() []Status {
	return []Status{StatusPending, StatusReviewing, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn}
}

func Known(status Status) bool {
	switch status {
	case StatusPending, StatusReviewing, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	default:
		return false
	}
}

type Application struct {
	ID             common.UUID `json:"id"`
	JobID          common.UUID `json:"job_id"`
	CandidateID    common.UUID `json:"candidate_id"`
	Status         Status      `json:"status"`
	CoverLetter    string      `json:"cover_letter,omitempty"`
	ResumeURL      string      `json:"resume_url,omitempty"`
	PortfolioURL   string      `json:"portfolio_url,omitempty"`
	AdditionalInfo string      `json:"additional_info,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	ReviewedBy     string      `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time  `json:"reviewed_at,omitempty"`
	AppliedAt      time.Time   `json:"applied_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*Application, error)
	List(ctx context.Context, status Status) ([]Application, error)
	ListByCandidate(ctx context.Context, candidateID common.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status, reviewedBy string, reviewedAt time.Time) (*Application, error)
	UpdateNotes(ctx context.Context, id common.UUID, notes string, reviewedBy string, reviewedAt time.Time) (*Application, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)
}
