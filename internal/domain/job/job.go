package job

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
)

type Job struct {
	ID               common.UUID `json:"id"`
	CompanyID        common.UUID `json:"company_id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Requirements     []string    `json:"requirements,omitempty"`
	Responsibilities []string    `json:"responsibilities,omitempty"`
	SalaryMin        *int        `json:"salary_min,omitempty"`
	SalaryMax        *int        `json:"salary_max,omitempty"`
	Location         string      `json:"location,omitempty"`
	IsRemote         bool        `json:"is_remote"`
	EmploymentType   string      `json:"employment_type"`
	ExperienceLevel  string      `json:"experience_level"`
	IsActive         bool        `json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Filter narrows the public listing. Zero values mean "no constraint".
type Filter struct {
	Search         string
	Location       string
	EmploymentType string
	RemoteOnly     bool
	Limit          int
	Offset         int
}

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListActive(ctx context.Context, filter Filter) ([]Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	SetActive(ctx context.Context, id common.UUID, active bool) (*Job, error)
	Delete(ctx context.Context, id common.UUID) error
	Count(ctx context.Context, activeOnly bool) (int, error)
}
