package company

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
)

type Company struct {
	ID          common.UUID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Website     string      `json:"website,omitempty"`
	LogoURL     string      `json:"logo_url,omitempty"`
	Category    string      `json:"category,omitempty"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, c Company) (*Company, error)
	Update(ctx context.Context, c Company) (*Company, error)
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	ListActive(ctx context.Context) ([]Company, error)
	ListAll(ctx context.Context) ([]Company, error)
	Delete(ctx context.Context, id common.UUID) error
	Count(ctx context.Context) (int, error)
}
