package analytics

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
)

type Event struct {
	ID        common.UUID       `json:"id"`
	Name      string            `json:"name"`
	UserID    *common.UUID      `json:"user_id,omitempty"`
	Payload   map[string]string `json:"payload,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, event Event) error
	CountSince(ctx context.Context, name string, since time.Time) (int, error)
}
