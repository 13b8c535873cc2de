package user

import (
	"context"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
)

// User is the authenticated identity. The portal has no role table;
// admin privileges come from an email allowlist (internal/security).
type User struct {
	ID        common.UUID `json:"id"`
	Email     string      `json:"email"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, u User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}
