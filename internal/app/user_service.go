package app

import (
	"context"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/user"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type UserService struct {
	users  user.Repository
	admins security.AdminPolicy
}

func NewUserService(users user.Repository, admins security.AdminPolicy) *UserService {
	return &UserService{users: users, admins: admins}
}

func (s *UserService) ListAll(ctx context.Context, actorEmail string) ([]user.User, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	return s.users.ListAll(ctx)
}

// Ensure mirrors an identity from the hosted auth provider into the
// local users table on first sight. An existing row wins.
func (s *UserService) Ensure(ctx context.Context, userID common.UUID, email string) (*user.User, error) {
	existing, err := s.users.GetByID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.users.Create(ctx, user.User{ID: userID, Email: email})
	if err != nil {
		if common.Is(err, common.CodeConflict) {
			return s.users.GetByEmail(ctx, email)
		}
		return nil, err
	}
	return created, nil
}
