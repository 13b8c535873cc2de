package app

import (
	"context"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/profile"
)

type ProfileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) Get(ctx context.Context, userID common.UUID) (*profile.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *ProfileService) Upsert(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	if strings.TrimSpace(p.FullName) == "" {
		return nil, common.NewError(common.CodeValidation, "full_name is required", nil)
	}
	if strings.TrimSpace(p.Email) == "" {
		return nil, common.NewError(common.CodeValidation, "email is required", nil)
	}
	return s.repo.Upsert(ctx, p)
}
