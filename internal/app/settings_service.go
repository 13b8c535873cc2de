package app

import (
	"context"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/settings"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type SettingsService struct {
	repo   settings.Repository
	admins security.AdminPolicy
}

func NewSettingsService(repo settings.Repository, admins security.AdminPolicy) *SettingsService {
	return &SettingsService{repo: repo, admins: admins}
}

func (s *SettingsService) Get(ctx context.Context, actorEmail string) (*settings.Settings, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	// The SMTP password never leaves the admin surface.
	current.SMTPPassword = ""
	return current, nil
}

func (s *SettingsService) Update(ctx context.Context, next settings.Settings, actorEmail string) (*settings.Settings, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if strings.TrimSpace(next.PortalName) == "" {
		return nil, common.NewError(common.CodeValidation, "portal_name is required", nil)
	}
	if next.SMTPPassword == "" {
		// Blank password in the payload means "keep the stored one".
		current, err := s.repo.Get(ctx)
		if err != nil {
			return nil, err
		}
		next.SMTPPassword = current.SMTPPassword
	}
	updated, err := s.repo.Update(ctx, next)
	if err != nil {
		return nil, err
	}
	updated.SMTPPassword = ""
	return updated, nil
}
