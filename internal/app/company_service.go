package app

import (
	"context"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/company"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type CompanyService struct {
	repo   company.Repository
	admins security.AdminPolicy
}

func NewCompanyService(repo company.Repository, admins security.AdminPolicy) *CompanyService {
	return &CompanyService{repo: repo, admins: admins}
}

func (s *CompanyService) ListActive(ctx context.Context) ([]company.Company, error) {
	return s.repo.ListActive(ctx)
}

func (s *CompanyService) Get(ctx context.Context, id common.UUID) (*company.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CompanyService) Create(ctx context.Context, c company.Company, actorEmail string) (*company.Company, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	c.IsActive = true
	return s.repo.Create(ctx, c)
}

func (s *CompanyService) Update(ctx context.Context, c company.Company, actorEmail string) (*company.Company, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, common.NewError(common.CodeValidation, "name is required", nil)
	}
	return s.repo.Update(ctx, c)
}

// Delete removes a company along with every job posted under it.
func (s *CompanyService) Delete(ctx context.Context, id common.UUID, actorEmail string) error {
	if !s.admins.IsAdmin(actorEmail) {
		return common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	return s.repo.Delete(ctx, id)
}

func (s *CompanyService) ListAll(ctx context.Context, actorEmail string) ([]company.Company, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	return s.repo.ListAll(ctx)
}
