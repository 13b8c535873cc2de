package app

import (
	"context"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/analytics"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/job"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
	"github.com/rs/zerolog"
)

type JobService struct {
	repo      job.Repository
	admins    security.AdminPolicy
	analytics analytics.Repository
	logger    zerolog.Logger
}

func NewJobService(repo job.Repository, admins security.AdminPolicy, analyticsRepo analytics.Repository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, admins: admins, analytics: analyticsRepo, logger: logger}
}

func (s *JobService) record(ctx context.Context, event analytics.Event) {
	if err := s.analytics.Create(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("event", event.Name).Msg("analytics write failed")
	}
}

// Search is the public listing: active jobs only, optionally narrowed by
// title search, location, employment type, and remote flag.
func (s *JobService) Search(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.repo.ListActive(ctx, filter)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *JobService) Create(ctx context.Context, j job.Job, actorEmail string) (*job.Job, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if strings.TrimSpace(j.Title) == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if j.CompanyID.IsZero() {
		return nil, common.NewError(common.CodeValidation, "company_id is required", nil)
	}
	if strings.TrimSpace(j.Description) == "" {
		return nil, common.NewError(common.CodeValidation, "description is required", nil)
	}
	if j.EmploymentType == "" {
		return nil, common.NewError(common.CodeValidation, "employment_type is required", nil)
	}
	if j.ExperienceLevel == "" {
		return nil, common.NewError(common.CodeValidation, "experience_level is required", nil)
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return nil, common.NewError(common.CodeValidation, "salary_min exceeds salary_max", nil)
	}
	j.IsActive = true
	created, err := s.repo.Create(ctx, j)
	if err != nil {
		return nil, err
	}
	s.record(ctx, analytics.Event{Name: "job.created", Payload: map[string]string{"job_id": created.ID.String(), "actor": actorEmail}})
	return created, nil
}

func (s *JobService) Update(ctx context.Context, j job.Job, actorEmail string) (*job.Job, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	current, err := s.repo.GetByID(ctx, j.ID)
	if err != nil {
		return nil, err
	}
	j.CompanyID = current.CompanyID
	// Activation is toggled through SetActive only.
	j.IsActive = current.IsActive
	if strings.TrimSpace(j.Title) == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	updated, err := s.repo.Update(ctx, j)
	if err != nil {
		return nil, err
	}
	s.record(ctx, analytics.Event{Name: "job.updated", Payload: map[string]string{"job_id": updated.ID.String(), "actor": actorEmail}})
	return updated, nil
}

func (s *JobService) SetActive(ctx context.Context, id common.UUID, active bool, actorEmail string) (*job.Job, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	updated, err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	s.record(ctx, analytics.Event{Name: "job.active_changed", Payload: map[string]string{"job_id": id.String(), "actor": actorEmail}})
	return updated, nil
}

// Delete removes a posting and its applications for good. There is no
// soft-delete tier, deactivation via SetActive is the reversible option.
func (s *JobService) Delete(ctx context.Context, id common.UUID, actorEmail string) error {
	if !s.admins.IsAdmin(actorEmail) {
		return common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.record(ctx, analytics.Event{Name: "job.deleted", Payload: map[string]string{"job_id": id.String(), "actor": actorEmail}})
	return nil
}

func (s *JobService) ListAll(ctx context.Context, actorEmail string) ([]job.Job, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	return s.repo.ListAll(ctx)
}
