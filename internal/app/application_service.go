package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/analytics"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/company"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/job"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/profile"
	"github.com/Fortis-Ledger/Career-Portal/internal/mail"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type ApplicationService struct {
	repo      application.Repository
	jobs      job.Repository
	companies company.Repository
	profiles  profile.Repository
	analytics analytics.Repository
	admins    security.AdminPolicy
	mailer    mail.Mailer
	logger    zerolog.Logger
}

func NewApplicationService(repo application.Repository, jobs job.Repository, companies company.Repository, profiles profile.Repository, analyticsRepo analytics.Repository, admins security.AdminPolicy, mailer mail.Mailer, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, companies: companies, profiles: profiles, analytics: analyticsRepo, admins: admins, mailer: mailer, logger: logger}
}

type SubmitInput struct {
	CoverLetter    string
	ResumeURL      string
	PortfolioURL   string
	AdditionalInfo string
}

// Submit creates the application in its initial pending state. A
// candidate holds at most one application per job; a repeat submission
// is a conflict, never an overwrite.
func (s *ApplicationService) Submit(ctx context.Context, jobID, candidateID common.UUID, input SubmitInput) (*application.Application, error) {
	candidateProfile, err := s.profiles.GetByUserID(ctx, candidateID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeValidation, "candidate profile is required", nil)
		}
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !posting.IsActive {
		return nil, common.NewError(common.CodeValidation, "job is not accepting applications", nil)
	}
	if _, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID); err == nil {
		return nil, common.NewError(common.CodeConflict, "you have already applied for this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, application.Application{
		JobID:          jobID,
		CandidateID:    candidateID,
		Status:         application.StatusPending,
		CoverLetter:    input.CoverLetter,
		ResumeURL:      input.ResumeURL,
		PortfolioURL:   input.PortfolioURL,
		AdditionalInfo: input.AdditionalInfo,
	})
	if err != nil {
		return nil, err
	}

	companyName := s.companyName(ctx, posting.CompanyID)
	s.dispatch(ctx, mail.Event{
		Kind:          mail.EventApplicationReceived,
		To:            candidateProfile.Email,
		ApplicantName: candidateProfile.FullName,
		JobTitle:      posting.Title,
		CompanyName:   companyName,
	})
	// Recipient left empty: the dispatcher resolves the configured
	// notification address (or its default) at send time.
	s.dispatch(ctx, mail.Event{
		Kind:          mail.EventNewApplication,
		ApplicantName: candidateProfile.FullName,
		JobTitle:      posting.Title,
		CompanyName:   companyName,
	})

	s.record(ctx, analytics.Event{Name: "application.created", UserID: &candidateID, Payload: map[string]string{"application_id": created.ID.String(), "job_id": jobID.String()}})
	return created, nil
}

// StatusUpdateResult makes the two independently observable outcomes of
// a transition explicit: the persisted change and the notification
// attempt. The update never rolls back when the notification fails.
type StatusUpdateResult struct {
	Application      *application.Application `json:"application"`
	NotificationSent bool                     `json:"notification_sent"`
}

// UpdateStatus moves an application to any of the six statuses. There is
// no transition-legality check: a reviewer may move an application out
// of offer, rejected, or withdrawn. The previous status is overwritten
// with no history.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID common.UUID, status application.Status, actorEmail string) (*StatusUpdateResult, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	next := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !application.Known(next) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, reviewing, interview, offer, rejected, or withdrawn"})
	}
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, app.ID, next, actorEmail, nowUTC())
	if err != nil {
		return nil, err
	}

	sent := s.notifyStatusChange(ctx, updated)
	s.record(ctx, analytics.Event{Name: "application.status_changed", Payload: map[string]string{"application_id": updated.ID.String(), "status": string(next), "actor": actorEmail}})
	return &StatusUpdateResult{Application: updated, NotificationSent: sent}, nil
}

// UpdateNotes is the same gated update pathway restricted to reviewer
// notes. It triggers no notification.
func (s *ApplicationService) UpdateNotes(ctx context.Context, applicationID common.UUID, notes string, actorEmail string) (*application.Application, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	updated, err := s.repo.UpdateNotes(ctx, applicationID, notes, actorEmail, nowUTC())
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ApplicationService) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *ApplicationService) List(ctx context.Context, status application.Status, actorEmail string) ([]application.Application, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if status != "" && !application.Known(status) {
		return nil, common.NewValidationError("invalid status filter", map[string]string{"status": "unknown status"})
	}
	return s.repo.List(ctx, status)
}

// Detail is the admin view: the application with its job, company, and
// candidate profile stitched in. Lookups that fail leave the field nil
// rather than failing the whole view.
type Detail struct {
	Application *application.Application `json:"application"`
	Job         *job.Job                 `json:"job,omitempty"`
	Company     *company.Company         `json:"company,omitempty"`
	Profile     *profile.Profile         `json:"profile,omitempty"`
}

func (s *ApplicationService) GetDetail(ctx context.Context, applicationID common.UUID, actorEmail string) (*Detail, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return nil, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	detail := &Detail{Application: app}
	if posting, err := s.jobs.GetByID(ctx, app.JobID); err == nil {
		detail.Job = posting
		if comp, err := s.companies.GetByID(ctx, posting.CompanyID); err == nil {
			detail.Company = comp
		}
	}
	if candidateProfile, err := s.profiles.GetByUserID(ctx, app.CandidateID); err == nil {
		detail.Profile = candidateProfile
	}
	return detail, nil
}

func (s *ApplicationService) notifyStatusChange(ctx context.Context, app *application.Application) bool {
	candidateProfile, err := s.profiles.GetByUserID(ctx, app.CandidateID)
	if err != nil {
		s.logger.Warn().Err(err).Str("application_id", app.ID.String()).Msg("skipping status notification, candidate profile unavailable")
		return false
	}
	posting, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		s.logger.Warn().Err(err).Str("application_id", app.ID.String()).Msg("skipping status notification, job unavailable")
		return false
	}
	return s.dispatch(ctx, mail.Event{
		Kind:          mail.EventApplicationStatusUpdate,
		To:            candidateProfile.Email,
		ApplicantName: candidateProfile.FullName,
		JobTitle:      posting.Title,
		CompanyName:   s.companyName(ctx, posting.CompanyID),
		Status:        app.Status,
	})
}

// dispatch attempts a notification and absorbs every failure mode: a
// succeeded mutation with a failed notification is a valid final
// outcome.
func (s *ApplicationService) record(ctx context.Context, event analytics.Event) {
	if err := s.analytics.Create(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("event", event.Name).Msg("analytics write failed")
	}
}

func (s *ApplicationService) dispatch(ctx context.Context, event mail.Event) bool {
	sent, err := s.mailer.Send(ctx, event)
	if err != nil {
		s.logger.Error().Err(err).Str("event", string(event.Kind)).Msg("email dispatch failed")
		return false
	}
	return sent
}

func (s *ApplicationService) companyName(ctx context.Context, companyID common.UUID) string {
	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return "FortisLedger"
	}
	return comp.Name
}
