package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

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

const (
	adminEmail    = "admin@fortisledger.io"
	outsiderEmail = "random@example.com"
)

type fakeApplicationRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{items: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return nil, common.NewError(common.CodeConflict, "application already exists for this job", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	stored := app
	r.items[app.ID] = &stored
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.items {
		if app.JobID == jobID && app.CandidateID == candidateID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) List(ctx context.Context, status application.Status) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.items {
		if status == "" || app.Status == status {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.items {
		if app.CandidateID == candidateID {
			items = append(items, *app)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status, reviewedBy string, reviewedAt time.Time) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.ReviewedBy = reviewedBy
	at := reviewedAt
	app.ReviewedAt = &at
	app.UpdatedAt = reviewedAt
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) UpdateNotes(ctx context.Context, id common.UUID, notes string, reviewedBy string, reviewedAt time.Time) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Notes = notes
	app.ReviewedBy = reviewedBy
	at := reviewedAt
	app.ReviewedAt = &at
	app.UpdatedAt = reviewedAt
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context) (map[application.Status]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[application.Status]int)
	for _, app := range r.items {
		counts[app.Status]++
	}
	return counts, nil
}

type fakeJobRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{items: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID.IsZero() {
		j.ID = common.NewUUID()
	}
	stored := j
	r.items[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[j.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	stored := j
	r.items[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.items {
		if j.IsActive {
			items = append(items, *j)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.items {
		items = append(items, *j)
	}
	return items, nil
}

func (r *fakeJobRepo) SetActive(ctx context.Context, id common.UUID, active bool) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.IsActive = active
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeJobRepo) Count(ctx context.Context, activeOnly bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, j := range r.items {
		if !activeOnly || j.IsActive {
			count++
		}
	}
	return count, nil
}

type fakeCompanyRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{items: make(map[common.UUID]*company.Company)}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = common.NewUUID()
	}
	stored := c
	r.items[c.ID] = &stored
	return &c, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, c company.Company) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	stored := c
	r.items[c.ID] = &stored
	return &c, nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCompanyRepo) ListActive(ctx context.Context) ([]company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []company.Company
	for _, c := range r.items {
		if c.IsActive {
			items = append(items, *c)
		}
	}
	return items, nil
}

func (r *fakeCompanyRepo) ListAll(ctx context.Context) ([]company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []company.Company
	for _, c := range r.items {
		items = append(items, *c)
	}
	return items, nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return common.NewError(common.CodeNotFound, "company not found", nil)
	}
	delete(r.items, id)
	return nil
}

func (r *fakeCompanyRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

type fakeProfileRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{items: make(map[common.UUID]*profile.Profile)}
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := p
	r.items[p.UserID] = &stored
	return &p, nil
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID common.UUID) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[userID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "profile not found", nil)
	}
	copied := *p
	return &copied, nil
}

type noopAnalyticsRepo struct{}

func (noopAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	return nil
}

func (noopAnalyticsRepo) CountSince(ctx context.Context, name string, since time.Time) (int, error) {
	return 0, nil
}

type failingAnalyticsRepo struct{}

func (failingAnalyticsRepo) Create(ctx context.Context, event analytics.Event) error {
	return errors.New("analytics store unavailable")
}

func (failingAnalyticsRepo) CountSince(ctx context.Context, name string, since time.Time) (int, error) {
	return 0, errors.New("analytics store unavailable")
}

type fakeMailer struct {
	mu     sync.Mutex
	events []mail.Event
	sent   bool
	err    error
}

func (m *fakeMailer) Send(ctx context.Context, event mail.Event) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	if m.err != nil {
		return false, m.err
	}
	return m.sent, nil
}

func (m *fakeMailer) recorded() []mail.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mail.Event(nil), m.events...)
}

type applicationFixture struct {
	service     *ApplicationService
	repo        *fakeApplicationRepo
	jobs        *fakeJobRepo
	companies   *fakeCompanyRepo
	profiles    *fakeProfileRepo
	mailer      *fakeMailer
	jobID       common.UUID
	candidateID common.UUID
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	repo := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	profiles := newFakeProfileRepo()
	mailer := &fakeMailer{sent: true}
	service := NewApplicationService(repo, jobs, companies, profiles, noopAnalyticsRepo{}, security.DefaultAdminPolicy(), mailer, zerolog.Nop())

	comp, err := companies.Create(context.Background(), company.Company{Name: "FortisLedger", IsActive: true})
	if err != nil {
		t.Fatalf("expected company created, got %v", err)
	}
	posting, err := jobs.Create(context.Background(), job.Job{CompanyID: comp.ID, Title: "Backend Engineer", IsActive: true})
	if err != nil {
		t.Fatalf("expected job created, got %v", err)
	}
	candidateID := common.NewUUID()
	if _, err := profiles.Upsert(context.Background(), profile.Profile{UserID: candidateID, FullName: "Jordan Reyes", Email: "jordan@example.com"}); err != nil {
		t.Fatalf("expected profile created, got %v", err)
	}
	return &applicationFixture{
		service:     service,
		repo:        repo,
		jobs:        jobs,
		companies:   companies,
		profiles:    profiles,
		mailer:      mailer,
		jobID:       posting.ID,
		candidateID: candidateID,
	}
}

func TestApplicationServiceSubmit_CreatesPending(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{CoverLetter: "hello"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if created.AppliedAt.IsZero() {
		t.Fatal("expected applied_at to be set")
	}
	if created.ID.IsZero() {
		t.Fatal("expected id to be assigned")
	}

	events := f.mailer.recorded()
	if len(events) != 2 {
		t.Fatalf("expected 2 notification events, got %d", len(events))
	}
	if events[0].Kind != mail.EventApplicationReceived || events[0].To != "jordan@example.com" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].Kind != mail.EventNewApplication || events[1].To != "" {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
}

func TestApplicationServiceSubmit_AnalyticsFailureIsLogged(t *testing.T) {
	repo := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	companies := newFakeCompanyRepo()
	profiles := newFakeProfileRepo()
	var logs bytes.Buffer
	service := NewApplicationService(repo, jobs, companies, profiles, failingAnalyticsRepo{}, security.DefaultAdminPolicy(), &fakeMailer{sent: true}, zerolog.New(&logs))

	comp, err := companies.Create(context.Background(), company.Company{Name: "FortisLedger", IsActive: true})
	if err != nil {
		t.Fatalf("expected company created, got %v", err)
	}
	posting, err := jobs.Create(context.Background(), job.Job{CompanyID: comp.ID, Title: "Backend Engineer", IsActive: true})
	if err != nil {
		t.Fatalf("expected job created, got %v", err)
	}
	candidateID := common.NewUUID()
	if _, err := profiles.Upsert(context.Background(), profile.Profile{UserID: candidateID, FullName: "Jordan Reyes", Email: "jordan@example.com"}); err != nil {
		t.Fatalf("expected profile created, got %v", err)
	}

	created, err := service.Submit(context.Background(), posting.ID, candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission to survive analytics outage, got %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if !strings.Contains(logs.String(), "analytics write failed") {
		t.Fatalf("expected analytics failure to be logged, got %q", logs.String())
	}
}

func TestApplicationServiceSubmit_DuplicateIsConflict(t *testing.T) {
	f := newApplicationFixture(t)

	if _, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{}); err != nil {
		t.Fatalf("expected first submission to succeed, got %v", err)
	}
	_, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	items, err := f.repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("expected list, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one stored application, got %d", len(items))
	}
}

func TestApplicationServiceSubmit_RequiresProfile(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.Submit(context.Background(), f.jobID, common.NewUUID(), SubmitInput{})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceSubmit_InactiveJobRejected(t *testing.T) {
	f := newApplicationFixture(t)
	if _, err := f.jobs.SetActive(context.Background(), f.jobID, false); err != nil {
		t.Fatalf("expected job deactivated, got %v", err)
	}

	_, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceUpdateStatus_NonAdminRejected(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}
	before := len(f.mailer.recorded())

	_, err = f.service.UpdateStatus(context.Background(), created.ID, application.StatusOffer, outsiderEmail)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	stored, err := f.repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected stored application, got %v", err)
	}
	if stored.Status != application.StatusPending {
		t.Fatalf("expected status unchanged, got %s", stored.Status)
	}
	if len(f.mailer.recorded()) != before {
		t.Fatal("expected no notification for rejected update")
	}
}

func TestApplicationServiceUpdateStatus_AnyTransitionAllowed(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	// Every ordered pair is legal, including transitions out of offer,
	// rejected, and withdrawn.
	for _, from := range application.All() {
		for _, to := range application.All() {
			if _, err := f.repo.UpdateStatus(context.Background(), created.ID, from, adminEmail, time.Now().UTC()); err != nil {
				t.Fatalf("seeding status %s: %v", from, err)
			}
			result, err := f.service.UpdateStatus(context.Background(), created.ID, to, adminEmail)
			if err != nil {
				t.Fatalf("transition %s -> %s: %v", from, to, err)
			}
			if result.Application.Status != to {
				t.Fatalf("transition %s -> %s: got status %s", from, to, result.Application.Status)
			}
		}
	}
}

func TestApplicationServiceUpdateStatus_Notifies(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	result, err := f.service.UpdateStatus(context.Background(), created.ID, application.StatusInterview, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !result.NotificationSent {
		t.Fatal("expected notification_sent to be true")
	}
	if result.Application.ReviewedBy != adminEmail {
		t.Fatalf("expected reviewed_by %q, got %q", adminEmail, result.Application.ReviewedBy)
	}
	if result.Application.ReviewedAt == nil {
		t.Fatal("expected reviewed_at to be set")
	}

	events := f.mailer.recorded()
	last := events[len(events)-1]
	if last.Kind != mail.EventApplicationStatusUpdate {
		t.Fatalf("expected status update event, got %s", last.Kind)
	}
	if last.Status != application.StatusInterview {
		t.Fatalf("expected interview status in event, got %s", last.Status)
	}
	if last.To != "jordan@example.com" {
		t.Fatalf("expected candidate recipient, got %q", last.To)
	}
}

func TestApplicationServiceUpdateStatus_MailerFailureDoesNotRollBack(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}
	f.mailer.err = errors.New("smtp down")

	result, err := f.service.UpdateStatus(context.Background(), created.ID, application.StatusOffer, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.NotificationSent {
		t.Fatal("expected notification_sent to be false")
	}

	stored, err := f.repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected stored application, got %v", err)
	}
	if stored.Status != application.StatusOffer {
		t.Fatalf("expected persisted offer status, got %s", stored.Status)
	}
}

func TestApplicationServiceUpdateStatus_InvalidStatus(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	_, err = f.service.UpdateStatus(context.Background(), created.ID, "archived", adminEmail)
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApplicationServiceUpdateStatus_NormalizesInput(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	result, err := f.service.UpdateStatus(context.Background(), created.ID, " Reviewing ", adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Application.Status != application.StatusReviewing {
		t.Fatalf("expected reviewing, got %s", result.Application.Status)
	}
}

func TestApplicationServiceUpdateStatus_MissingApplication(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.service.UpdateStatus(context.Background(), common.NewUUID(), application.StatusOffer, adminEmail)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestApplicationServiceUpdateNotes_NoNotification(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}
	before := len(f.mailer.recorded())

	if _, err := f.service.UpdateNotes(context.Background(), created.ID, "strong candidate", outsiderEmail); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	updated, err := f.service.UpdateNotes(context.Background(), created.ID, "strong candidate", adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Notes != "strong candidate" {
		t.Fatalf("expected notes persisted, got %q", updated.Notes)
	}
	if len(f.mailer.recorded()) != before {
		t.Fatal("expected no notification for notes update")
	}
}

func TestApplicationServiceGetDetail_Stitches(t *testing.T) {
	f := newApplicationFixture(t)
	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	if _, err := f.service.GetDetail(context.Background(), created.ID, outsiderEmail); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	detail, err := f.service.GetDetail(context.Background(), created.ID, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if detail.Job == nil || detail.Job.Title != "Backend Engineer" {
		t.Fatalf("expected job stitched in, got %+v", detail.Job)
	}
	if detail.Company == nil || detail.Company.Name != "FortisLedger" {
		t.Fatalf("expected company stitched in, got %+v", detail.Company)
	}
	if detail.Profile == nil || detail.Profile.Email != "jordan@example.com" {
		t.Fatalf("expected profile stitched in, got %+v", detail.Profile)
	}
}

func TestApplicationServiceList_AdminOnly(t *testing.T) {
	f := newApplicationFixture(t)
	if _, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{}); err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	if _, err := f.service.List(context.Background(), "", outsiderEmail); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	items, err := f.service.List(context.Background(), application.StatusPending, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one pending application, got %d", len(items))
	}
	if _, err := f.service.List(context.Background(), "archived", adminEmail); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for unknown filter, got %v", err)
	}
}

func TestApplicationLifecycle(t *testing.T) {
	f := newApplicationFixture(t)

	created, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{CoverLetter: "hi"})
	if err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	pending, err := f.service.List(context.Background(), application.StatusPending, adminEmail)
	if err != nil {
		t.Fatalf("expected admin list, got %v", err)
	}
	if len(pending) != 1 || pending[0].ID != created.ID {
		t.Fatalf("expected submitted application in admin list, got %+v", pending)
	}

	reviewing, err := f.service.UpdateStatus(context.Background(), created.ID, application.StatusReviewing, adminEmail)
	if err != nil {
		t.Fatalf("expected reviewing transition, got %v", err)
	}
	if !reviewing.NotificationSent {
		t.Fatal("expected reviewing notification")
	}
	offer, err := f.service.UpdateStatus(context.Background(), created.ID, application.StatusOffer, adminEmail)
	if err != nil {
		t.Fatalf("expected offer transition, got %v", err)
	}
	if offer.Application.Status != application.StatusOffer {
		t.Fatalf("expected offer status, got %s", offer.Application.Status)
	}

	mine, err := f.service.ListByCandidate(context.Background(), f.candidateID)
	if err != nil {
		t.Fatalf("expected candidate list, got %v", err)
	}
	if len(mine) != 1 || mine[0].Status != application.StatusOffer {
		t.Fatalf("expected candidate to see offer status, got %+v", mine)
	}
}
