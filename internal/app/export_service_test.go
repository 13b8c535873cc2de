package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/user"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	items map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: make(map[common.UUID]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = common.NewUUID()
	}
	for _, existing := range r.items {
		if existing.Email == u.Email {
			return nil, common.NewError(common.CodeConflict, "user already exists", nil)
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	stored := u
	r.items[u.ID] = &stored
	return &u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.items[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.items {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []user.User
	for _, u := range r.items {
		items = append(items, *u)
	}
	return items, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items), nil
}

func newExportFixture(t *testing.T) (*ExportService, *applicationFixture) {
	t.Helper()
	f := newApplicationFixture(t)
	users := newFakeUserRepo()
	service := NewExportService(f.repo, f.jobs, f.companies, f.profiles, users, security.DefaultAdminPolicy())
	return service, f
}

func TestExportApplicationsCSV(t *testing.T) {
	service, f := newExportFixture(t)
	if _, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{CoverLetter: "a letter, with a comma", ResumeURL: "https://cv.example.com"}); err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	data, contentType, err := service.ExportApplications(context.Background(), FormatCSV, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if contentType != "text/csv" {
		t.Fatalf("unexpected content type: %q", contentType)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("expected parseable csv, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	header := records[0]
	want := []string{"id", "job_title", "company_name", "applicant_name", "applicant_email", "applicant_phone", "applicant_location", "status", "applied_date", "cover_letter_length", "has_resume", "has_portfolio", "resume_url", "portfolio_url", "additional_info", "notes"}
	if len(header) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(header))
	}
	for i, col := range want {
		if header[i] != col {
			t.Fatalf("column %d: expected %q, got %q", i, col, header[i])
		}
	}
	row := records[1]
	if row[1] != "Backend Engineer" || row[2] != "FortisLedger" {
		t.Fatalf("expected job and company stitched in, got %v", row[1:3])
	}
	if row[3] != "Jordan Reyes" || row[4] != "jordan@example.com" {
		t.Fatalf("expected applicant stitched in, got %v", row[3:5])
	}
	if row[5] != "N/A" {
		t.Fatalf("expected N/A for missing phone, got %q", row[5])
	}
	if row[9] != "22" {
		t.Fatalf("expected cover letter length 22, got %q", row[9])
	}
	if row[10] != "true" || row[11] != "false" {
		t.Fatalf("unexpected resume/portfolio flags: %v", row[10:12])
	}
}

func TestExportApplicationsJSON(t *testing.T) {
	service, f := newExportFixture(t)
	if _, err := f.service.Submit(context.Background(), f.jobID, f.candidateID, SubmitInput{}); err != nil {
		t.Fatalf("expected submission, got %v", err)
	}

	data, contentType, err := service.ExportApplications(context.Background(), FormatJSON, adminEmail)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if contentType != "application/json" {
		t.Fatalf("unexpected content type: %q", contentType)
	}
	var rows []ApplicationExportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("expected parseable json, got %v", err)
	}
	if len(rows) != 1 || rows[0].Status != "pending" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestExportRequiresAdmin(t *testing.T) {
	service, _ := newExportFixture(t)

	if _, _, err := service.ExportApplications(context.Background(), FormatCSV, outsiderEmail); !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestExportInvalidFormat(t *testing.T) {
	service, _ := newExportFixture(t)

	if _, _, err := service.ExportApplications(context.Background(), "xml", adminEmail); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
