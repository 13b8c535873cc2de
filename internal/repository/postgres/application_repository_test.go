package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
)

func newMockApplicationRepo(t *testing.T) (*ApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewApplicationRepository(db), mock
}

func TestApplicationRepositoryCreate_UniqueViolation(t *testing.T) {
	repo, mock := newMockApplicationRepo(t)

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "applications_job_id_candidate_id_key"})

	_, err := repo.Create(context.Background(), application.Application{
		JobID:       common.NewUUID(),
		CandidateID: common.NewUUID(),
		Status:      application.StatusPending,
	})
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryGetByID(t *testing.T) {
	repo, mock := newMockApplicationRepo(t)

	id := common.NewUUID()
	jobID := common.NewUUID()
	candidateID := common.NewUUID()
	appliedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	reviewedAt := appliedAt.Add(24 * time.Hour)

	columns := []string{"id", "job_id", "candidate_id", "status", "cover_letter", "resume_url", "portfolio_url", "additional_info", "notes", "reviewed_by", "reviewed_at", "applied_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), jobID.String(), candidateID.String(), "reviewing", "cover", nil, nil, nil, "good fit", "admin@fortisledger.io", reviewedAt, appliedAt, reviewedAt))

	app, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if app.Status != application.StatusReviewing {
		t.Fatalf("unexpected status: %s", app.Status)
	}
	if app.CoverLetter != "cover" || app.ResumeURL != "" {
		t.Fatalf("unexpected scan: %+v", app)
	}
	if app.ReviewedAt == nil || !app.ReviewedAt.Equal(reviewedAt) {
		t.Fatalf("unexpected reviewed_at: %v", app.ReviewedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryGetByID_NotFound(t *testing.T) {
	repo, mock := newMockApplicationRepo(t)

	id := common.NewUUID()
	columns := []string{"id", "job_id", "candidate_id", "status", "cover_letter", "resume_url", "portfolio_url", "additional_info", "notes", "reviewed_by", "reviewed_at", "applied_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM applications WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), id)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestApplicationRepositoryUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockApplicationRepo(t)

	id := common.NewUUID()
	mock.ExpectExec("UPDATE applications SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStatus(context.Background(), id, application.StatusOffer, "admin@fortisledger.io", time.Now().UTC())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestApplicationRepositoryCountByStatus(t *testing.T) {
	repo, mock := newMockApplicationRepo(t)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("pending", 3).
			AddRow("offer", 1))

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if counts[application.StatusPending] != 3 || counts[application.StatusOffer] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
