package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, candidate_id, status, cover_letter, resume_url, portfolio_url, additional_info, notes, reviewed_by, reviewed_at, applied_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, candidate_id, status, cover_letter, resume_url, portfolio_url, additional_info, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		app.ID, app.JobID, app.CandidateID, app.Status, app.CoverLetter, app.ResumeURL, app.PortfolioURL, app.AdditionalInfo, app.AppliedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "application already exists for this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByJobAndCandidate(ctx context.Context, jobID, candidateID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID)
	return scanApplication(row)
}

func (r *ApplicationRepository) List(ctx context.Context, status application.Status) ([]application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY applied_at DESC`
	args := []any{}
	if status != "" {
		query = `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 ORDER BY applied_at DESC`
		args = append(args, status)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY applied_at DESC`, candidateID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list candidate applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status, reviewedBy string, reviewedAt time.Time) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = $4 WHERE id = $5`,
		status, reviewedBy, reviewedAt, reviewedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application status", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) UpdateNotes(ctx context.Context, id common.UUID, notes string, reviewedBy string, reviewedAt time.Time) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET notes = $1, reviewed_by = $2, reviewed_at = $3, updated_at = $4 WHERE id = $5`,
		notes, reviewedBy, reviewedAt, reviewedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application notes", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[application.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM applications GROUP BY status`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	defer rows.Close()
	counts := make(map[application.Status]int)
	for rows.Next() {
		var status application.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application counts", err)
		}
		counts[status] = count
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	var coverLetter, resumeURL, portfolioURL, additionalInfo, notes, reviewedBy sql.NullString
	var reviewedAt sql.NullTime
	err := row.Scan(&app.ID, &app.JobID, &app.CandidateID, &app.Status, &coverLetter, &resumeURL, &portfolioURL, &additionalInfo, &notes, &reviewedBy, &reviewedAt, &app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	app.CoverLetter = coverLetter.String
	app.ResumeURL = resumeURL.String
	app.PortfolioURL = portfolioURL.String
	app.AdditionalInfo = additionalInfo.String
	app.Notes = notes.String
	app.ReviewedBy = reviewedBy.String
	if reviewedAt.Valid {
		at := reviewedAt.Time
		app.ReviewedAt = &at
	}
	return &app, nil
}

func collectApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to scan applications", err)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
