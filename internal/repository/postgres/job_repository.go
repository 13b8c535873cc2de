package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, company_id, title, description, requirements, responsibilities, salary_min, salary_max, location, is_remote, employment_type, experience_level, is_active, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, company_id, title, description, requirements, responsibilities, salary_min, salary_max, location, is_remote, employment_type, experience_level, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		j.ID, j.CompanyID, j.Title, j.Description, pq.Array(j.Requirements), pq.Array(j.Responsibilities), j.SalaryMin, j.SalaryMax, j.Location, j.IsRemote, j.EmploymentType, j.ExperienceLevel, j.IsActive, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, description = $2, requirements = $3, responsibilities = $4, salary_min = $5, salary_max = $6, location = $7, is_remote = $8, employment_type = $9, experience_level = $10, is_active = $11, updated_at = $12 WHERE id = $13`,
		j.Title, j.Description, pq.Array(j.Requirements), pq.Array(j.Responsibilities), j.SalaryMin, j.SalaryMax, j.Location, j.IsRemote, j.EmploymentType, j.ExperienceLevel, j.IsActive, j.UpdatedAt, j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return r.GetByID(ctx, j.ID)
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *JobRepository) ListActive(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	conditions := []string{"is_active = TRUE"}
	args := []any{}
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conditions = append(conditions, "title ILIKE "+arg("%"+search+"%"))
	}
	if location := strings.TrimSpace(filter.Location); location != "" {
		conditions = append(conditions, "location ILIKE "+arg("%"+location+"%"))
	}
	if filter.EmploymentType != "" {
		conditions = append(conditions, "employment_type = "+arg(filter.EmploymentType))
	}
	if filter.RemoteOnly {
		conditions = append(conditions, "is_remote = TRUE")
	}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + arg(filter.Offset)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) SetActive(ctx context.Context, id common.UUID, active bool) (*job.Job, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET is_active = $1, updated_at = $2 WHERE id = $3`, active, time.Now().UTC(), id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a job permanently. Applications referencing it go with it
// through the foreign key cascade.
func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return nil
}

func (r *JobRepository) Count(ctx context.Context, activeOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM jobs`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}
	return count, nil
}

func scanJob(row rowScanner) (*job.Job, error) {
	var j job.Job
	var description, location, employmentType, experienceLevel sql.NullString
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &description, pq.Array(&j.Requirements), pq.Array(&j.Responsibilities), &j.SalaryMin, &j.SalaryMax, &location, &j.IsRemote, &employmentType, &experienceLevel, &j.IsActive, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	j.Description = description.String
	j.Location = location.String
	j.EmploymentType = employmentType.String
	j.ExperienceLevel = experienceLevel.String
	return &j, nil
}

func collectJobs(rows *sql.Rows) ([]job.Job, error) {
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to scan jobs", err)
	}
	return items, nil
}
