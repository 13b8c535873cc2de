package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, name, description, website, logo_url, category, is_active, created_at, updated_at`

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	c.ID = common.NewUUID()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO companies (id, name, description, website, logo_url, category, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Name, c.Description, c.Website, c.LogoURL, c.Category, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c company.Company) (*company.Company, error) {
	c.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET name = $1, description = $2, website = $3, logo_url = $4, category = $5, is_active = $6, updated_at = $7 WHERE id = $8`,
		c.Name, c.Description, c.Website, c.LogoURL, c.Category, c.IsActive, c.UpdatedAt, c.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update company", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) ListActive(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE is_active = TRUE ORDER BY name`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list companies", err)
	}
	defer rows.Close()
	return collectCompanies(rows)
}

func (r *CompanyRepository) ListAll(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list companies", err)
	}
	defer rows.Close()
	return collectCompanies(rows)
}

// Delete removes a company permanently. Jobs under it, and their
// applications, cascade away with it.
func (r *CompanyRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete company", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return common.NewError(common.CodeNotFound, "company not found", nil)
	}
	return nil
}

func (r *CompanyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count companies", err)
	}
	return count, nil
}

func scanCompany(row rowScanner) (*company.Company, error) {
	var c company.Company
	var description, website, logoURL, category sql.NullString
	err := row.Scan(&c.ID, &c.Name, &description, &website, &logoURL, &category, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	c.Description = description.String
	c.Website = website.String
	c.LogoURL = logoURL.String
	c.Category = category.String
	return &c, nil
}

func collectCompanies(rows *sql.Rows) ([]company.Company, error) {
	var items []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to scan companies", err)
	}
	return items, nil
}
