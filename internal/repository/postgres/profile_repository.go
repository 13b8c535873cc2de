package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/profile"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	now := time.Now().UTC()
	p.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO profiles (user_id, full_name, email, phone, location, resume_url, portfolio_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, phone = EXCLUDED.phone, location = EXCLUDED.location, resume_url = EXCLUDED.resume_url, portfolio_url = EXCLUDED.portfolio_url, updated_at = EXCLUDED.updated_at`,
		p.UserID, p.FullName, p.Email, p.Phone, p.Location, p.ResumeURL, p.PortfolioURL, now)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert profile", err)
	}
	return r.GetByUserID(ctx, p.UserID)
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID common.UUID) (*profile.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT user_id, full_name, email, phone, location, resume_url, portfolio_url, created_at, updated_at FROM profiles WHERE user_id = $1`, userID)
	var p profile.Profile
	var phone, location, resumeURL, portfolioURL sql.NullString
	err := row.Scan(&p.UserID, &p.FullName, &p.Email, &phone, &location, &resumeURL, &portfolioURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load profile", err)
	}
	p.Phone = phone.String
	p.Location = location.String
	p.ResumeURL = resumeURL.String
	p.PortfolioURL = portfolioURL.String
	return &p, nil
}
