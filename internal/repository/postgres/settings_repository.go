package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/settings"
)

// SettingsRepository stores the single portal_settings row. The table is
// keyed by a constant id so upserts always hit the same row.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsRowID = 1

func (r *SettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	row := r.db.QueryRowContext(ctx, `SELECT portal_name, portal_description, company_website, contact_email, smtp_host, smtp_port, smtp_username, smtp_password, email_notifications, notification_email, updated_at FROM portal_settings WHERE id = $1`, settingsRowID)
	var s settings.Settings
	var portalDescription, companyWebsite, contactEmail sql.NullString
	var smtpHost, smtpPort, smtpUsername, smtpPassword, notificationEmail sql.NullString
	err := row.Scan(&s.PortalName, &portalDescription, &companyWebsite, &contactEmail, &smtpHost, &smtpPort, &smtpUsername, &smtpPassword, &s.EmailNotifications, &notificationEmail, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			defaults := settings.Defaults()
			return &defaults, nil
		}
		return nil, common.NewError(common.CodeInternal, "failed to load portal settings", err)
	}
	s.PortalDescription = portalDescription.String
	s.CompanyWebsite = companyWebsite.String
	s.ContactEmail = contactEmail.String
	s.SMTPHost = smtpHost.String
	s.SMTPPort = smtpPort.String
	s.SMTPUsername = smtpUsername.String
	s.SMTPPassword = smtpPassword.String
	s.NotificationEmail = notificationEmail.String
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s settings.Settings) (*settings.Settings, error) {
	s.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO portal_settings (id, portal_name, portal_description, company_website, contact_email, smtp_host, smtp_port, smtp_username, smtp_password, email_notifications, notification_email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET portal_name = EXCLUDED.portal_name, portal_description = EXCLUDED.portal_description, company_website = EXCLUDED.company_website, contact_email = EXCLUDED.contact_email, smtp_host = EXCLUDED.smtp_host, smtp_port = EXCLUDED.smtp_port, smtp_username = EXCLUDED.smtp_username, smtp_password = EXCLUDED.smtp_password, email_notifications = EXCLUDED.email_notifications, notification_email = EXCLUDED.notification_email, updated_at = EXCLUDED.updated_at`,
		settingsRowID, s.PortalName, s.PortalDescription, s.CompanyWebsite, s.ContactEmail, s.SMTPHost, s.SMTPPort, s.SMTPUsername, s.SMTPPassword, s.EmailNotifications, s.NotificationEmail, s.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update portal settings", err)
	}
	return r.Get(ctx)
}
