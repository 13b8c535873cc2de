package settings

import (
	"context"
	"time"
)

// Settings is the single persisted portal configuration row. The mail
// dispatcher rereads it on every send, so admin changes apply to the
// next notification without a restart.
type Settings struct {
	PortalName         string    `json:"portal_name"`
	PortalDescription  string    `json:"portal_description"`
	CompanyWebsite     string    `json:"company_website"`
	ContactEmail       string    `json:"contact_email"`
	SMTPHost           string    `json:"smtp_host"`
	SMTPPort           string    `json:"smtp_port"`
	SMTPUsername       string    `json:"smtp_username"`
	SMTPPassword       string    `json:"smtp_password,omitempty"`
	EmailNotifications bool      `json:"email_notifications"`
	NotificationEmail  string    `json:"notification_email"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultNotificationEmail receives new-application notices when the
// settings row has no recipient configured.
const DefaultNotificationEmail = "admin@fortisledger.io"

func Defaults() Settings {
	return Settings{
		PortalName:         "FortisLedger Career Portal",
		PortalDescription:  "Join our team and build the future of financial technology",
		CompanyWebsite:     "https://fortisledger.io",
		ContactEmail:       "careers@fortisledger.io",
		SMTPPort:           "587",
		EmailNotifications: true,
		NotificationEmail:  DefaultNotificationEmail,
	}
}

type Repository interface {
	// Get returns the stored row, or Defaults() when none exists yet.
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s Settings) (*Settings, error)
}
