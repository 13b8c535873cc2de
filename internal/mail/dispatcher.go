package mail

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/settings"
)

// Provider is one transport in the fallback chain. An error from Send is
// a provider failure, never fatal to the dispatch.
type Provider interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Dispatcher selects a template for the event and walks the provider
// chain in order: Resend API first when an API key is configured, then
// SMTP when the stored settings carry complete credentials. At most one
// attempt per provider per call; there is no queue and no retry.
type Dispatcher struct {
	settings settings.Repository
	resend   *ResendProvider
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewDispatcher(repo settings.Repository, resendAPIKey, resendFrom string, timeout time.Duration, logger zerolog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	var resend *ResendProvider
	if strings.TrimSpace(resendAPIKey) != "" {
		resend = NewResendProvider(resendAPIKey, resendFrom, &http.Client{Timeout: timeout})
	}
	return &Dispatcher{settings: repo, resend: resend, timeout: timeout, logger: logger}
}

// Send implements Mailer. Settings are reread on every call, so flipping
// email_notifications or changing SMTP credentials takes effect on the
// very next dispatch.
func (d *Dispatcher) Send(ctx context.Context, event Event) (bool, error) {
	cfg, err := d.settings.Get(ctx)
	if err != nil {
		return false, err
	}
	if !cfg.EmailNotifications {
		d.logger.Debug().Str("event", string(event.Kind)).Msg("email notifications disabled")
		return false, nil
	}

	if event.To == "" && event.Kind == EventNewApplication {
		event.To = cfg.NotificationEmail
		if event.To == "" {
			event.To = settings.DefaultNotificationEmail
		}
	}
	if event.To == "" {
		return false, common.NewError(common.CodeValidation, "email event has no recipient", nil)
	}

	msg, err := Render(event)
	if err != nil {
		return false, err
	}

	providers := make([]Provider, 0, 2)
	if d.resend != nil {
		providers = append(providers, d.resend)
	}
	if cfg.SMTPHost != "" && cfg.SMTPUsername != "" && cfg.SMTPPassword != "" {
		providers = append(providers, NewSMTPProvider(*cfg))
	}
	if len(providers) == 0 {
		return false, common.NewError(common.CodeUnavailable, "no email configuration found, configure SMTP settings in the admin portal", nil)
	}

	for _, provider := range providers {
		attemptCtx, cancel := context.WithTimeout(ctx, d.timeout)
		err := provider.Send(attemptCtx, msg)
		cancel()
		if err == nil {
			d.logger.Info().Str("event", string(event.Kind)).Str("provider", provider.Name()).Str("to", msg.To).Msg("email sent")
			return true, nil
		}
		d.logger.Warn().Err(err).Str("event", string(event.Kind)).Str("provider", provider.Name()).Msg("email provider failed")
	}
	return false, nil
}
