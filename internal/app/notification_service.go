package app

import (
	"context"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/mail"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

// NotificationService exposes operator-authored mail: the "custom"
// template sent from the admin application view.
type NotificationService struct {
	mailer mail.Mailer
	admins security.AdminPolicy
}

func NewNotificationService(mailer mail.Mailer, admins security.AdminPolicy) *NotificationService {
	return &NotificationService{mailer: mailer, admins: admins}
}

func (s *NotificationService) SendCustom(ctx context.Context, to, recipientName, subject, message, actorEmail string) (bool, error) {
	if !s.admins.IsAdmin(actorEmail) {
		return false, common.NewError(common.CodeForbidden, "actor is not an administrator", nil)
	}
	if strings.TrimSpace(to) == "" {
		return false, common.NewError(common.CodeValidation, "recipient is required", nil)
	}
	if strings.TrimSpace(subject) == "" {
		return false, common.NewError(common.CodeValidation, "subject is required", nil)
	}
	if strings.TrimSpace(message) == "" {
		return false, common.NewError(common.CodeValidation, "message is required", nil)
	}
	return s.mailer.Send(ctx, mail.Event{
		Kind:          mail.EventCustom,
		To:            to,
		ApplicantName: recipientName,
		Subject:       subject,
		Message:       message,
	})
}
