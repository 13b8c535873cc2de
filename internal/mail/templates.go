package mail

import (
	"fmt"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
)

// Message is a rendered mail ready for any provider.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

const (
	interviewSentence = "We will contact you soon with interview details."
	offerSentence     = "Congratulations! We will be in touch with offer details."
)

// Render maps an event kind to its (subject, body) pair. Pure string
// interpolation; the only conditional is the extra sentence added for
// the interview and offer statuses.
func Render(event Event) (Message, error) {
	switch event.Kind {
	case EventApplicationReceived:
		return applicationReceived(event), nil
	case EventApplicationStatusUpdate:
		return applicationStatusUpdate(event), nil
	case EventNewApplication:
		return newApplicationNotification(event), nil
	case EventCustom:
		return customMessage(event), nil
	default:
		return Message{}, common.NewError(common.CodeValidation, "unknown email event kind", nil)
	}
}

func applicationReceived(event Event) Message {
	subject := fmt.Sprintf("Application Received - %s", event.JobTitle)
	html := layout(fmt.Sprintf(`<h2>Application Received</h2>
<p>Dear %s,</p>
<p>Thank you for your application for the <strong>%s</strong> position at <strong>%s</strong>.</p>
<p>We have received your application and our team will review it shortly. You will hear from us within the next few days.</p>
<p>Best regards,<br>The %s Team</p>`,
		event.ApplicantName, event.JobTitle, event.CompanyName, event.CompanyName))
	text := fmt.Sprintf("Dear %s,\n\nThank you for your application for the %s position at %s.\n\nWe have received your application and our team will review it shortly. You will hear from us within the next few days.\n\nBest regards,\nThe %s Team",
		event.ApplicantName, event.JobTitle, event.CompanyName, event.CompanyName)
	return Message{To: event.To, Subject: subject, HTML: html, Text: text}
}

func applicationStatusUpdate(event Event) Message {
	subject := fmt.Sprintf("Application Update - %s", event.JobTitle)
	extra := ""
	switch event.Status {
	case application.StatusInterview:
		extra = "<p>" + interviewSentence + "</p>\n"
	case application.StatusOffer:
		extra = "<p>" + offerSentence + "</p>\n"
	}
	html := layout(fmt.Sprintf(`<h2>Application Status Update</h2>
<p>Dear %s,</p>
<p>Your application for the <strong>%s</strong> position has been updated.</p>
<p><strong>New Status:</strong> %s</p>
%s<p>Best regards,<br>The %s Team</p>`,
		event.ApplicantName, event.JobTitle, capitalize(string(event.Status)), extra, event.CompanyName))
	text := fmt.Sprintf("Dear %s,\n\nYour application for the %s position has been updated.\n\nNew Status: %s\n",
		event.ApplicantName, event.JobTitle, capitalize(string(event.Status)))
	switch event.Status {
	case application.StatusInterview:
		text += "\n" + interviewSentence + "\n"
	case application.StatusOffer:
		text += "\n" + offerSentence + "\n"
	}
	text += fmt.Sprintf("\nBest regards,\nThe %s Team", event.CompanyName)
	return Message{To: event.To, Subject: subject, HTML: html, Text: text}
}

func newApplicationNotification(event Event) Message {
	subject := fmt.Sprintf("New Application - %s", event.JobTitle)
	html := layout(fmt.Sprintf(`<h2>New Application Received</h2>
<p>A new application has been submitted:</p>
<ul>
<li><strong>Applicant:</strong> %s</li>
<li><strong>Position:</strong> %s</li>
<li><strong>Company:</strong> %s</li>
</ul>
<p>Please review the application in the admin dashboard.</p>`,
		event.ApplicantName, event.JobTitle, event.CompanyName))
	text := fmt.Sprintf("A new application has been submitted:\n\nApplicant: %s\nPosition: %s\nCompany: %s\n\nPlease review the application in the admin dashboard.",
		event.ApplicantName, event.JobTitle, event.CompanyName)
	return Message{To: event.To, Subject: subject, HTML: html, Text: text}
}

func customMessage(event Event) Message {
	body := strings.ReplaceAll(event.Message, "\n", "<br>")
	html := layout(fmt.Sprintf(`<h2>Hello %s,</h2>
<div>%s</div>
<p>Best regards,<br>The FortisLedger Team<br>Building the future of financial technology</p>`,
		event.ApplicantName, body))
	text := fmt.Sprintf("Dear %s,\n\n%s\n\nBest regards,\nThe FortisLedger Team\nBuilding the future of financial technology",
		event.ApplicantName, event.Message)
	return Message{To: event.To, Subject: event.Subject, HTML: html, Text: text}
}

func layout(content string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<div style="background: #0ea5e9; padding: 24px; text-align: center;">
<h1 style="color: white; margin: 0;">FortisLedger</h1>
<p style="color: rgba(255,255,255,0.9); margin: 4px 0 0 0;">Career Portal</p>
</div>
<div style="padding: 32px 24px;">
%s
</div>
<div style="background: #f1f5f9; padding: 16px 24px; text-align: center;">
<p style="color: #64748b; font-size: 12px; margin: 0;">&copy; 2025 FortisLedger. All rights reserved.<br>
<a href="https://career.fortisledger.io" style="color: #0ea5e9; text-decoration: none;">career.fortisledger.io</a></p>
</div>
</div>`, content)
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
