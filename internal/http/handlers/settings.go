package handlers

import (
	"net/http"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/settings"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
)

type SettingsHandler struct {
	settings *app.SettingsService
}

func NewSettingsHandler(settings *app.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	current, err := h.settings.Get(r.Context(), identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, current)
}

type settingsRequest struct {
	PortalName         string `json:"portal_name"`
	PortalDescription  string `json:"portal_description"`
	CompanyWebsite     string `json:"company_website"`
	ContactEmail       string `json:"contact_email"`
	SMTPHost           string `json:"smtp_host"`
	SMTPPort           string `json:"smtp_port"`
	SMTPUsername       string `json:"smtp_username"`
	SMTPPassword       string `json:"smtp_password"`
	EmailNotifications bool   `json:"email_notifications"`
	NotificationEmail  string `json:"notification_email"`
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.settings.Update(r.Context(), settings.Settings{
		PortalName:         req.PortalName,
		PortalDescription:  req.PortalDescription,
		CompanyWebsite:     req.CompanyWebsite,
		ContactEmail:       req.ContactEmail,
		SMTPHost:           req.SMTPHost,
		SMTPPort:           req.SMTPPort,
		SMTPUsername:       req.SMTPUsername,
		SMTPPassword:       req.SMTPPassword,
		EmailNotifications: req.EmailNotifications,
		NotificationEmail:  req.NotificationEmail,
	}, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
