package handlers

import (
	"net/http"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
)

type NotifyHandler struct {
	notifications *app.NotificationService
}

func NewNotifyHandler(notifications *app.NotificationService) *NotifyHandler {
	return &NotifyHandler{notifications: notifications}
}

type notifyRequest struct {
	To            string `json:"to"`
	RecipientName string `json:"recipient_name"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
}

func (h *NotifyHandler) SendCustom(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req notifyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	sent, err := h.notifications.SendCustom(r.Context(), req.To, req.RecipientName, req.Subject, req.Message, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"sent": sent})
}
