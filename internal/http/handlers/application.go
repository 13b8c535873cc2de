package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	JobID          string `json:"job_id"`
	CoverLetter    string `json:"cover_letter"`
	ResumeURL      string `json:"resume_url"`
	PortfolioURL   string `json:"portfolio_url"`
	AdditionalInfo string `json:"additional_info"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.JobID) == "" {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "job_id is required"}))
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + jobID.String() + ":" + identity.UserID.String()
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Submit(r.Context(), jobID, identity.UserID, app.SubmitInput{
		CoverLetter:    req.CoverLetter,
		ResumeURL:      req.ResumeURL,
		PortfolioURL:   req.PortfolioURL,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListByCandidate(r.Context(), identity.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	status := application.Status(strings.TrimSpace(r.URL.Query().Get("status")))
	items, err := h.applications.List(r.Context(), status, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	detail, err := h.applications.GetDetail(r.Context(), applicationID, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Status == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	result, err := h.applications.UpdateStatus(r.Context(), applicationID, application.Status(req.Status), identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *ApplicationHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateNotesRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateNotes(r.Context(), applicationID, req.Notes, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
