package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/job"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := job.Filter{
		Search:         query.Get("search"),
		Location:       query.Get("location"),
		EmploymentType: query.Get("employment_type"),
		RemoteOnly:     query.Get("remote") == "true",
	}
	if value := query.Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filter.Limit = parsed
		}
	}
	if value := query.Get("offset"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filter.Offset = parsed
		}
	}
	items, err := h.jobs.Search(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	posting, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, posting)
}

type jobRequest struct {
	CompanyID        string   `json:"company_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	SalaryMin        *int     `json:"salary_min"`
	SalaryMax        *int     `json:"salary_max"`
	Location         string   `json:"location"`
	IsRemote         bool     `json:"is_remote"`
	EmploymentType   string   `json:"employment_type"`
	ExperienceLevel  string   `json:"experience_level"`
}

func (req jobRequest) toJob() (job.Job, error) {
	j := job.Job{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Location:         req.Location,
		IsRemote:         req.IsRemote,
		EmploymentType:   req.EmploymentType,
		ExperienceLevel:  req.ExperienceLevel,
	}
	if strings.TrimSpace(req.CompanyID) != "" {
		companyID, err := common.ParseUUID(req.CompanyID)
		if err != nil {
			return job.Job{}, common.NewValidationError("invalid request", map[string]string{"company_id": "invalid uuid"})
		}
		j.CompanyID = companyID
	}
	return j, nil
}

func (h *JobHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	j, err := req.toJob()
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), j, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	j, err := req.toJob()
	if err != nil {
		response.Error(w, err)
		return
	}
	j.ID = jobID
	updated, err := h.jobs.Update(r.Context(), j, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

type jobActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *JobHandler) AdminSetActive(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobActiveRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.SetActive(r.Context(), jobID, req.IsActive, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), jobID, identity.Email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *JobHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListAll(r.Context(), identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
