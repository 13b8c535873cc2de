package handlers

import (
	"net/http"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/domain/company"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
)

type CompanyHandler struct {
	companies *app.CompanyService
}

func NewCompanyHandler(companies *app.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.companies.ListActive(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type companyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"is_active"`
}

func (h *CompanyHandler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.companies.Create(r.Context(), company.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Category:    req.Category,
	}, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *CompanyHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	companyID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	next := company.Company{
		ID:          companyID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Category:    req.Category,
		IsActive:    true,
	}
	if req.IsActive != nil {
		next.IsActive = *req.IsActive
	}
	updated, err := h.companies.Update(r.Context(), next, identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CompanyHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	companyID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.companies.Delete(r.Context(), companyID, identity.Email); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *CompanyHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.companies.ListAll(r.Context(), identity.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
