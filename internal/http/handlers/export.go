package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/common"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
)

type ExportHandler struct {
	export *app.ExportService
}

func NewExportHandler(export *app.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// Export serves /admin/export/{entity}?format=csv|json as a file download.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) < 3 {
		response.Error(w, common.NewError(common.CodeNotFound, "resource not found", nil))
		return
	}
	entity := parts[2]
	format := r.URL.Query().Get("format")

	var (
		data        []byte
		contentType string
		err         error
	)
	switch entity {
	case "applications":
		data, contentType, err = h.export.ExportApplications(r.Context(), format, identity.Email)
	case "jobs":
		data, contentType, err = h.export.ExportJobs(r.Context(), format, identity.Email)
	case "users":
		data, contentType, err = h.export.ExportUsers(r.Context(), format, identity.Email)
	default:
		err = common.NewValidationError("invalid export entity", map[string]string{"entity": "entity must be applications, jobs, or users"})
	}
	if err != nil {
		response.Error(w, err)
		return
	}

	ext := "csv"
	if contentType == "application/json" {
		ext = "json"
	}
	filename := fmt.Sprintf("%s-export-%s.%s", entity, time.Now().UTC().Format("2006-01-02"), ext)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
