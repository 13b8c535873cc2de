package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Fortis-Ledger/Career-Portal/internal/http/handlers"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/metrics"
	httpmw "github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
)

type RouterDependencies struct {
	JobHandler         *handlers.JobHandler
	CompanyHandler     *handlers.CompanyHandler
	ProfileHandler     *handlers.ProfileHandler
	ApplicationHandler *handlers.ApplicationHandler
	UserHandler        *handlers.UserHandler
	SettingsHandler    *handlers.SettingsHandler
	ExportHandler      *handlers.ExportHandler
	StatsHandler       *handlers.StatsHandler
	NotifyHandler      *handlers.NotifyHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Limiter            httpmw.Limiter
	Logger             zerolog.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const (
	maxBodyBytes    = 1 << 20
	rateLimitPerMin = 120
	rateLimitWindow = time.Minute
)

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	middlewares := []httpmw.Middleware{
		httpmw.RequestID,
		httpmw.Logging(r.deps.Logger),
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Recover,
		httpmw.Metrics(r.deps.Metrics),
		httpmw.Timeout(r.deps.RequestTimeout),
	}
	if r.deps.Limiter != nil {
		middlewares = append(middlewares, httpmw.RateLimit(r.deps.Limiter, rateLimitPerMin, rateLimitWindow))
	}
	handler := httpmw.Chain(r.baseHandler(), middlewares...)
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.Metrics.Handler().ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/"):
			r.deps.JobHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/companies":
			r.deps.CompanyHandler.List(w, req)
			return
		}

		if strings.HasPrefix(path, "/profile") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/admin") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/profile":
		r.deps.ProfileHandler.Get(w, req)
		return
	case req.Method == http.MethodPut && path == "/profile":
		r.deps.ProfileHandler.Put(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		r.deps.ApplicationHandler.Apply(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.ListMine(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/applications":
		r.deps.ApplicationHandler.AdminList(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/admin/applications/") && strings.HasSuffix(path, "/status"):
		r.deps.ApplicationHandler.UpdateStatus(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/admin/applications/") && strings.HasSuffix(path, "/notes"):
		r.deps.ApplicationHandler.UpdateNotes(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/admin/applications/"):
		r.deps.ApplicationHandler.AdminGet(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/jobs":
		r.deps.JobHandler.AdminList(w, req)
		return
	case req.Method == http.MethodPost && path == "/admin/jobs":
		r.deps.JobHandler.AdminCreate(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/admin/jobs/") && strings.HasSuffix(path, "/active"):
		r.deps.JobHandler.AdminSetActive(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/admin/jobs/"):
		r.deps.JobHandler.AdminUpdate(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/jobs/"):
		r.deps.JobHandler.AdminDelete(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/companies":
		r.deps.CompanyHandler.AdminList(w, req)
		return
	case req.Method == http.MethodPost && path == "/admin/companies":
		r.deps.CompanyHandler.AdminCreate(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/admin/companies/"):
		r.deps.CompanyHandler.AdminUpdate(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/admin/companies/"):
		r.deps.CompanyHandler.AdminDelete(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/users":
		r.deps.UserHandler.AdminList(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/settings":
		r.deps.SettingsHandler.Get(w, req)
		return
	case req.Method == http.MethodPut && path == "/admin/settings":
		r.deps.SettingsHandler.Update(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/admin/export/"):
		r.deps.ExportHandler.Export(w, req)
		return
	case req.Method == http.MethodGet && path == "/admin/stats":
		r.deps.StatsHandler.Dashboard(w, req)
		return
	case req.Method == http.MethodPost && path == "/admin/notify":
		r.deps.NotifyHandler.SendCustom(w, req)
		return
	}

	http.NotFound(w, req)
}
