package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/vx-block-audit/internal/api/handler/router"
	"github.com/vfg2006/vx-block-audit/internal/config"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
	"github.com/vfg2006/vx-block-audit/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func DashboardPages(service auditing.Auditor, settings config.Dashboard) []router.Route {
	basicAuth := middleware.DashboardBasicAuth(settings.User, settings.PasswordHash)

	return []router.Route{
		{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     Dashboard(settings),
			Middlewares: []func(http.Handler) http.Handler{basicAuth},
		},
		{
			Path:        "/run",
			Method:      http.MethodPost,
			Handler:     RunAudit(service, settings),
			Middlewares: []func(http.Handler) http.Handler{basicAuth},
		},
	}
}

func Audits(service auditing.Auditor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audits",
			Method:  http.MethodPost,
			Handler: CreateAudit(service),
		},
		{
			Path:    "/v1/audits",
			Method:  http.MethodGet,
			Handler: ListAuditRuns(service),
		},
		{
			Path:    "/v1/audits/:id",
			Method:  http.MethodGet,
			Handler: GetAuditRun(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

// NotFound answers API paths with the JSON error envelope and everything
// else with a plain 404.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v1/") {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "route not found", nil)
			return
		}
		http.NotFound(w, r)
	})
}
