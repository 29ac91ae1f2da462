// Package httptransport wires the module handlers into one chi router.
// Handlers stay thin; everything here is mounting and middleware order.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	alerthandler "vigia/internal/alert/handler"
	operationhandler "vigia/internal/operation/handler"
	"vigia/internal/platform/middleware"
	screeninghandler "vigia/internal/screening/handler"
	"vigia/pkg/platform/httputil"
)

// Deps carries everything the router mounts.
type Deps struct {
	Operations *operationhandler.Handler
	Screening  *screeninghandler.Handler
	Alerts     *alerthandler.Handler

	TokenValidator middleware.TokenValidator
	Logger         *slog.Logger
	Health         func() error
}

// NewRouter builds the full HTTP surface. Alert endpoints require a reviewer
// token; intake, preview, and screening are open to the office systems that
// sit in front of this service.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)

	r.Get("/healthz", handleHealth(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		deps.Operations.Register(r)
		deps.Screening.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.TokenValidator, deps.Logger))
		deps.Alerts.Register(r)
	})

	return r
}

func handleHealth(check func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
