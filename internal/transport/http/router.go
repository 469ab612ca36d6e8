// Package httptransport assembles the HTTP surface: middleware chain,
// domain handlers, and the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"badgeforge/internal/platform/metrics"
	"badgeforge/internal/platform/middleware"
	"badgeforge/pkg/platform/httputil"
)

// Registrar is implemented by domain handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all public endpoints behind the shared middleware chain.
// CORS runs before routing-adjacent middleware reach any handler so
// disallowed origins never touch business logic.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, policy middleware.OriginPolicy, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))
	r.Use(middleware.CORS(policy))

	r.Get("/ping", handlePing)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}

	return r
}

func handlePing(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"msg": "Pong"})
}
