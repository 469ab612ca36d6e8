package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	dErrors "badgeforge/pkg/domain-errors"
	"badgeforge/pkg/platform/httputil"
	"badgeforge/pkg/requestcontext"
)

// Recovery is the last-resort safety net: a panicking handler is logged with
// its stack and answered with a generic 500 envelope. Normal operation never
// reaches this path because handlers translate their own errors.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						"request_id", requestcontext.RequestID(r.Context()),
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
