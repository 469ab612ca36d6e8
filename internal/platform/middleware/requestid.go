package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"badgeforge/pkg/requestcontext"
)

// RequestID assigns every request a UUID and stores it in the context so
// handlers and services can correlate log lines. An inbound X-Request-ID is
// honored when present so upstream proxies keep their correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
