package middleware

import (
	"net/http"
	"strings"

	"badgeforge/internal/platform/config"
	dErrors "badgeforge/pkg/domain-errors"
	"badgeforge/pkg/platform/httputil"
)

// OriginPolicy is the trust boundary for browser callers: an immutable rule
// set built once from the configuration snapshot and evaluated as a pure
// function per request.
type OriginPolicy struct {
	exact      map[string]struct{}
	suffixes   []string
	substrings []string
}

// Local dev origins admitted outside production.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
}

// NewOriginPolicy derives the allowed-origin rules from config. Exact
// matches come from FRONTEND_URL, VERCEL_DOMAINS, and (outside production)
// the local dev origins. Suffix rules admit any Vercel deployment, and the
// substring rules admit anything mentioning localhost or 127.0.0.1.
func NewOriginPolicy(cfg config.Config) OriginPolicy {
	exact := make(map[string]struct{})
	if cfg.FrontendURL != "" {
		exact[cfg.FrontendURL] = struct{}{}
	}
	for _, domain := range cfg.VercelDomains {
		exact[domain] = struct{}{}
	}
	if !cfg.Production() {
		for _, origin := range devOrigins {
			exact[origin] = struct{}{}
		}
	}

	return OriginPolicy{
		exact:    exact,
		suffixes: []string{".vercel.app", ".vercel.com"},
		// Substring matching (not parsed-hostname) is intentional legacy
		// behavior; see DESIGN.md before changing it.
		substrings: []string{"localhost", "127.0.0.1"},
	}
}

// Allows decides admission for one origin. An empty origin (non-browser
// caller) is always admitted.
func (p OriginPolicy) Allows(origin string) bool {
	if origin == "" {
		return true
	}
	if _, ok := p.exact[origin]; ok {
		return true
	}
	for _, suffix := range p.suffixes {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	for _, sub := range p.substrings {
		if strings.Contains(origin, sub) {
			return true
		}
	}
	return false
}

const (
	allowedMethods = "GET, POST, PUT, DELETE, PATCH, OPTIONS"
	allowedHeaders = "Origin, X-Requested-With, Content-Type, Accept, Authorization"
	exposedHeaders = "X-Total-Count, X-Page-Count"
	preflightAge   = "86400" // 24h browser preflight cache
)

// CORS enforces the origin policy before any handler runs. Disallowed
// origins get a 403 naming the offender; admitted browser origins get
// credentialed CORS headers, and preflights are answered directly.
func CORS(policy OriginPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !policy.Allows(origin) {
				httputil.WriteError(w, dErrors.New(dErrors.CodeOriginForbidden, "origin not allowed: "+origin))
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", allowedMethods)
			h.Set("Access-Control-Allow-Headers", allowedHeaders)
			h.Set("Access-Control-Expose-Headers", exposedHeaders)
			h.Set("Access-Control-Max-Age", preflightAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
