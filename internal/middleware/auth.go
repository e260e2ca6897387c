package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"changelog/internal/auth"
	"changelog/internal/httputil"
)

// PublicRoute identifies a method+path pair that skips authentication.
type PublicRoute struct {
	Method string
	Path   string
}

// Auth verifies the bearer credential on every request except the listed
// public routes, attaching the decoded identity to the request context.
// Any failure is a uniform 401; no detail about why the token was rejected
// leaks to the caller.
func Auth(verifier auth.TokenVerifier, logger *slog.Logger, public ...PublicRoute) func(http.Handler) http.Handler {
	skip := make(map[PublicRoute]struct{}, len(public))
	for _, route := range public {
		skip[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[PublicRoute{Method: r.Method, Path: r.URL.Path}]; ok {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("bearer token rejected", "path", r.URL.Path, "method", r.Method)
				httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, claims.Identity()))
		})
	}
}
