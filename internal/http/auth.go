package http

import (
	"net/http"
	"strings"

	"github.com/Flarenzy/subnetter/internal/auth"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		authz := r.Header.Get("Authorization")
		tokenStr, ok := strings.CutPrefix(authz, "Bearer ")
		if !ok || tokenStr == "" {
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing token"})
			return
		}

		principal, err := a.Authenticator.Authenticate(ctx, tokenStr)
		if err != nil {
			a.Logger.DebugContext(ctx, "rejected bearer token", "err", err.Error())
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(ctx, principal)))
	})
}
