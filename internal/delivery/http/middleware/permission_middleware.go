package middleware

import (
	"net/http"

	"hospital-agenda/pkg/response"
)

// RequirePermission creates a middleware that checks the caller holds
// permission. The principal is read from context (set by AuthMiddleware);
// admins pass every check.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "No se encontró la información de autenticación")
				return
			}

			if !principal.Can(permission) {
				response.Forbidden(w, "No tiene permiso para acceder a este recurso")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
