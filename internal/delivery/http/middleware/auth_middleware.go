package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-agenda/internal/domain/entity"
	"hospital-agenda/internal/service"
	"hospital-agenda/pkg/jwt"
	"hospital-agenda/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const PrincipalKey contextKey = "principal"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore service.TokenStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "El encabezado Authorization es requerido")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Formato de Authorization inválido")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Token inválido o expirado")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Tipo de token inválido")
			return
		}

		// Check if token exists in Redis (not revoked)
		exists, err := m.tokenStore.Exists(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate token: %+v", err)
			response.InternalServerError(w, "No se pudo validar el token")
			return
		}
		if !exists {
			response.Unauthorized(w, "El token ha sido revocado")
			return
		}

		principal := &entity.Principal{
			UserID:      claims.UserID,
			Email:       claims.Email,
			RoleID:      claims.RoleID,
			Permissions: claims.Permissions,
			TokenID:     claims.TokenID,
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// PrincipalFromContext extracts the authenticated caller from context
func PrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*entity.Principal)
	return principal, ok && principal != nil
}
