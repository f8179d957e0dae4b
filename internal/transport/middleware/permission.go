package middleware

import (
	"log/slog"
	"net/http"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
)

// RequireRoles creates a middleware that rejects users outside the given roles
func RequireRoles(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFromContext(r.Context())
			if !ok || user == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			allowed := false
			for _, role := range roles {
				if user.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				slog.Warn("Access denied: user lacks required role",
					"user_id", user.ID,
					"required_roles", roles,
					"user_role", user.Role)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
