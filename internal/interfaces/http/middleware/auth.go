package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userUsecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/identity"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// AuthMiddleware verifies the identity provider's session token and
// resolves the internal user record, creating it on first sight.
type AuthMiddleware struct {
	verifier    *identity.TokenVerifier
	resolveUser userUsecases.ResolveUserExecutor
	logger      logger.Interface
}

func NewAuthMiddleware(
	verifier *identity.TokenVerifier,
	resolveUser userUsecases.ResolveUserExecutor,
	logger logger.Interface,
) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:    verifier,
		resolveUser: resolveUser,
		logger:      logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		ident, err := m.verifier.VerifyToken(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		result, err := m.resolveUser.Execute(c.Request.Context(), userUsecases.ResolveUserCommand{
			ExternalID: ident.ExternalID,
			Email:      ident.Email,
			Name:       ident.Name,
		})
		if err != nil {
			m.logger.Errorw("failed to resolve user", "error", err, "external_id", ident.ExternalID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "failed to resolve user")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, result.UserID)
		c.Set(constants.ContextKeyUserRole, result.Role)
		c.Set(constants.ContextKeyExternalID, result.ExternalID)

		c.Next()
	}
}

// RequireStaff gates a route to agents and admins. Must run after
// RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleAgent && role != constants.RoleAdmin {
			utils.ErrorResponse(c, http.StatusForbidden, "staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
