package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"speechcraft-server/internal/models"
)

// AuthMiddleware проверяет Bearer токен и статус пользователя, кладет
// user_id, roles и access_uuid в контекст запроса.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			zap.L().Warn("Authorization header missing")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			zap.L().Warn("Invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		claims, err := h.authService.ValidateAndGetClaims(c.Request.Context(), parts[1])
		if err != nil {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set("user_id", claims.UserID)
		c.Set("roles", claims.Roles)
		c.Set("access_uuid", claims.ID)
		c.Next()
	}
}

// RequireAdminRole пропускает только пользователей с ролью администратора.
// Должен стоять после AuthMiddleware.
func (h *Handler) RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := c.Get("roles")
		userRoles, cast := roles.([]string)
		if !ok || !cast || !models.HasRole(userRoles, models.RoleAdmin) {
			zap.L().Warn("Admin access denied", zap.Any("roles", roles))
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Code:    models.ErrCodeForbidden,
				Message: "Admin privileges required",
			})
			return
		}
		c.Next()
	}
}

// userIDFromContext достает user_id, положенный AuthMiddleware.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
