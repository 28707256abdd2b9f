package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechcraft-server/internal/models"
)

// @Summary Информация о текущем пользователе
// @Tags api
// @Router /api/me [get]
func (h *Handler) getMe(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	user, err := h.adminService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Roles:       user.Roles,
		IsBanned:    user.IsBanned,
	})
}

// @Summary Подписка текущего пользователя
// @Tags api
// @Router /api/subscription [get]
func (h *Handler) getSubscription(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	sub, err := h.subscriptions.GetForUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
