package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"speechcraft-server/internal/models"
)

// @Summary Список пользователей
// @Tags admin
// @Router /admin/users [get]
func (h *Handler) adminListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	users, total, err := h.adminService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total})
}

// @Summary Информация о пользователе
// @Tags admin
// @Router /admin/users/{user_id} [get]
func (h *Handler) adminGetUser(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Бан пользователя
// @Tags admin
// @Router /admin/users/{user_id}/ban [post]
func (h *Handler) adminBanUser(c *gin.Context) {
	h.setBan(c, true)
}

// @Summary Разбан пользователя
// @Tags admin
// @Router /admin/users/{user_id}/ban [delete]
func (h *Handler) adminUnbanUser(c *gin.Context) {
	h.setBan(c, false)
}

func (h *Handler) setBan(c *gin.Context, banned bool) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.SetUserBan(c.Request.Context(), userID, banned); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID.String(), "isBanned": banned})
}

// @Summary Подписка пользователя
// @Tags admin
// @Router /admin/users/{user_id}/subscription [get]
func (h *Handler) adminGetSubscription(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	sub, err := h.adminService.UserSubscription(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// @Summary Смена плана пользователя
// @Tags admin
// @Router /admin/users/{user_id}/subscription [put]
func (h *Handler) adminChangePlan(c *gin.Context) {
	userID, ok := h.pathUserID(c)
	if !ok {
		return
	}

	var req changePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	if err := h.adminService.ChangeUserPlan(c.Request.Context(), userID, models.Plan(req.Plan)); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": userID.String(), "plan": req.Plan})
}

func (h *Handler) pathUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid user ID"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return uuid.Nil, false
	}
	return userID, true
}
