package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"speechcraft-server/internal/models"
)

// @Summary Сохранение речи
// @Tags speeches
// @Router /api/speeches [post]
func (h *Handler) saveSpeech(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req saveSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	speech, err := h.speechService.Save(c.Request.Context(), userID, req.Title, req.Content, req.Category)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	speechesSavedTotal.Inc()
	c.JSON(http.StatusCreated, speech)
}

// @Summary Список речей пользователя
// @Tags speeches
// @Router /api/speeches [get]
func (h *Handler) listSpeeches(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	speeches, err := h.speechService.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"speeches": speeches})
}

// @Summary Получение речи
// @Tags speeches
// @Router /api/speeches/{speech_id} [get]
func (h *Handler) getSpeech(c *gin.Context) {
	userID, speechID, ok := h.speechRequestIDs(c)
	if !ok {
		return
	}

	speech, err := h.speechService.Get(c.Request.Context(), userID, speechID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, speech)
}

// @Summary Обновление речи
// @Tags speeches
// @Router /api/speeches/{speech_id} [put]
func (h *Handler) updateSpeech(c *gin.Context) {
	userID, speechID, ok := h.speechRequestIDs(c)
	if !ok {
		return
	}

	var req updateSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	speech, err := h.speechService.Update(c.Request.Context(), userID, speechID, req.Title, req.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, speech)
}

// @Summary Удаление речи
// @Tags speeches
// @Router /api/speeches/{speech_id} [delete]
func (h *Handler) deleteSpeech(c *gin.Context) {
	userID, speechID, ok := h.speechRequestIDs(c)
	if !ok {
		return
	}

	if err := h.speechService.Delete(c.Request.Context(), userID, speechID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Speech deleted"})
}

// @Summary Экспорт речи
// @Tags speeches
// @Router /api/speeches/{speech_id}/export [get]
func (h *Handler) exportSpeech(c *gin.Context) {
	userID, speechID, ok := h.speechRequestIDs(c)
	if !ok {
		return
	}

	switch format := c.DefaultQuery("format", "html"); format {
	case "html":
		html, err := h.speechService.ExportHTML(c.Request.Context(), userID, speechID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	case "markdown":
		// Разметка хранится как есть, экспорт в markdown - это исходный текст.
		speech, err := h.speechService.Get(c.Request.Context(), userID, speechID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(speech.Content))
	default:
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Unsupported export format: " + format}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
	}
}

// speechRequestIDs достает user_id из контекста и speech_id из пути.
func (h *Handler) speechRequestIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return uuid.Nil, uuid.Nil, false
	}

	speechID, err := uuid.Parse(c.Param("speech_id"))
	if err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid speech ID"}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, speechID, true
}
