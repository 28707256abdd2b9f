package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"speechcraft-server/internal/generation"
	"speechcraft-server/internal/models"
	"speechcraft-server/internal/questionnaire"
)

// @Summary Список категорий речей
// @Tags wizard
// @Router /api/wizard/categories [get]
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.wizardService.Categories()})
}

// @Summary Видимые вопросы категории при данных ответах
// @Tags wizard
// @Router /api/wizard/questions [post]
func (h *Handler) visibleQuestions(c *gin.Context) {
	var req visibleQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	questions, err := h.wizardService.VisibleQuestions(req.Category, req.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": toQuestionResponses(questions)})
}

// @Summary Сохранение состояния мастера
// @Tags wizard
// @Router /api/wizard/state [put]
func (h *Handler) saveWizardState(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req wizardStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	state := &models.WizardState{
		Step:     req.Step,
		Category: req.Category,
		Answers:  req.Answers,
		Title:    req.Title,
		Draft:    req.Draft,
	}
	if err := h.wizardService.SaveState(c.Request.Context(), userID, state); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedAt": state.SavedAt})
}

// @Summary Восстановление состояния мастера
// @Tags wizard
// @Router /api/wizard/state [get]
func (h *Handler) recoverWizardState(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	state, err := h.wizardService.RecoverState(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	wizardRecoveriesTotal.Inc()
	c.JSON(http.StatusOK, state)
}

// @Summary Сброс мастера
// @Tags wizard
// @Router /api/wizard/state [delete]
func (h *Handler) resetWizard(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	if err := h.wizardService.Reset(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wizard state cleared"})
}

// @Summary Восстановление резервной копии черновика
// @Tags wizard
// @Router /api/wizard/draft-backup [get]
func (h *Handler) recoverDraftBackup(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	draft, err := h.wizardService.RecoverDraft(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse{Draft: draft})
}

// @Summary Генерация черновика речи
// @Tags wizard
// @Router /api/wizard/generate [post]
func (h *Handler) generateDraft(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := models.ErrorResponse{Code: models.ErrCodeBadRequest, Message: "Invalid request data: " + err.Error()}
		c.AbortWithStatusJSON(http.StatusBadRequest, errResp)
		return
	}

	draft, err := h.wizardService.Generate(c.Request.Context(), userID, &models.GenerationRequest{
		Title:    req.Title,
		Category: req.Category,
		Answers:  req.Answers,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if h.wizardService.GenerationState(userID) == generation.StateSucceeded {
		generationsTotal.WithLabelValues("remote").Inc()
	} else {
		generationsTotal.WithLabelValues("fallback").Inc()
	}
	c.JSON(http.StatusOK, draftResponse{Draft: draft})
}

// @Summary Состояние последней генерации
// @Tags wizard
// @Router /api/wizard/generation-state [get]
func (h *Handler) generationState(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		handleServiceError(c, models.ErrTokenInvalid)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.wizardService.GenerationState(userID)})
}

func toQuestionResponses(questions []questionnaire.Question) []questionResponse {
	out := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionResponse{
			Text:        q.Text,
			Kind:        string(q.Kind),
			Options:     q.Options,
			Placeholder: q.Placeholder,
		})
	}
	return out
}
