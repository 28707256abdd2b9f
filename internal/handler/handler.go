package handler

import (
	"github.com/gin-gonic/gin"

	"speechcraft-server/internal/config"
	"speechcraft-server/internal/service"
)

// Handler handles HTTP requests of the speechcraft API.
type Handler struct {
	authService   service.AuthService
	wizardService service.WizardService
	speechService service.SpeechService
	subscriptions service.SubscriptionService
	adminService  service.AdminService
	cfg           *config.Config
}

func NewHandler(
	authService service.AuthService,
	wizardService service.WizardService,
	speechService service.SpeechService,
	subscriptions service.SubscriptionService,
	adminService service.AdminService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:   authService,
		wizardService: wizardService,
		speechService: speechService,
		subscriptions: subscriptions,
		adminService:  adminService,
		cfg:           cfg,
	}
}

// RegisterRoutes регистрирует все маршруты API.
// generateLimiter - опциональный ограничитель частоты запросов генерации.
func (h *Handler) RegisterRoutes(router *gin.Engine, generateLimiter gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/refresh", h.refresh)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
	}

	api := router.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.GET("/me", h.getMe)
		api.GET("/subscription", h.getSubscription)

		wizard := api.Group("/wizard")
		{
			wizard.GET("/categories", h.listCategories)
			wizard.POST("/questions", h.visibleQuestions)
			wizard.GET("/state", h.recoverWizardState)
			wizard.PUT("/state", h.saveWizardState)
			wizard.DELETE("/state", h.resetWizard)
			wizard.GET("/draft-backup", h.recoverDraftBackup)
			wizard.GET("/generation-state", h.generationState)
			if generateLimiter != nil {
				wizard.POST("/generate", generateLimiter, h.generateDraft)
			} else {
				wizard.POST("/generate", h.generateDraft)
			}
		}

		speeches := api.Group("/speeches")
		{
			speeches.POST("", h.saveSpeech)
			speeches.GET("", h.listSpeeches)
			speeches.GET("/:speech_id", h.getSpeech)
			speeches.PUT("/:speech_id", h.updateSpeech)
			speeches.DELETE("/:speech_id", h.deleteSpeech)
			speeches.GET("/:speech_id/export", h.exportSpeech)
		}
	}

	admin := router.Group("/admin")
	admin.Use(h.AuthMiddleware(), h.RequireAdminRole())
	{
		admin.GET("/users", h.adminListUsers)
		admin.GET("/users/:user_id", h.adminGetUser)
		admin.POST("/users/:user_id/ban", h.adminBanUser)
		admin.DELETE("/users/:user_id/ban", h.adminUnbanUser)
		admin.GET("/users/:user_id/subscription", h.adminGetSubscription)
		admin.PUT("/users/:user_id/subscription", h.adminChangePlan)
	}
}
