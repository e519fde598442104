package http

import (
	"errors"
	"net/http"

	"chatwidget/internal/entities"
	"chatwidget/internal/repository"
	"chatwidget/internal/usecases"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	chatService      *usecases.ChatService
	dashboardUsecase *usecases.DashboardUsecase
	businessRepo     *repository.BusinessRepository
	userRepo         *repository.UserRepository
	settingsRepo     *repository.SettingsRepository
	baseURL          string
}

func NewHandler(chatService *usecases.ChatService, dashboard *usecases.DashboardUsecase, businessRepo *repository.BusinessRepository, userRepo *repository.UserRepository, settingsRepo *repository.SettingsRepository, baseURL string) *Handler {
	return &Handler{
		chatService:      chatService,
		dashboardUsecase: dashboard,
		businessRepo:     businessRepo,
		userRepo:         userRepo,
		settingsRepo:     settingsRepo,
		baseURL:          baseURL,
	}
}

func SetupRoutes(r *gin.Engine, chatService *usecases.ChatService, auth *usecases.AuthUsecase, dashboard *usecases.DashboardUsecase, businessRepo *repository.BusinessRepository, userRepo *repository.UserRepository, settingsRepo *repository.SettingsRepository, statsRepo *repository.StatsRepository, middleware *Middleware, baseURL string) {
	h := NewHandler(chatService, dashboard, businessRepo, userRepo, settingsRepo, baseURL)
	adminHandler := NewAdminHandler(businessRepo, userRepo, statsRepo)

	// Apply Security Middleware
	r.Use(SecurityHeaders())
	r.Use(RequestSizeLimiter(1 << 20)) // 1MB max request size
	r.Use(middleware.CORSMiddleware())

	// Widget Routes (public, credentialed by api_key in the body)
	r.POST("/api/chat", h.HandleChatMessage)
	r.POST("/api/chat/end", h.HandleEndChat)
	r.GET("/api/widget/config", h.GetWidgetConfig)

	// Public Auth Routes
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/login", func(c *gin.Context) {
			var loginReq struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&loginReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			token, err := auth.Login(loginReq.Username, loginReq.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})

		authGroup.POST("/register", func(c *gin.Context) {
			var regReq struct {
				Username string `json:"username"`
				Password string `json:"password"`
				Email    string `json:"email"`
			}
			if err := c.ShouldBindJSON(&regReq); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
				return
			}
			if !ValidSlug(regReq.Username) || len(regReq.Password) < 6 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password (min 6 chars)"})
				return
			}
			if _, err := auth.Register(regReq.Username, regReq.Password, regReq.Email); err != nil {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"status": "registered"})
		})
	}

	// Protected Dashboard Routes
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	api.Use(middleware.RateLimitPerUser(5, 10))
	{
		// Custom Response Routes
		api.GET("/responses", h.ListResponses)
		api.POST("/responses", h.CreateResponse)
		api.PUT("/responses/:id", h.UpdateResponse)
		api.DELETE("/responses/:id", h.DeleteResponse)

		// Business Profile
		api.GET("/business", h.GetBusiness)
		api.PUT("/business", h.UpdateBusiness)

		// Widget Settings & Installation
		api.GET("/widget/settings", h.GetWidgetSettings)
		api.POST("/widget/settings", h.SetWidgetSetting)
		api.GET("/widget/snippet", h.GetWidgetSnippet)
		api.GET("/widget/qr", h.GetWidgetQR)

		// Analytics & Conversations
		api.GET("/dashboard/stats", h.GetBusinessStats)
		api.GET("/dashboard/activity", h.GetDailyActivity)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id/messages", h.GetSessionMessages)
	}

	// Super-Admin Routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/stats", adminHandler.GetStats)
		admin.GET("/businesses", adminHandler.GetAllBusinesses)
		admin.POST("/businesses", adminHandler.CreateBusiness)
		admin.POST("/businesses/:id/rotate-key", adminHandler.RotateAPIKey)
	}
}

// HandleChatMessage is the widget's message endpoint: authenticate the
// api_key, resolve or create the session, persist both sides of the
// exchange and return the bot reply.
func (h *Handler) HandleChatMessage(c *gin.Context) {
	var payload struct {
		APIKey    string `json:"api_key"`
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	message := TruncateString(SanitizeString(payload.Message), MaxMessageLength)

	reply, err := h.chatService.HandleMessage(payload.APIKey, message, payload.SessionID, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		h.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"response":   reply.Response,
		"session_id": reply.SessionToken,
	})
}

// HandleEndChat closes the visitor's open session when the chat window
// is dismissed.
func (h *Handler) HandleEndChat(c *gin.Context) {
	var payload struct {
		APIKey    string `json:"api_key"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := h.chatService.EndSession(payload.APIKey, payload.SessionID)
	if err != nil {
		if errors.Is(err, entities.ErrNoOpenSession) {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "No open session"})
			return
		}
		h.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetWidgetConfig bootstraps the embedded widget: appearance settings
// plus the business name, looked up by api_key query param.
func (h *Handler) GetWidgetConfig(c *gin.Context) {
	apiKey := c.Query("api_key")
	if apiKey == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "API key is missing"})
		return
	}

	business, err := h.businessRepo.ResolveAPIKey(apiKey)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Service temporarily unavailable"})
		return
	}
	if business == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid API key"})
		return
	}

	settings, err := h.settingsRepo.All(business.ID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Service temporarily unavailable"})
		return
	}

	config := gin.H{"business_name": business.Name}
	for _, s := range settings {
		config[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "config": config})
}

// writeChatError maps the chat flow's error taxonomy onto HTTP statuses.
// Storage failures become 503 so the widget can retry; they are never
// disguised as a normal bot reply.
func (h *Handler) writeChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
	case errors.Is(err, entities.ErrEmptySessionToken):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Session ID is required"})
	case errors.Is(err, entities.ErrInvalidAPIKey):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid API key"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Service temporarily unavailable"})
	}
}
