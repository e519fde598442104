package http

import (
	"net/http"
	"strconv"

	"chatwidget/internal/entities"
	"chatwidget/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the super-admin surface: platform stats and
// business provisioning.
type AdminHandler struct {
	businessRepo *repository.BusinessRepository
	userRepo     *repository.UserRepository
	statsRepo    *repository.StatsRepository
}

func NewAdminHandler(businessRepo *repository.BusinessRepository, userRepo *repository.UserRepository, statsRepo *repository.StatsRepository) *AdminHandler {
	return &AdminHandler{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		statsRepo:    statsRepo,
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsRepo.GetPlatformStats()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, stats)
}

func (h *AdminHandler) GetAllBusinesses(c *gin.Context) {
	businesses, err := h.businessRepo.GetAll()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, businesses)
}

// CreateBusiness provisions a tenant and links it to an existing
// dashboard account. The generated api_key is returned once here; the
// admin passes it on with the embed snippet.
func (h *AdminHandler) CreateBusiness(c *gin.Context) {
	var payload struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		AdminID  int    `json:"admin_id"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if !ValidateLength(payload.Name, 1, 100) {
		c.JSON(400, gin.H{"error": "Name is required"})
		return
	}
	if !entities.ValidCategory(payload.Category) {
		c.JSON(400, gin.H{"error": "Unknown business category"})
		return
	}

	if payload.AdminID != 0 {
		admin, err := h.userRepo.GetByID(payload.AdminID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		if admin == nil {
			c.JSON(400, gin.H{"error": "Admin user not found"})
			return
		}
	}

	business := &entities.Business{
		Name:     SanitizeString(payload.Name),
		Category: entities.BusinessCategory(payload.Category),
		AdminID:  payload.AdminID,
	}
	if err := h.businessRepo.Create(business); err != nil {
		c.JSON(500, gin.H{"error": "Failed to create business"})
		return
	}

	if payload.AdminID != 0 {
		if err := h.userRepo.AssignBusiness(payload.AdminID, business.ID); err != nil {
			c.JSON(500, gin.H{"error": "Business created but admin link failed"})
			return
		}
	}

	c.JSON(http.StatusCreated, business)
}

func (h *AdminHandler) RotateAPIKey(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid business id"})
		return
	}

	business, err := h.businessRepo.GetByID(id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if business == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}

	key, err := h.businessRepo.RotateAPIKey(id)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to rotate key"})
		return
	}
	c.JSON(200, gin.H{"api_key": key})
}
