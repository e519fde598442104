package http

import (
	"fmt"
	"net/http"
	"strconv"

	"chatwidget/internal/entities"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// getBusinessID extracts the caller's business id from JWT context.
// Returns 0 for accounts with no business attached.
func getBusinessID(c *gin.Context) int {
	v, _ := c.Get("business_id")
	if id, ok := v.(float64); ok { // JWT numbers are float64 by default
		return int(id)
	}
	return 0
}

// requireBusiness aborts with 403 when the account has no business yet.
func requireBusiness(c *gin.Context) (int, bool) {
	businessID := getBusinessID(c)
	if businessID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "No business assigned to this account"})
		return 0, false
	}
	return businessID, true
}

// Custom Responses

func (h *Handler) ListResponses(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	responses, err := h.dashboardUsecase.ListResponses(businessID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, responses)
}

func (h *Handler) CreateResponse(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	var payload struct {
		Intent   string `json:"intent"`
		Pattern  string `json:"pattern"`
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if !ValidateLength(payload.Pattern, 1, MaxPatternLength) || !ValidateLength(payload.Response, 1, MaxResponseLength) {
		c.JSON(400, gin.H{"error": "Pattern and response are required"})
		return
	}

	resp := &entities.CustomResponse{
		BusinessID: businessID,
		Intent:     SanitizeString(payload.Intent),
		Pattern:    SanitizeString(payload.Pattern),
		Response:   SanitizeString(payload.Response),
	}
	if err := h.dashboardUsecase.CreateResponse(resp); err != nil {
		c.JSON(500, gin.H{"error": "Failed to save response"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) UpdateResponse(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid response id"})
		return
	}

	existing, err := h.dashboardUsecase.GetResponse(id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing == nil || existing.BusinessID != businessID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Response not found"})
		return
	}

	var payload struct {
		Intent   string `json:"intent"`
		Pattern  string `json:"pattern"`
		Response string `json:"response"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if !ValidateLength(payload.Pattern, 1, MaxPatternLength) || !ValidateLength(payload.Response, 1, MaxResponseLength) {
		c.JSON(400, gin.H{"error": "Pattern and response are required"})
		return
	}

	existing.Intent = SanitizeString(payload.Intent)
	existing.Pattern = SanitizeString(payload.Pattern)
	existing.Response = SanitizeString(payload.Response)
	if err := h.dashboardUsecase.UpdateResponse(existing); err != nil {
		c.JSON(500, gin.H{"error": "Failed to update response"})
		return
	}
	c.JSON(200, existing)
}

func (h *Handler) DeleteResponse(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid response id"})
		return
	}
	if err := h.dashboardUsecase.DeleteResponse(id, businessID); err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete response"})
		return
	}
	c.JSON(200, gin.H{"status": "deleted"})
}

// Business Profile

func (h *Handler) GetBusiness(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	business, err := h.businessRepo.GetByID(businessID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if business == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(200, business)
}

func (h *Handler) UpdateBusiness(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	var payload struct {
		Name         string `json:"name"`
		Category     string `json:"category"`
		NotifyChatID int64  `json:"notify_chat_id"`
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

	err := h.businessRepo.Update(businessID, SanitizeString(payload.Name), entities.BusinessCategory(payload.Category), payload.NotifyChatID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update business"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

// Widget Settings & Installation

func (h *Handler) GetWidgetSettings(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	settings, err := h.dashboardUsecase.GetAllSettings(businessID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, settings)
}

func (h *Handler) SetWidgetSetting(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	var payload struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if !ValidSettingKey(payload.Key) {
		c.JSON(400, gin.H{"error": "Invalid setting key"})
		return
	}
	if !ValidateLength(payload.Value, 0, MaxSettingValLen) {
		c.JSON(400, gin.H{"error": "Setting value too long"})
		return
	}

	if err := h.dashboardUsecase.SetSetting(businessID, payload.Key, SanitizeString(payload.Value)); err != nil {
		c.JSON(500, gin.H{"error": "Failed to save setting"})
		return
	}
	c.JSON(200, gin.H{"status": "updated"})
}

// GetWidgetSnippet returns the embed code the business pastes into its
// site.
func (h *Handler) GetWidgetSnippet(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	business, err := h.businessRepo.GetByID(businessID)
	if err != nil || business == nil {
		c.JSON(500, gin.H{"error": "Failed to load business"})
		return
	}

	snippet := fmt.Sprintf(`<script src="%s/widget.js" data-api-key="%s" async></script>`, h.baseURL, business.APIKey)
	c.JSON(200, gin.H{"snippet": snippet, "api_key": business.APIKey})
}

// GetWidgetQR returns a QR code PNG pointing at the widget test page, so
// admins can try the chat from a phone while setting it up.
func (h *Handler) GetWidgetQR(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	business, err := h.businessRepo.GetByID(businessID)
	if err != nil || business == nil {
		c.String(http.StatusInternalServerError, "Failed to load business")
		return
	}

	testURL := fmt.Sprintf("%s/widget/demo?api_key=%s", h.baseURL, business.APIKey)
	png, err := qrcode.Encode(testURL, qrcode.Medium, 256)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// Analytics & Conversations

func (h *Handler) GetBusinessStats(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	stats, err := h.dashboardUsecase.GetStats(businessID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, stats)
}

func (h *Handler) GetDailyActivity(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	days := 30
	if d, err := strconv.Atoi(c.Query("days")); err == nil && d > 0 && d <= 365 {
		days = d
	}
	activity, err := h.dashboardUsecase.GetDailyActivity(businessID, days)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, activity)
}

func (h *Handler) ListSessions(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	limit := 50
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 500 {
		limit = l
	}
	sessions, err := h.dashboardUsecase.ListSessions(businessID, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, sessions)
}

func (h *Handler) GetSessionMessages(c *gin.Context) {
	businessID, ok := requireBusiness(c)
	if !ok {
		return
	}
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid session id"})
		return
	}
	messages, err := h.dashboardUsecase.GetSessionTranscript(sessionID, businessID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if messages == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(200, messages)
}
