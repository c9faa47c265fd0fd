package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/service"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

type AlertHandler struct {
	alertService service.IAlertService
	logger       *zap.Logger
}

func NewAlertHandler(alertService service.IAlertService, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{alertService: alertService, logger: logger}
}

func (h *AlertHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/alerts/expiration", h.SendExpirationAlerts)
	router.GET("/donations/locations", h.DonationLocations)
}

// SendExpirationAlerts evaluates the pantry and texts the user if
// anything expires within the next three days.
func (h *AlertHandler) SendExpirationAlerts(c *gin.Context) {
	var input types.ExpirationAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients and phone number are required."})
		return
	}

	result, err := h.alertService.SendExpirationAlerts(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to send expiration alert. Please check your SMS configuration.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// DonationLocations returns the curated donation directory.
func (h *AlertHandler) DonationLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": service.DonationLocations()})
}
