package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moramnavadeep/FreshNCook/internal/service"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

type SpoilageHandler struct {
	spoilageService service.ISpoilageService
}

func NewSpoilageHandler(spoilageService service.ISpoilageService) *SpoilageHandler {
	return &SpoilageHandler{spoilageService: spoilageService}
}

func (h *SpoilageHandler) RegisterRoutes(router *gin.RouterGroup) {
	vegetables := router.Group("/vegetables")
	{
		vegetables.POST("/spoilage", h.DetectSpoilage)
	}
}

// DetectSpoilage analyzes a vegetable photo for freshness. The service
// never fails; a bad request still gets 400, but any analysis trouble
// comes back as a 200 with the fallback verdict.
func (h *SpoilageHandler) DetectSpoilage(c *gin.Context) {
	var input types.DetectSpoilageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vegetable name and image are required."})
		return
	}

	result := h.spoilageService.DetectSpoiledVegetable(c.Request.Context(), &input)
	c.JSON(http.StatusOK, result)
}
