package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/service"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

type PantryHandler struct {
	pantryService service.IPantryService
	logger        *zap.Logger
}

func NewPantryHandler(pantryService service.IPantryService, logger *zap.Logger) *PantryHandler {
	return &PantryHandler{pantryService: pantryService, logger: logger}
}

func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	pantry := router.Group("/pantry")
	{
		pantry.POST("/extract", h.ExtractIngredients)
	}
}

// ExtractIngredients turns a receipt photo into structured ingredients.
func (h *PantryHandler) ExtractIngredients(c *gin.Context) {
	var input types.ExtractIngredientsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt image data."})
		return
	}

	output, err := h.pantryService.ExtractIngredients(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to process receipt. The AI may be experiencing high load. Please try again.")
		return
	}

	c.JSON(http.StatusOK, output)
}
