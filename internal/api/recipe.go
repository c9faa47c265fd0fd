package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/service"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	logger        *zap.Logger
}

func NewRecipeHandler(recipeService service.IRecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, logger: logger}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.POST("/suggest", h.SuggestRecipes)
		recipes.POST("/plan", h.GenerateRecipePlan)
		recipes.POST("/translate", h.TranslateRecipe)
		recipes.POST("/audio", h.GenerateRecipeAudio)
		recipes.POST("/:id/image", h.BackfillRecipeImage)
	}
}

// SuggestRecipes suggests recipes limited to the supplied ingredients.
func (h *RecipeHandler) SuggestRecipes(c *gin.Context) {
	var input types.SuggestRecipesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided."})
		return
	}

	output, err := h.recipeService.SuggestRecipes(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate recipe suggestions. The AI may be experiencing high load. Please try again in a moment.")
		return
	}

	c.JSON(http.StatusOK, output)
}

type planRequest struct {
	RecipeName string `json:"recipeName"`
}

// GenerateRecipePlan returns a step-by-step cooking workflow.
func (h *RecipeHandler) GenerateRecipePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipeName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe name is required."})
		return
	}

	plan, err := h.recipeService.GenerateRecipePlan(c.Request.Context(), req.RecipeName)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate recipe plan. The AI may be experiencing high load. Please try again.")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// TranslateRecipe translates a recipe's text into the target language.
func (h *RecipeHandler) TranslateRecipe(c *gin.Context) {
	var input types.TranslateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe content and target language are required."})
		return
	}

	output, err := h.recipeService.TranslateRecipe(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to translate recipe. Please try again.")
		return
	}

	c.JSON(http.StatusOK, output)
}

// GenerateRecipeAudio narrates recipe text in the requested language.
func (h *RecipeHandler) GenerateRecipeAudio(c *gin.Context) {
	var input types.GenerateAudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and language are required to generate audio."})
		return
	}

	output, err := h.recipeService.GenerateRecipeAudio(c.Request.Context(), &input)
	if err != nil {
		respondError(c, h.logger, err, "Failed to generate recipe audio. Please try again.")
		return
	}

	c.JSON(http.StatusOK, output)
}

type backfillRequest struct {
	SessionID string `json:"sessionId"`
}

// BackfillRecipeImage generates the real image for one suggested recipe
// and swaps it in for the placeholder.
func (h *RecipeHandler) BackfillRecipeImage(c *gin.Context) {
	recipeID := c.Param("id")

	var req backfillRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required."})
		return
	}

	output, err := h.recipeService.BackfillRecipeImage(c.Request.Context(), req.SessionID, recipeID)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found."})
			return
		}
		respondError(c, h.logger, err, "Failed to generate recipe image. Please try again.")
		return
	}

	c.JSON(http.StatusOK, output)
}
