package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// RecipeHandler handles recipe recommendation requests.
type RecipeHandler struct {
	pipeline RecommendationRunner
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(pipeline RecommendationRunner) *RecipeHandler {
	return &RecipeHandler{pipeline: pipeline}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recommend-recipe", h.RecommendRecipe)
}

// RecommendRecipe handles POST /api/v1/recommend-recipe.
func (h *RecipeHandler) RecommendRecipe(c *gin.Context) {
	var req types.RecommendRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Envelope{
			Status: http.StatusBadRequest,
			Data:   types.ErrorBody{Error: "Invalid request body"},
		})
		return
	}

	recipes, err := h.pipeline.Run(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.Envelope{
		Status: http.StatusOK,
		Data:   recipes,
	})
}
