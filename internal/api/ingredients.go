package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/storage"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// IngredientHandler handles shopping-list photo uploads.
type IngredientHandler struct {
	pipeline ExtractionRunner
	store    *storage.TempStore
}

// NewIngredientHandler creates a new IngredientHandler instance.
func NewIngredientHandler(pipeline ExtractionRunner, store *storage.TempStore) *IngredientHandler {
	return &IngredientHandler{
		pipeline: pipeline,
		store:    store,
	}
}

// RegisterRoutes registers the ingredient routes.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/parse-ingredients", h.ParseIngredients)
}

// ParseIngredients handles POST /api/v1/parse-ingredients. The uploaded image
// lives in the temp store only for the duration of this request; cleanup is
// deferred before any pipeline work so the file is released on every exit
// path.
func (h *IngredientHandler) ParseIngredients(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	path, cleanup, err := h.store.Save(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.Envelope{
			Status: http.StatusInternalServerError,
			Data:   types.ErrorBody{Error: "Failed to store image"},
		})
		return
	}
	defer cleanup()

	items, err := h.pipeline.Run(c.Request.Context(), path)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.Envelope{
		Status: http.StatusOK,
		Data:   items,
	})
}
