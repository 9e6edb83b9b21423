package api

import (
	"github.com/gin-gonic/gin"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/config"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/service"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/storage"
)

// SetupAPI wires the services, pipelines and handlers and registers all
// routes under /api/v1.
func SetupAPI(router *gin.Engine, cfg *config.Config) error {
	store, err := storage.NewTempStore(cfg.TempDir)
	if err != nil {
		return err
	}

	ocrService := service.NewOCRService(cfg.OCRBaseURL, cfg.OCRLocale)
	completionService := service.NewCompletionService(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel)

	ingredientHandler := NewIngredientHandler(service.NewExtractionPipeline(ocrService, completionService), store)
	recipeHandler := NewRecipeHandler(service.NewRecommendationPipeline(completionService, cfg.RecipeCount))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", HealthCheck)
		ingredientHandler.RegisterRoutes(v1)
		recipeHandler.RegisterRoutes(v1)
	}

	return nil
}
