package router

import (
	"github.com/gin-gonic/gin"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/config"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/api"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	if err := api.SetupAPI(router, cfg); err != nil {
		return nil, err
	}

	return router, nil
}
