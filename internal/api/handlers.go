package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/service"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondPipelineError maps a pipeline failure onto the wire envelope. An
// upstream failure passes the upstream status and raw body through
// unmodified; a format failure surfaces only the generic message, with the
// parse diagnostics kept in the logs.
func respondPipelineError(c *gin.Context, err error) {
	var upstream *service.UpstreamError
	var format *service.FormatError

	switch {
	case errors.Is(err, service.ErrNoImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
	case errors.Is(err, service.ErrNoIngredients):
		c.JSON(http.StatusBadRequest, types.Envelope{
			Status: http.StatusBadRequest,
			Data:   types.ErrorBody{Error: "No ingredients provided"},
		})
	case errors.As(err, &upstream):
		c.JSON(upstream.StatusCode, types.Envelope{
			Status: upstream.StatusCode,
			Data:   types.ErrorBody{Error: upstream.Body},
		})
	case errors.As(err, &format):
		log.Error().Err(err).Msg("model response failed structural parse")
		c.JSON(http.StatusInternalServerError, types.Envelope{
			Status: http.StatusInternalServerError,
			Data:   types.ErrorBody{Error: "Response format error"},
		})
	default:
		log.Error().Err(err).Msg("pipeline request failed")
		c.JSON(http.StatusInternalServerError, types.Envelope{
			Status: http.StatusInternalServerError,
			Data:   types.ErrorBody{Error: "Internal server error"},
		})
	}
}
