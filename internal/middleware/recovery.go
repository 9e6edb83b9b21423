package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// Recovery converts panics into the uniform 500 envelope. The fault is
// logged; the caller never sees internals. Deferred cleanups in the handler
// chain still run, so the temp image is released even on a panic path.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, types.Envelope{
					Status: http.StatusInternalServerError,
					Data:   types.ErrorBody{Error: "Internal Server Error"},
				})
			}
		}()

		c.Next()
	}
}
