// README: Recovery middleware rendering panics in the /chat error shape.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("request_id", GetRequestID(c)).Interface("panic", r).Msg("recovered panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"response": fmt.Sprintf("Error: %v", r)})
			}
		}()
		c.Next()
	}
}
