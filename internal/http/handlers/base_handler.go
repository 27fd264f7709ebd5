// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travelrelay/internal/modules/completion"
)

// chatResponse is the single /chat body shape for replies, refusals and failures.
type chatResponse struct {
	Response string `json:"response"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// writeChatError logs the failure class and renders the 500 "Error: <message>" contract.
func writeChatError(c *gin.Context, log zerolog.Logger, err error) {
	class := "internal"
	switch {
	case errors.Is(err, completion.ErrInvalidInput):
		class = "invalid_input"
	case errors.Is(err, completion.ErrUpstreamUnreachable):
		class = "upstream_unreachable"
	case errors.Is(err, completion.ErrUpstreamMalformed):
		class = "upstream_malformed"
	}
	log.Error().Err(err).Str("class", class).Msg("chat failed")
	writeJSON(c, http.StatusInternalServerError, chatResponse{Response: "Error: " + err.Error()})
}

func writeInternalError(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().Err(err).Msg("admin read failed")
	writeJSON(c, http.StatusInternalServerError, gin.H{"message": "internal error"})
}
