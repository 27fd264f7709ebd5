// README: Travel chat handler.
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"travelrelay/internal/modules/completion"
	"travelrelay/internal/modules/prompt"
	"travelrelay/internal/modules/query"
)

type ChatHandler struct {
	queries *query.Service
	log     zerolog.Logger
}

func NewChatHandler(svc *query.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{queries: svc, log: log}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	req, err := bindChatRequest(c)
	if err != nil {
		writeChatError(c, h.log, fmt.Errorf("%w: request body: %w", completion.ErrInvalidInput, err))
		return
	}

	res, err := h.queries.Chat(c.Request.Context(), req)
	if err != nil {
		writeChatError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, chatResponse{Response: res.Reply})
}

var errNotObject = errors.New("body must be a JSON object")

// bindChatRequest decodes the body as a JSON object. A bare null would decode
// to an empty request, so it is rejected like any other non-object body.
func bindChatRequest(c *gin.Context) (prompt.Request, error) {
	var req prompt.Request
	body, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return req, errNotObject
	}
	if err := binding.JSON.BindBody(body, &req); err != nil {
		return req, err
	}
	return req, nil
}
