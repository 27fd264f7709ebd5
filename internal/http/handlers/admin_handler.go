// README: Admin read endpoints over the query log.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travelrelay/internal/modules/query"
)

type AdminHandler struct {
	queries *query.Service
	log     zerolog.Logger
}

func NewAdminHandler(svc *query.Service, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{queries: svc, log: log}
}

// Queries handles GET /admin/queries.
func (h *AdminHandler) Queries(c *gin.Context) {
	records, err := h.queries.Queries(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, records)
}

// Analytics handles GET /admin/analytics.
func (h *AdminHandler) Analytics(c *gin.Context) {
	a, err := h.queries.Analytics(c.Request.Context())
	if err != nil {
		writeInternalError(c, h.log, err)
		return
	}
	writeJSON(c, http.StatusOK, a)
}
