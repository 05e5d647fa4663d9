package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id64), true
}

// parseStatusQuery lê o filtro opcional ?status=; retorna nil quando ausente.
func parseStatusQuery(c *gin.Context) (*domain.Status, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}

	status, err := domain.ParseStatus(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return nil, false
	}

	return &status, true
}

func parseSkipLimit(c *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	return skip, limit
}
