package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/der-api/internal/response"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness together with database reachability.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		response.FailWithDetail(c, http.StatusInternalServerError, response.ErrDatabase, err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
