package handlers

import "github.com/gin-gonic/gin"

type HealthHandler struct {
	// ping reports whether the exhibition backend is reachable. nil
	// means readiness does not depend on it.
	ping func() error
}

func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(ctx *gin.Context) {
	if h.ping != nil {
		if err := h.ping(); err != nil {
			ctx.JSON(503, gin.H{"status": "degraded", "backend": err.Error()})
			return
		}
	}

	ctx.JSON(200, gin.H{"status": "ready"})
}
