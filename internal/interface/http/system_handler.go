package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/procobro/usuarios-api/internal/application"
	"github.com/procobro/usuarios-api/pkg/response"
)

// SystemHandler serves the statistics and monitoring endpoints.
type SystemHandler struct {
	Svc     *userapp.Service
	Logger  *logrus.Logger
	Version string
}

func NewSystemHandler(svc *userapp.Service, logger *logrus.Logger, version string) *SystemHandler {
	return &SystemHandler{Svc: svc, Logger: logger, Version: version}
}

// Root handles GET /api/
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mensaje": "API de usuarios funcionando",
		"version": h.Version,
	})
}

// Estadisticas handles GET /api/estadisticas
func (h *SystemHandler) Estadisticas(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("stats query failed")
		}
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_usuarios":     stats.Total,
		"usuarios_activos":   stats.Active,
		"usuarios_inactivos": stats.Inactive,
		"usuarios_hoy":       stats.CreatedToday,
	})
}

// Health handles GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now(),
		"version":   h.Version,
	})
}
