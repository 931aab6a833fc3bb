package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/procobro/usuarios-api/internal/interface/http"
)

// SystemModule wires the API info, statistics and health endpoints.
type SystemModule struct {
	Handler *handlers.SystemHandler
}

func NewSystemModule(h *handlers.SystemHandler) *SystemModule {
	return &SystemModule{Handler: h}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("", m.Handler.Root)
	rg.GET("/estadisticas", m.Handler.Estadisticas)
	rg.GET("/health", m.Handler.Health)
}
