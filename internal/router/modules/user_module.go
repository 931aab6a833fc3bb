package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/procobro/usuarios-api/internal/interface/http"
)

// UserModule wires the usuario CRUD handlers into routes under /api.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/usuarios", m.Handler.List)
	rg.POST("/usuarios", m.Handler.Create)
	rg.GET("/usuarios/:id", m.Handler.Get)
	rg.PUT("/usuarios/:id", m.Handler.Update)
	rg.DELETE("/usuarios/:id", m.Handler.Delete)
}
