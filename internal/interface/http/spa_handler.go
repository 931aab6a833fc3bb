package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/procobro/usuarios-api/pkg/response"
)

// SPAFallback is the catch-all (NoRoute) handler. Unmatched /api paths get
// a JSON 404; anything else is resolved against the bundled React build:
// a concrete file is served as-is, everything else gets index.html so the
// SPA router can take over. Without a bundle a JSON payload is returned.
func SPAFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if p == "/api" || strings.HasPrefix(p, "/api/") {
			response.Detail(c, http.StatusNotFound, "API endpoint not found")
			return
		}

		if staticDir != "" {
			file := filepath.Join(staticDir, filepath.FromSlash(path.Clean("/"+p)))
			if st, err := os.Stat(file); err == nil && !st.IsDir() {
				c.File(file)
				return
			}
			index := filepath.Join(staticDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}

		response.Mensaje(c, http.StatusOK, "Ruta no encontrada", gin.H{
			"available_routes": gin.H{
				"api":          "/api/",
				"usuarios":     "/api/usuarios",
				"estadisticas": "/api/estadisticas",
				"health":       "/api/health",
			},
		})
	}
}
