package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helpers for the handful of wire shapes the API uses. The payloads are
// intentionally flat (no envelope) to stay compatible with the React
// frontend's existing expectations.

// Detail writes {"detail": ...} with the given status. The detail value is
// a plain message for 400/404/500 and a field→reason map for 422.
func Detail(c *gin.Context, status int, detail any) {
	c.JSON(status, gin.H{"detail": detail})
}

// NotFound writes the canonical 404 payload.
func NotFound(c *gin.Context, msg string) {
	Detail(c, http.StatusNotFound, msg)
}

// Internal writes the generic 500 payload. Callers log the cause; the
// response never leaks it.
func Internal(c *gin.Context) {
	Detail(c, http.StatusInternalServerError, "Error interno del servidor")
}

// Mensaje writes {"mensaje": ..., ...extra} with the given status.
func Mensaje(c *gin.Context, status int, msg string, extra gin.H) {
	body := gin.H{"mensaje": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
