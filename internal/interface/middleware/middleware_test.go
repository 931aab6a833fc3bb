package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if seen == "" {
		t.Fatalf("expected request_id in context")
	}
	if got := w.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("expected header %q to match context id %q", got, seen)
	}
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	var entry *logrus.Entry
	logger.AddHook(&captureHook{into: &entry})

	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if entry == nil {
		t.Fatalf("expected a log entry per request")
	}
	if entry.Data["status"] != http.StatusNoContent || entry.Data["path"] != "/ping" {
		t.Fatalf("unexpected log fields %v", entry.Data)
	}
	if entry.Data["request_id"] == "" {
		t.Fatalf("expected request_id field in access log")
	}
}

type captureHook struct {
	into **logrus.Entry
}

func (h *captureHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *captureHook) Fire(e *logrus.Entry) error {
	*h.into = e
	return nil
}
