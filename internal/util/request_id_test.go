package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRequestIDRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		*captured = RequestIDFrom(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	var captured string
	router := newRequestIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if captured == "" {
		t.Fatalf("no request id visible to the handler")
	}
	if got := rec.Header().Get("X-Request-Id"); got != captured {
		t.Fatalf("response header = %q, handler saw %q", got, captured)
	}
}

func TestRequestIDPropagatedFromHeader(t *testing.T) {
	var captured string
	router := newRequestIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "incoming-id-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if captured != "incoming-id-42" {
		t.Fatalf("handler saw %q, want the incoming id", captured)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "incoming-id-42" {
		t.Fatalf("response header = %q, want the incoming id", got)
	}
}
