package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ssautomart/vehicle-invoice-service/internal/config"
	"github.com/ssautomart/vehicle-invoice-service/internal/handler"
)

type pingHandler struct{}

func (pingHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Port:      8080,
		LogFormat: "json",
		LogLevel:  "info",
	}
}

func TestNewServerRegistersHandlerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var registrar handler.RouteRegistrar = pingHandler{}
	srv := NewServer(testConfig(), registrar)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	srv.GetRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestNewServerHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := NewServer(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.GetRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
