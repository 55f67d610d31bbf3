package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCORSMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{name: "Disabled", enabled: false, origins: "https://app.example.com", wantNil: true},
		{name: "EnabledWithoutOrigins", enabled: true, origins: "", wantNil: true},
		{name: "EnabledOnlyBlanks", enabled: true, origins: " , ,", wantNil: true},
		{name: "EnabledWithOrigins", enabled: true, origins: "https://app.example.com, https://admin.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, discardLogger())
			if tt.wantNil {
				assert.Nil(t, middleware)
			} else {
				assert.NotNil(t, middleware)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		parseOrigins(" https://app.example.com ,,https://admin.example.com "),
	)
}

func corsRouter(enabled bool) *gin.Engine {
	router := gin.New()
	if middleware := createCORSMiddleware(enabled, "https://app.example.com", discardLogger()); middleware != nil {
		router.Use(middleware)
	}
	router.POST("/movies", func(c *gin.Context) {
		c.Header("Location", "/movies/1")
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})
	return router
}

func TestCORSIntegration(t *testing.T) {
	t.Run("HeadersAddedWhenEnabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/movies", nil)
		req.Header.Set("Origin", "https://app.example.com")
		corsRouter(true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Location")
	})

	t.Run("NoHeadersWhenDisabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/movies", nil)
		req.Header.Set("Origin", "https://app.example.com")
		corsRouter(false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		corsRouter(true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}
