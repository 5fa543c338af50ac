package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swaggerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/swagger", SwaggerUI)
	r.GET("/swagger/spec", SwaggerSpec)
	return r
}

func TestSwagger_TitleFromSpec(t *testing.T) {
	t.Cleanup(func() { docs = nil })
	spec := []byte("openapi: 3.0.3\ninfo:\n  title: Family <Ledger>\n  version: 2.1.0\npaths: {}\n")

	title, err := SetSwaggerSpec(spec)
	require.NoError(t, err)
	assert.Equal(t, "Family <Ledger>", title)

	r := swaggerRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Family &lt;Ledger&gt; 2.1.0 - API Docs</title>")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/spec", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(spec), w.Body.String())
}

func TestSwagger_RejectsBadSpec(t *testing.T) {
	t.Cleanup(func() { docs = nil })

	_, err := SetSwaggerSpec([]byte("openapi: [unterminated"))
	require.Error(t, err)
	_, err = SetSwaggerSpec([]byte("openapi: 3.0.3\npaths: {}\n"))
	require.Error(t, err)

	w := httptest.NewRecorder()
	swaggerRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
