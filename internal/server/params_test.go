package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParamsRouter(called *bool, specs ...ParameterSpec) *gin.Engine {
	r := gin.New()
	r.GET("/p", requireQueryParams(specs...), func(c *gin.Context) {
		*called = true
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireQueryParams_AllPresent(t *testing.T) {
	called := false
	r := newParamsRouter(&called, param("action", "enroll or unenroll"), param("emails", ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p?action=&emails=a@b.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestRequireQueryParams_Missing(t *testing.T) {
	called := false
	r := newParamsRouter(&called,
		param("email", "user email"),
		param("rolename", ""),
		param("mode", "'allow' or 'revoke'"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p?rolename=staff", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var resp missingParamsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Missing required query parameter(s)", resp.Error)
	assert.Equal(t, []string{"email", "mode"}, resp.Parameters)
	assert.Equal(t, map[string]string{"email": "user email", "mode": "'allow' or 'revoke'"}, resp.Info)
}

func TestRequireQueryParams_DeclarationOrder(t *testing.T) {
	called := false
	r := newParamsRouter(&called, param("b", ""), param("a", ""), param("c", ""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	var resp missingParamsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"b", "a", "c"}, resp.Parameters)
	assert.Empty(t, resp.Info)
}

func TestRequireQueryParams_NoneDeclared(t *testing.T) {
	called := false
	r := newParamsRouter(&called)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
