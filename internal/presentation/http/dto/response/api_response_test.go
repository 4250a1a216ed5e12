package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/invinci009/rmw/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func TestError_InternalFailureKeptServerSide(t *testing.T) {
	c, w := newTestContext(t)

	Error(c, errors.New("pq: connection refused"))

	assert.Equal(t, 500, w.Code)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Operation failed", body.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")

	// The detail stays on the context for the logger middleware
	require.Len(t, c.Errors, 1)
	assert.Contains(t, c.Errors[0].Err.Error(), "connection refused")
}

func TestError_ClientErrorNotAttached(t *testing.T) {
	c, w := newTestContext(t)

	Error(c, apperror.NewNotFoundError("Job card"))

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Job card not found")
	assert.Empty(t, c.Errors)
}

func TestError_AppErrorCodePreserved(t *testing.T) {
	c, w := newTestContext(t)

	Error(c, apperror.NewConflictError("An invoice already exists for this job card"))

	assert.Equal(t, 409, w.Code)
	assert.Empty(t, c.Errors)
}
