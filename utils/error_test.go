package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandlerLogsThroughRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	requestLogger := zap.New(core).With(zap.String("requestID", "req-42"))

	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set("logger", requestLogger)
		c.Next()
	})
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal Server Error", resp.Message)

	entries := logs.FilterMessage("Unhandled panic").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["requestID"])
	assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
}

func TestJSONFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("logger", zap.NewNop())

	JSONFieldErrors(c, http.StatusUnprocessableEntity, "invalid booking request", map[string]string{"email": "Enter a valid email address."})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"message":"invalid booking request","fields":{"email":"Enter a valid email address."}}`, w.Body.String())
}

func TestJSONErrorOmitsEmptyFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("logger", zap.NewNop())

	JSONError(c, http.StatusConflict, "busy", "")

	assert.JSONEq(t, `{"message":"busy"}`, w.Body.String())
}
