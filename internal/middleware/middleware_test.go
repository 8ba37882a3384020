package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(logger *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requestId": c.GetString(RequestIDKey)})
	})
	router.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{})
	})
	router.GET("/broken", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.JSON(http.StatusInternalServerError, gin.H{})
	})
	return router
}

func TestRequestID(t *testing.T) {
	logger, _ := test.NewNullLogger()
	router := setupRouter(logger)

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "order-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "order-42", w.Header().Get(RequestIDHeader))
		assert.Contains(t, w.Body.String(), "order-42")
	})
}

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	router := setupRouter(logger)

	testCases := []struct {
		path    string
		level   logrus.Level
		message string
	}{
		{path: "/ok", level: logrus.InfoLevel, message: "Request handled"},
		{path: "/missing", level: logrus.WarnLevel, message: "Request rejected"},
		{path: "/broken", level: logrus.ErrorLevel, message: "Request failed"},
	}

	for _, tt := range testCases {
		t.Run(tt.path, func(t *testing.T) {
			hook.Reset()
			req := httptest.NewRequest(http.MethodGet, tt.path+"?pageNo=1", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.message, entry.Message)
			assert.Equal(t, "req-1", entry.Data["request_id"])
			assert.Equal(t, tt.path+"?pageNo=1", entry.Data["path"])
		})
	}

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Contains(t, entry.Data["errors"], assert.AnError.Error())
}
