package handlers

import (
	"net/http"
	"testing"

	"imobiliaria-backend/internal/database"
	"imobiliaria-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	db := testutils.NewSQLiteDB(t)
	handler := NewHealthHandler(db)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)

	t.Run("healthy", func(t *testing.T) {
		var response HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["database"])
	})

	t.Run("ready", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ready":true`)
	})

	t.Run("live", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("closed pool is unhealthy", func(t *testing.T) {
		require.NoError(t, database.Close(db))

		var response HealthResponse
		testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/health", nil), http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}
