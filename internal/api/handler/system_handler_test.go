package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/sundaynet/internal/service"
)

func countdownBody(t *testing.T, at time.Time) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gate := service.NewSundayGate(func() time.Time { return at })
	h := New(nil, nil, nil, nil, nil, nil, gate)

	r := gin.New()
	r.GET("/api/v1/countdown", h.Countdown)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/countdown", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data
}

func TestCountdownEndpoint(t *testing.T) {
	t.Run("open sunday", func(t *testing.T) {
		data := countdownBody(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, true, data["open"])
		cd := data["countdown"].(map[string]any)
		assert.EqualValues(t, 0, cd["days"])
		assert.EqualValues(t, 0, cd["hours"])
		assert.EqualValues(t, 0, cd["minutes"])
	})

	t.Run("closed midweek", func(t *testing.T) {
		data := countdownBody(t, time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, false, data["open"])
		cd := data["countdown"].(map[string]any)
		assert.NotEqualValues(t, 0, cd["days"])
	})
}
