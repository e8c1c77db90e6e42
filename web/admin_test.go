package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vendorhub/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDailyStatsRejectsBadDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(&config.Config{}, zap.NewNop())

	queries := []string{"", "?date=", "?date=not-a-date", "?date=24-08-2026", "?date=2026-13-40"}
	for _, q := range queries {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/reports/daily"+q, nil)
		s.handleAdminDailyStats(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
