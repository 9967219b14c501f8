package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github-streak-viewer/internal/config"
	"github-streak-viewer/internal/snapshot"
	"github-streak-viewer/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(cfg *config.Config, store *snapshot.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(cfg, store)
	router := gin.New()

	v1 := router.Group("/api/v1")
	v1.GET("/health", handler.Health)
	v1.POST("/stats", handler.Refresh)
	v1.GET("/stats/:login", handler.AuthMiddleware(), handler.Stats)
	v1.GET("/stats/:login/export", handler.AuthMiddleware(), handler.Export)

	return router
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		GitHub: config.GitHubConfig{GraphQLURL: "http://invalid.example"},
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(testConfig(), snapshot.NewStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatsReturnsSnapshot(t *testing.T) {
	store := snapshot.NewStore()
	store.Put(&stats.StatsRecord{Login: "octocat", CurrentStreak: 5})
	router := newTestRouter(testConfig(), store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var record stats.StatsRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "octocat", record.Login)
	assert.Equal(t, 5, record.CurrentStreak)
}

func TestStatsUnknownLogin(t *testing.T) {
	router := newTestRouter(testConfig(), snapshot.NewStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.Server.APIToken = "service-secret"

	store := snapshot.NewStore()
	store.Put(&stats.StatsRecord{Login: "octocat"})
	router := newTestRouter(cfg, store)

	// No token
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat", nil)
	req.Header.Set("Authorization", "Bearer service-secret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Raw token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat", nil)
	req.Header.Set("Authorization", "service-secret")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExportFormats(t *testing.T) {
	store := snapshot.NewStore()
	store.Put(&stats.StatsRecord{Login: "octocat", TotalContributions: 1234})
	router := newTestRouter(testConfig(), store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat/export?format=csv", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "github-stats-octocat-")
	assert.Contains(t, w.Body.String(), "Total Contributions,1234")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/stats/octocat/export?format=xml", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshValidation(t *testing.T) {
	router := newTestRouter(testConfig(), snapshot.NewStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats", strings.NewReader(`{"username": "octocat"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Token is required
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"invalid token", http.StatusUnauthorized, `{"message": "Bad credentials"}`, http.StatusUnauthorized},
		{"user not found", http.StatusOK, `{"data": {"user": null}}`, http.StatusNotFound},
		{"upstream failure", http.StatusInternalServerError, `oops`, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer upstream.Close()

			cfg := testConfig()
			cfg.GitHub.GraphQLURL = upstream.URL
			router := newTestRouter(cfg, snapshot.NewStore())

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/stats",
				strings.NewReader(`{"username": "octocat", "token": "t"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRefreshStoresSnapshot(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data": {"user": {
			"login": "octocat",
			"name": "Octo Cat",
			"repositories": {"totalCount": 2},
			"contributionsCollection": {
				"contributionCalendar": {"totalContributions": 10, "weeks": []}
			}
		}}}`)
	}))
	defer upstream.Close()

	cfg := testConfig()
	cfg.GitHub.GraphQLURL = upstream.URL
	store := snapshot.NewStore()
	router := newTestRouter(cfg, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats",
		strings.NewReader(`{"username": "octocat", "token": "t"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	record, ok := store.Get("octocat")
	require.True(t, ok)
	assert.Equal(t, 10, record.TotalContributions)
}
