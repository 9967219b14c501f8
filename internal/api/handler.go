package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github-streak-viewer/internal/config"
	"github-streak-viewer/internal/export"
	"github-streak-viewer/internal/github"
	"github-streak-viewer/internal/snapshot"
	"github-streak-viewer/internal/stats"

	"github.com/gin-gonic/gin"
)

// Handler serves the stats API.
type Handler struct {
	config *config.Config
	store  *snapshot.Store
}

// NewHandler creates a new API handler.
func NewHandler(cfg *config.Config, store *snapshot.Store) *Handler {
	return &Handler{
		config: cfg,
		store:  store,
	}
}

// AuthMiddleware checks the service API token on read endpoints. When no
// token is configured the check is disabled.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.config.Server.APIToken == "" {
			c.Next()
			return
		}

		token := c.GetHeader("Authorization")

		// Accept both "Bearer TOKEN" and "TOKEN"
		token = strings.TrimPrefix(token, "Bearer ")

		if token != h.config.Server.APIToken {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RefreshRequest is the body of POST /api/v1/stats.
type RefreshRequest struct {
	Username       string `json:"username" binding:"required"`
	Token          string `json:"token" binding:"required"`
	IncludePrivate bool   `json:"include_private"`
}

// Refresh handles POST /api/v1/stats: it runs one full refresh with the
// caller's credentials, stores the snapshot and returns the record.
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[API] refreshing stats for %s", req.Username)

	client := github.NewGraphQLClient(req.Token, h.config.GitHub.GraphQLURL)
	assembler := stats.NewAssembler(client)

	record, err := assembler.Build(c.Request.Context(), req.Username, req.IncludePrivate)
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, github.ErrInvalidToken):
			status = http.StatusUnauthorized
		case errors.Is(err, github.ErrUserNotFound):
			status = http.StatusNotFound
		}
		log.Printf("[API] refresh failed for %s: %v", req.Username, err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.store.Put(record)
	c.JSON(http.StatusOK, record)
}

// Stats handles GET /api/v1/stats/:login: the last stored snapshot.
func (h *Handler) Stats(c *gin.Context) {
	login := c.Param("login")

	record, ok := h.store.Get(login)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no stats for user " + login})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Export handles GET /api/v1/stats/:login/export?format=json|csv.
func (h *Handler) Export(c *gin.Context) {
	login := c.Param("login")

	record, ok := h.store.Get(login)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no stats for user " + login})
		return
	}

	format := c.DefaultQuery("format", export.FormatJSON)
	now := time.Now()

	var (
		data        []byte
		contentType string
		err         error
	)

	switch format {
	case export.FormatJSON:
		data, err = export.ToJSON(record, now)
		contentType = "application/json"
	case export.FormatCSV:
		data, err = export.ToCSV(record)
		contentType = "text/csv"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format: " + format})
		return
	}

	if err != nil {
		log.Printf("[API] export failed for %s: %v", login, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(login, format, now)+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
