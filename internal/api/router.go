// Package api implements the HTTP API over the topic catalog and course
// repository.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gocourses/internal/catalog"
	"github.com/jonesrussell/gocourses/internal/config"
	"github.com/jonesrussell/gocourses/internal/logger"
	"github.com/jonesrussell/gocourses/internal/repository"
)

const readHeaderTimeout = 10 * time.Second

// SetupRouter creates and configures the Gin router with all routes.
func SetupRouter(
	log logger.Interface,
	idx *catalog.Index,
	repo *repository.Repository,
) *gin.Engine {
	// Disable Gin's default logging
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	h := &handlers{idx: idx, repo: repo, log: log}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.GET("/topics", h.listTopics)
	v1.GET("/topics/search", h.searchTopics)
	v1.POST("/topics/validate", h.validateTopics)
	v1.GET("/courses", h.listCourses)
	v1.GET("/courses/search", h.searchCourse)
	v1.POST("/cache/clear", h.clearCache)
	v1.GET("/stats", h.stats)

	return router
}

// loggingMiddleware creates a middleware that logs HTTP requests.
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// corsMiddleware adds CORS headers to allow frontend access.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// NewHTTPServer builds the HTTP server around the configured router.
func NewHTTPServer(
	log logger.Interface,
	cfg config.Interface,
	idx *catalog.Index,
	repo *repository.Repository,
) *http.Server {
	router := SetupRouter(log, idx, repo)
	serverCfg := cfg.GetServerConfig()

	return &http.Server{
		Addr:              serverCfg.Address,
		Handler:           router,
		ReadTimeout:       serverCfg.ReadTimeout,
		WriteTimeout:      serverCfg.WriteTimeout,
		IdleTimeout:       serverCfg.IdleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
