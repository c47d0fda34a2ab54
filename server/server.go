package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"promptpilot/session"
)

type Server struct {
	sess    *session.Session
	log     *zap.Logger
	origins []string
	metrics bool
}

type Option func(*Server)

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithAllowedOrigins enables CORS for the given browser origins.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithMetrics mounts request metrics and the /metrics endpoint.
func WithMetrics() Option {
	return func(s *Server) { s.metrics = true }
}

func New(sess *session.Session, opts ...Option) (*Server, error) {
	if sess == nil {
		return nil, errors.New("session required")
	}
	s := &Server{sess: sess, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Routes builds the gin engine serving the JSON API.
func (s *Server) Routes() http.Handler {
	router := gin.New()
	router.Use(requestLogger(s.log))
	router.Use(gin.Recovery())

	if len(s.origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = s.origins
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", requestIDHeader}
		corsConfig.ExposeHeaders = []string{"Content-Disposition", requestIDHeader}
		corsConfig.MaxAge = 12 * time.Hour
		router.Use(cors.New(corsConfig))
	}

	// before the routes: gin middleware only wraps routes added after it
	if s.metrics {
		p := ginprometheus.NewPrometheus("gin")
		p.Use(router)
	}

	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", health)
	router.HEAD("/health", health)

	api := router.Group("/api")
	api.GET("/tasks", s.listTasks)

	api.GET("/state", s.getState)
	api.PUT("/state/task", s.selectTask)
	api.POST("/state/panels/:panel/:op", s.panel)

	api.POST("/results", s.createResult)
	api.GET("/results", s.listResults)
	api.DELETE("/results", s.clearResults)
	api.GET("/results/:id", s.getResult)
	api.DELETE("/results/:id", s.deleteResult)
	api.GET("/results/:id/download", s.downloadResult)
	api.GET("/results/:id/preview", s.previewResult)
	api.POST("/results/:id/copy", s.copyResult)
	api.POST("/results/:id/share", s.shareResult)
	api.POST("/results/:id/select", s.selectResult)

	api.POST("/share", s.shareLatest)

	api.GET("/export", s.exportQuery)
	api.POST("/export", s.exportBody)

	return router
}
