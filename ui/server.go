package ui

import (
	"context"
	"embed"
	"net/http"

	"statusboard/adapters/postgres"
	"statusboard/domain/sheet"
	"statusboard/internal"
	"statusboard/internal/config"

	"github.com/gin-gonic/gin"
)

//go:embed docs/api.md
var docFiles embed.FS

// Server is the HTTP surface: file upload, health, the upload audit trail,
// and rendered API docs.
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	normalizer *sheet.Normalizer
	uploads    postgres.UploadLogRepository // nil when the audit log is disabled
	log        *internal.Logger
	httpServer *http.Server
}

// NewServer creates the web server. uploads may be nil; the service then
// runs stateless and /api/uploads reports the audit log as disabled.
func NewServer(cfg *config.Config, uploads postgres.UploadLogRepository) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:     gin.New(),
		cfg:        cfg,
		normalizer: sheet.NewNormalizer(),
		uploads:    uploads,
		log:        internal.NewLogger("server"),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())
	s.router.Use(securityHeaders())
	s.router.MaxMultipartMemory = cfg.Upload.MaxSizeBytes

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.POST("/api/upload-excel", s.handleUploadExcel)
	s.router.GET("/api/health", s.handleHealth)
	s.router.GET("/api/uploads", s.handleUploads)
	s.router.GET("/docs", s.handleDocs)
}

// Handler exposes the router for tests and for the http.Server in main.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.router,
	}
	s.log.Info("listening on :%s", s.cfg.Server.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}
