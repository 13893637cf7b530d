package devserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaykit/jay/logging"
	"github.com/jaykit/jay/render"
)

// AppFactory creates a fresh app context. The dev server builds one
// per page request and one per stream session.
type AppFactory func() *render.App

// Server hosts a jay app over HTTP for development: page rendering,
// a websocket stream for navigation and partial re-renders, health
// and metrics.
type Server struct {
	cfg     *Config
	log     *logging.Logger
	router  *gin.Engine
	metrics *Metrics
	newApp  AppFactory
	httpSrv *http.Server
}

// NewServer wires routes and middleware.
func NewServer(cfg *Config, newApp AppFactory, log *logging.Logger) *Server {
	if log == nil {
		log = logging.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:       12 * time.Hour,
	}))

	s := &Server{
		cfg:     cfg,
		log:     log,
		router:  router,
		metrics: NewMetrics(),
		newApp:  newApp,
	}

	router.GET("/", s.handleRoot)
	router.GET("/health", s.handleHealth)
	router.GET("/page", s.handlePage)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	router.GET("/stream", s.handleStream)

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the listener fails or Close is called.
func (s *Server) Run() error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Info("dev server listening", zap.String("addr", s.cfg.Addr()))
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	if s.httpSrv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "jay-dev",
		"status":  "running",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// handlePage renders the app at ?route=/x and returns the document.
func (s *Server) handlePage(c *gin.Context) {
	app := s.newApp()
	if app == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no app configured"})
		return
	}

	page := c.DefaultQuery("route", "/")
	fragment := strings.TrimPrefix(page, "/")
	if fragment != "" {
		app.Navigator().Navigate(fragment)
	}

	if err := app.RenderApp(); err != nil {
		s.log.Warn("page render failed", zap.String("route", page), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	s.metrics.Renders.WithLabelValues(page).Inc()

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(app.Document().HTML()))
}
