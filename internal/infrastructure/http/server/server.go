package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"restaurant/internal/infrastructure/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RequestMetrics observes served HTTP requests.
type RequestMetrics interface {
	RecordRequest(method, route string, status int, duration time.Duration)
}

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	metrics    RequestMetrics
	logger     *zap.Logger
}

func NewServer(orderHandler *handlers.OrderHandler, mealHandler *handlers.MealHandler, metrics RequestMetrics, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", zap.Error(err))
	}

	server := &Server{
		logger:  logger,
		router:  r,
		metrics: metrics,
	}
	r.Use(gin.Recovery())
	r.Use(server.requestLogger())

	server.setupRoutes(orderHandler, mealHandler)
	return server
}

func (s *Server) setupRoutes(orderHandler *handlers.OrderHandler, mealHandler *handlers.MealHandler) {
	s.router.PUT("/table/:table/meal/:meal", orderHandler.AddOrder)
	s.router.GET("/table/:table/meal/:meal", orderHandler.GetTableMealOrders)
	s.router.GET("/table/:table/orders", orderHandler.GetTableOrders)

	s.router.GET("/order/:id", orderHandler.GetOrder)
	s.router.DELETE("/order/:id", orderHandler.DeleteOrder)

	s.router.GET("/meals", mealHandler.List)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		s.metrics.RecordRequest(c.Request.Method, route, status, elapsed)
		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", elapsed))
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second}
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
