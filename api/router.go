package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	service_i "github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	shutdownTimeout = 5 * time.Second
)

var ErrNilLogger = errors.New("router logger is nil")

// Router manages the HTTP server and its dependencies,
// including controllers and the metrics endpoint.
type Router struct {
	addr           string
	baseURL        string
	ginMode        string
	controllers    []i.Controller
	metricsHandler http.Handler
	logger         service_i.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr           string // Address to listen on
	BaseURL        string // Base URL for API routes
	GinMode        string // Mode for the Gin framework (e.g., release, debug, test)
	Controllers    []i.Controller
	MetricsHandler http.Handler // served on /metrics when set
	Logger         service_i.Logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) (*Router, error) {
	if config.Logger == nil {
		return nil, ErrNilLogger
	}
	return &Router{
		addr:           config.Addr,
		baseURL:        config.BaseURL,
		ginMode:        config.GinMode,
		controllers:    config.Controllers,
		metricsHandler: config.MetricsHandler,
		logger:         config.Logger,
	}, nil
}

// Handler builds the gin engine with every route mounted.
//
// Routes are grouped under the base URL:
// - {baseURL}/v1/...: controller routes.
// - /metrics: Prometheus exposition, when a metrics handler is configured.
// - /healthz: liveness check.
func (r *Router) Handler() http.Handler {
	if r.ginMode != "" {
		gin.SetMode(r.ginMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(r.logger))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(v1)
			}
		}
	}

	return router
}

// Run serves until ctx is done, then shuts the server down gracefully.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info(fmt.Sprintf("Listening on %s", r.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.logger.Info("Shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestLogger tags every request with an ID and logs its outcome.
func requestLogger(logger service_i.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(requestIDHeader, requestID)

		began := time.Now()
		ctx.Next()

		msg := fmt.Sprintf("%s %s %d %s request_id=%s",
			ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(began), requestID)
		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error(msg)
		case status >= http.StatusBadRequest:
			logger.Warning(msg)
		default:
			logger.Info(msg)
		}
	}
}
