package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/aviwein/memorial-search/internal/apperr"
	mw "github.com/aviwein/memorial-search/pkg/middleware"
	pkgserver "github.com/aviwein/memorial-search/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const GracefulShutdownTimeout = 10 * time.Second

type Server struct {
	Echo *echo.Echo

	cfg     *Config
	lifeCtx context.Context
	stop    context.CancelFunc
}

func New(cfg *Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	return &Server{
		Echo:    e,
		cfg:     cfg,
		lifeCtx: ctx,
		stop:    stop,
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(mw.Logger())
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))
	return s
}

func (s *Server) SetupHealthChecks(checker pkgserver.HealthChecker) *Server {
	s.Echo.GET("/healthz", func(c echo.Context) error {
		if !checker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi() *Server {
	s.Echo.GET("/swagger/*", echoSwagger.WrapHandler)
	return s
}

// Context is the server lifetime: it ends when shutdown starts, and
// everything scoped to a page session hangs off it.
func (s *Server) Context() context.Context {
	return s.lifeCtx
}

// ShutdownSignal fires when shutdown begins, for resource cleanup.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.lifeCtx.Done()
}

func (s *Server) Start() error {
	defer s.stop()

	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Echo.Logger.Fatal("shutting down the server")
		}
	}()

	<-s.lifeCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		s.Echo.Logger.Fatal(err)
		return err
	}
	return nil
}
