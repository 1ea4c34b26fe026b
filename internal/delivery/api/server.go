// Package api is the public HTTP delivery of the shop.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"shop/config"
	"shop/internal/delivery"
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router"
	"shop/internal/delivery/api/validator"
	"shop/internal/domain/lifecycle"
	"shop/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// apiServer serves the shop API over h2c.
type apiServer struct {
	hostPort    string
	idleTimeout time.Duration
	logger      *slog.Logger
	echo        *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		hostPort:    net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		echo:        e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho layers the API concerns on top of the shared server setup.
// Product uploads are bounded again per file in the catalog handler.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := delivery.NewEcho(cfg, logger)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func (s *apiServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting shop HTTP server", slog.String("host_port", s.hostPort))

	h2s := &http2.Server{IdleTimeout: s.idleTimeout}
	if err := s.echo.StartH2CServer(s.hostPort, h2s); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down shop HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
