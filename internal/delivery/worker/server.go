package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"shop/config"
	"shop/internal/delivery"
	"shop/internal/delivery/worker/handler"
	"shop/internal/domain/lifecycle"
	"shop/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// workerServer receives push deliveries for the mail worker.
type workerServer struct {
	addr   string
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := delivery.NewEcho(params.Cfg, params.Logger)
	e.GET("/health", health)
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting mail worker HTTP server", slog.String("host_port", s.addr))

	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down mail worker HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
