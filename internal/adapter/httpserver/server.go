package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/avatarbridge/internal/app"
	"github.com/pscheid92/avatarbridge/internal/broadcast"
	"github.com/pscheid92/avatarbridge/internal/domain"
	"github.com/pscheid92/avatarbridge/internal/platform/config"
)

// speakService is the ingress surface the handlers need from the app layer.
type speakService interface {
	EmitFromWebhook(ctx context.Context, rawBody []byte, signature string) (domain.SpeakCommand, error)
	EmitManual(ctx context.Context, req app.SpeakRequest) (domain.SpeakCommand, error)
	Stop(ctx context.Context)
	ListLines() []domain.LineInfo
}

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	app         speakService
	broadcaster *broadcast.Broadcaster
	assetDir    string

	healthChecks []HealthCheck
	startTime    time.Time
}

// NewServer wires routes and middleware around the resolver service and the
// viewer broadcaster. assetDir is served read-only under /audio.
func NewServer(cfg *config.Config, app speakService, broadcaster *broadcast.Broadcaster, assetDir string, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		broadcaster:  broadcaster,
		assetDir:     assetDir,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port, "public_base", s.config.PublicBase)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
