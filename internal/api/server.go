package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vx-block-audit/internal/api/handler"
	"github.com/vfg2006/vx-block-audit/internal/api/handler/router"
	"github.com/vfg2006/vx-block-audit/internal/config"
	"github.com/vfg2006/vx-block-audit/internal/scheduler"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing"
	"github.com/vfg2006/vx-block-audit/pkg/middleware"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// New wires every route behind the global middleware chain. db may be nil
// when run history is disabled.
func New(
	config *config.Config,
	auditor auditing.Auditor,
	db handler.Pinger,
	retentionService *scheduler.RunHistoryRetentionService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RunHistoryRetentionService: retentionService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.DashboardPages(auditor, config.Dashboard)...),
		router.WithRoutes(handler.Audits(auditor)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(handler.NotFound()),
	)

	logrus.WithField("routes", rt.Routes()).Debug("server: routes registered")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler exposes the full middleware chain, mostly for tests.
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is canceled or the process gets SIGINT/SIGTERM, then
// drains in-flight requests.
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logrus.WithFields(logrus.Fields{
			"timeout": shutdownTimeout.String(),
		}).Info("server: graceful shutdown started")

		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}

		logrus.Info("server: shutdown complete")
		return nil
	})

	return g.Wait()
}

// Shutdown waits for in-flight requests. A pipeline run still in progress
// is cut off once ctx expires.
func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
