package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vx-block-audit/infrastructure/database/postgres"
	"github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline"
	"github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline/pipelineclient"
	"github.com/vfg2006/vx-block-audit/infrastructure/repository"
	"github.com/vfg2006/vx-block-audit/internal/api"
	"github.com/vfg2006/vx-block-audit/internal/api/handler"
	"github.com/vfg2006/vx-block-audit/internal/config"
	"github.com/vfg2006/vx-block-audit/internal/scheduler"
	"github.com/vfg2006/vx-block-audit/internal/usecases/auditing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pipelineClient := pipelineclient.NewClient(cfg.Pipeline)
	pipelineIntegrator := pipeline.New(pipelineClient)

	auditService := auditing.NewService(pipelineIntegrator)

	var (
		db      handler.Pinger
		runRepo repository.AuditRunRepository
	)

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		db = pgConn
		runRepo = repository.NewAuditRunRepository(pgConn)
		auditService.WithHistory(runRepo)
	} else {
		logrus.Info("database disabled, run history and retention are off")
	}

	retentionService := scheduler.NewRunHistoryRetentionService(runRepo, cfg)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start run history retention")
	}

	logrus.WithFields(logrus.Fields{
		"pipeline_url":     cfg.Pipeline.URL,
		"pipeline_timeout": cfg.Pipeline.Timeout.String(),
		"history_enabled":  auditService.HistoryEnabled(),
	}).Info("audit service ready")

	server, err := api.New(cfg, auditService, db, retentionService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
