package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vx-block-audit/infrastructure/database/postgres"
	"github.com/vfg2006/vx-block-audit/internal/config"
)

// schemaStatements create the run history table. Every statement is
// idempotent so the script can be re-run on every deploy.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS audit_runs (
		id                    VARCHAR(21) PRIMARY KEY,
		target_app_ids        TEXT[] NOT NULL,
		excluded_block_values TEXT[] NOT NULL DEFAULT '{}',
		recipient_email       TEXT NOT NULL,
		sender_email          TEXT NOT NULL,
		status                VARCHAR(16) NOT NULL,
		error_message         TEXT,
		duration_ms           BIGINT NOT NULL DEFAULT 0,
		created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_runs_created_at ON audit_runs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_runs_status ON audit_runs (status)`,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("migration: starting schema bootstrap")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("migration: invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("migration: failed to connect to PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				logrus.WithFields(logrus.Fields{
					"statement": i + 1,
					"total":     len(schemaStatements),
				}).WithError(err).Error("migration: statement failed")
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Error("migration: transaction rolled back")
		os.Exit(1)
	}

	logrus.WithFields(logrus.Fields{
		"statements": len(schemaStatements),
		"duration":   time.Since(startTime).String(),
	}).Info("migration: schema is up to date")
}
