package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vx-block-audit/infrastructure/repository"
	"github.com/vfg2006/vx-block-audit/internal/config"
	"github.com/vfg2006/vx-block-audit/internal/metrics"
)

// RunHistoryRetentionConfig controls how long audit runs are kept.
type RunHistoryRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// RunHistoryRetentionService periodically deletes audit runs older than the
// retention window.
type RunHistoryRetentionService struct {
	scheduler     *gocron.Scheduler
	config        RunHistoryRetentionConfig
	runRepository repository.AuditRunRepository

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
	lastError           string
}

func NewRunHistoryRetentionService(
	runRepository repository.AuditRunRepository,
	appConfig *config.Config,
) *RunHistoryRetentionService {
	retentionConfig := RunHistoryRetentionConfig{
		CronSchedule:  appConfig.RunHistoryRetention.CronSchedule,
		RetentionDays: appConfig.RunHistoryRetention.Days,
		Enabled:       appConfig.RunHistoryRetention.Enabled && runRepository != nil,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"enabled":        retentionConfig.Enabled,
	}).Info("retention: run history retention configured")

	return &RunHistoryRetentionService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        retentionConfig,
		runRepository: runRepository,
	}
}

// Start schedules the purge. It is a no-op when retention is disabled.
func (s *RunHistoryRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("retention: run history retention disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("retention: starting scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeExpiredRuns(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling run history retention: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("retention: stopping scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RunHistoryRetentionService) purgeExpiredRuns(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("retention: purge already running, skipping")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	deleted, err := s.runRepository.DeleteOlderThan(ctx, s.config.RetentionDays)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("retention: failed to purge run history")
		return
	}

	s.lastError = ""
	s.lastDeleted = deleted
	s.lastSyncCompletedAt = time.Now()
	metrics.RetentionDeletedTotal.Add(float64(deleted))

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
		"duration":       time.Since(startTime).String(),
	}).Info("retention: run history purged")
}

// TriggerManualSync starts a purge in the background. It reports false when
// retention is unavailable or a purge is already running.
func (s *RunHistoryRetentionService) TriggerManualSync() bool {
	if s.runRepository == nil {
		return false
	}

	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()
	if running {
		logrus.Info("retention: purge already running, ignoring manual request")
		return false
	}

	logrus.Info("retention: manual purge requested")
	go s.purgeExpiredRuns(context.Background())
	return true
}

func (s *RunHistoryRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deleted":           s.lastDeleted,
		"last_error":             s.lastError,
	}
}
