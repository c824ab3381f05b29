package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vx-block-audit/infrastructure/repository/mocks"
	"github.com/vfg2006/vx-block-audit/internal/config"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func retentionConfig(enabled bool) *config.Config {
	return &config.Config{
		RunHistoryRetention: config.RunHistoryRetention{
			CronSchedule: "0 2 * * *",
			Days:         90,
			Enabled:      enabled,
		},
	}
}

func TestRunHistoryRetentionService_Purge(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(repo *mocks.MockAuditRunRepository)
		wantDeleted int64
		wantError   string
	}{
		{
			name: "deletes expired runs",
			setup: func(repo *mocks.MockAuditRunRepository) {
				repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(12), nil)
			},
			wantDeleted: 12,
		},
		{
			name: "nothing to delete",
			setup: func(repo *mocks.MockAuditRunRepository) {
				repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(0), nil)
			},
			wantDeleted: 0,
		},
		{
			name: "repository failure is recorded in status",
			setup: func(repo *mocks.MockAuditRunRepository) {
				repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).Return(int64(0), errors.New("connection reset"))
			},
			wantError: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockAuditRunRepository(ctrl)
			tt.setup(repo)

			service := NewRunHistoryRetentionService(repo, retentionConfig(true))
			service.purgeExpiredRuns(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, tt.wantError, status["last_error"])
			assert.Equal(t, tt.wantDeleted, status["last_deleted"])
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
			if tt.wantError == "" {
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			}
		})
	}
}

func TestRunHistoryRetentionService_TriggerManualSync(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAuditRunRepository(ctrl)
	done := make(chan struct{})
	repo.EXPECT().DeleteOlderThan(gomock.Any(), 90).DoAndReturn(func(context.Context, int) (int64, error) {
		close(done)
		return 3, nil
	})

	service := NewRunHistoryRetentionService(repo, retentionConfig(false))
	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("manual purge did not run")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_deleted"] == int64(3)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRunHistoryRetentionService_WithoutRepository(t *testing.T) {
	service := NewRunHistoryRetentionService(nil, retentionConfig(true))

	assert.Equal(t, false, service.GetStatus()["enabled"])
	assert.False(t, service.TriggerManualSync())
	assert.NoError(t, service.Start(context.Background()))
}

func TestRunHistoryRetentionService_StartRejectsBadCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := retentionConfig(true)
	cfg.RunHistoryRetention.CronSchedule = "not a cron"

	service := NewRunHistoryRetentionService(mocks.NewMockAuditRunRepository(ctrl), cfg)
	assert.Error(t, service.Start(context.Background()))
}
