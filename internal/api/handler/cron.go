package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vx-block-audit/internal/scheduler"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
)

const (
	CronJobTypeRetention = "retention"
)

// CronJobServices holds the jobs that can be triggered by hand.
type CronJobServices struct {
	RunHistoryRetentionService *scheduler.RunHistoryRetentionService
}

// RunCronJob starts one cron job outside of its schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type is required", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: manual run requested")

		switch cronType {
		case CronJobTypeRetention:
			if services.RunHistoryRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "run history retention is not available", nil)
				return
			}
			if !services.RunHistoryRetentionService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrCommunication, "run history retention is disabled or already running", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: retention", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RunHistoryRetentionService != nil {
			status[CronJobTypeRetention] = services.RunHistoryRetentionService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
