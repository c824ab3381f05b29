package auditing

import (
	"context"
	"time"

	"github.com/vfg2006/vx-block-audit/infrastructure/repository"
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/internal/metrics"
	"github.com/vfg2006/vx-block-audit/pkg/apiErrors"
	"github.com/vfg2006/vx-block-audit/pkg/log"
	"github.com/vfg2006/vx-block-audit/pkg/utils"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Service runs audits against the pipeline and, when a repository is
// attached, keeps a history of every invocation.
type Service struct {
	pipeline      Pipeline
	runRepository repository.AuditRunRepository
	now           func() time.Time
}

func NewService(pipeline Pipeline) *Service {
	return &Service{
		pipeline: pipeline,
		now:      time.Now,
	}
}

// WithHistory enables run history. A nil repository keeps it disabled.
func (s *Service) WithHistory(runRepository repository.AuditRunRepository) *Service {
	s.runRepository = runRepository
	return s
}

func (s *Service) HistoryEnabled() bool {
	return s.runRepository != nil
}

func (s *Service) Run(ctx context.Context, request *domain.AuditRequest) (*domain.AuditResult, error) {
	logger := log.ForContext(ctx)

	if err := Validate(request); err != nil {
		metrics.ObserveRejected()
		logger.WithError(err).Info("audit: submission rejected")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"audit_app_ids":    len(request.TargetAppIDs),
		"audit_exclusions": len(request.ExcludedBlockValues),
		"audit_recipient":  request.RecipientEmail,
	}).Info("audit: running analysis pipeline")

	startedAt := s.now()
	result, err := s.pipeline.RunFullPipeline(ctx, request)
	elapsed := s.now().Sub(startedAt)

	run := &domain.AuditRun{
		TargetAppIDs:        request.TargetAppIDs,
		ExcludedBlockValues: request.ExcludedBlockValues,
		RecipientEmail:      request.RecipientEmail,
		SenderEmail:         request.SenderEmail,
		Status:              domain.AuditRunStatusSucceeded,
		DurationMs:          elapsed.Milliseconds(),
		CreatedAt:           startedAt,
	}

	if err != nil {
		message := err.Error()
		run.Status = domain.AuditRunStatusFailed
		run.ErrorMessage = &message
		s.recordRun(ctx, run)
		metrics.ObservePipeline(metrics.OutcomeFailed, elapsed)

		logger.WithFields(log.Fields{
			"error":                err.Error(),
			"pipeline_duration_ms": elapsed.Milliseconds(),
		}).Error("audit: pipeline failed")

		return nil, NewAuditError(ErrPipelineFailed, apiErrors.ErrExternalService, message)
	}

	if result == nil {
		result = &domain.AuditResult{}
	}

	s.recordRun(ctx, run)
	metrics.ObservePipeline(metrics.OutcomeSucceeded, elapsed)

	logger.WithFields(log.Fields{
		"run_id":               run.ID,
		"pipeline_duration_ms": elapsed.Milliseconds(),
		"audit_summary_bytes":  len(result.HTMLSummary),
	}).Info("audit: pipeline finished")

	return result, nil
}

// recordRun never fails the audit: the user already got (or lost) their email.
func (s *Service) recordRun(ctx context.Context, run *domain.AuditRun) {
	if s.runRepository == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("history: failed to generate run ID")
		return
	}
	run.ID = id

	if err := s.runRepository.Save(ctx, run); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"run_id": run.ID,
			"error":  err.Error(),
		}).Error("history: failed to save audit run")
	}
}

func (s *Service) ListRuns(ctx context.Context, filters *domain.AuditRunFilters) ([]*domain.AuditRun, error) {
	if s.runRepository == nil {
		return nil, NewAuditError(ErrHistoryDisabled, apiErrors.ErrCommunication, "")
	}

	if filters == nil {
		filters = &domain.AuditRunFilters{}
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultHistoryLimit
	}
	if filters.Limit > maxHistoryLimit {
		filters.Limit = maxHistoryLimit
	}

	runs, err := s.runRepository.List(ctx, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("history: failed to list audit runs")
		return nil, NewAuditError(ErrHistoryQuery, apiErrors.ErrDatabaseOperation, "")
	}

	return runs, nil
}

func (s *Service) GetRun(ctx context.Context, id string) (*domain.AuditRun, error) {
	if s.runRepository == nil {
		return nil, NewAuditError(ErrHistoryDisabled, apiErrors.ErrCommunication, "")
	}

	run, err := s.runRepository.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"run_id": id,
			"error":  err.Error(),
		}).Error("history: failed to load audit run")
		return nil, NewAuditError(ErrHistoryQuery, apiErrors.ErrDatabaseOperation, "")
	}

	if run == nil {
		return nil, NewAuditError(ErrRunNotFound, apiErrors.ErrNotFound, id)
	}

	return run, nil
}
