package auditing

import (
	"context"

	"github.com/vfg2006/vx-block-audit/internal/domain"
)

// Pipeline is the external analysis service: it fetches block and spend data,
// builds the AI summary, emails it and returns everything it computed.
type Pipeline interface {
	RunFullPipeline(ctx context.Context, request *domain.AuditRequest) (*domain.AuditResult, error)
}

// Auditor is what the HTTP layer talks to.
type Auditor interface {
	// Run validates the request and, only when it is complete, calls the pipeline.
	Run(ctx context.Context, request *domain.AuditRequest) (*domain.AuditResult, error)

	ListRuns(ctx context.Context, filters *domain.AuditRunFilters) ([]*domain.AuditRun, error)
	GetRun(ctx context.Context, id string) (*domain.AuditRun, error)
}
