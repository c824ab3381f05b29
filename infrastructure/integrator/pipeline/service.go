package pipeline

import (
	"context"
	"fmt"

	pipelinedomain "github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline/domain"
	"github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline/pipelineclient"
	"github.com/vfg2006/vx-block-audit/internal/domain"
	"github.com/vfg2006/vx-block-audit/pkg/log"
)

type PipelineIntegrator interface {
	RunFullPipeline(ctx context.Context, request *domain.AuditRequest) (*domain.AuditResult, error)
}

type PipelineService struct {
	Client pipelineclient.Client
}

func New(client pipelineclient.Client) PipelineIntegrator {
	return &PipelineService{
		Client: client,
	}
}

func (s *PipelineService) RunFullPipeline(ctx context.Context, request *domain.AuditRequest) (*domain.AuditResult, error) {
	resp, err := s.Client.RunFullPipeline(ctx, pipelinedomain.RunRequest{
		TargetAppIDs:        request.TargetAppIDs,
		ExcludedBlockValues: request.ExcludedBlockValues,
		RecipientEmail:      request.RecipientEmail,
		SenderEmail:         request.SenderEmail,
		GmailAppPassword:    request.GmailAppPassword,
	})
	if err != nil {
		return nil, err
	}

	result := FactoryAuditResult(resp)

	log.ForContext(ctx).WithFields(log.Fields{
		"pipeline_summary_bytes": len(result.HTMLSummary),
		"pipeline_summary_rows":  result.SummaryMetrics.Len(),
	}).Debug("pipeline: response decoded")

	return result, nil
}

func FactoryAuditResult(resp *pipelinedomain.RunResponse) *domain.AuditResult {
	if resp == nil {
		return &domain.AuditResult{}
	}

	return &domain.AuditResult{
		HTMLSummary:              resp.HTMLSummary,
		CombinedBlocksWithSpend:  FactoryTable(resp.CombinedBlocksWithSpend),
		CombinedBlocksWithGlobal: FactoryTable(resp.CombinedBlocksWithGlobal),
		CombinedSummaryOur:       FactoryTable(resp.CombinedSummaryOur),
		CombinedRevMatrix:        FactoryTable(resp.CombinedRevMatrix),
		SummaryMetrics:           FactoryTable(resp.SummaryMetrics),
	}
}

// FactoryTable converts a split-oriented frame. Column labels may be numbers
// or tuples on the wire and are rendered as text.
func FactoryTable(table *pipelinedomain.SplitTable) *domain.Table {
	if table == nil {
		return nil
	}

	columns := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		columns[i] = columnLabel(column)
	}

	return &domain.Table{
		Columns: columns,
		Index:   table.Index,
		Data:    table.Data,
	}
}

func columnLabel(column any) string {
	switch value := column.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprint(value)
	case []any:
		label := ""
		for i, part := range value {
			if i > 0 {
				label += " / "
			}
			label += columnLabel(part)
		}
		return label
	default:
		return fmt.Sprint(value)
	}
}
