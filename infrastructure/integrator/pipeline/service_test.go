package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pipelinedomain "github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline/domain"
	"github.com/vfg2006/vx-block-audit/internal/domain"
)

type fakeClient struct {
	got  pipelinedomain.RunRequest
	resp *pipelinedomain.RunResponse
	err  error
}

func (f *fakeClient) RunFullPipeline(_ context.Context, request pipelinedomain.RunRequest) (*pipelinedomain.RunResponse, error) {
	f.got = request
	return f.resp, f.err
}

func TestPipelineService_RunFullPipeline(t *testing.T) {
	client := &fakeClient{
		resp: &pipelinedomain.RunResponse{
			HTMLSummary: "<p>summary</p>",
			CombinedRevMatrix: &pipelinedomain.SplitTable{
				Columns: []any{"competitor", float64(2024), []any{"rev", "usd"}},
				Index:   []any{"a", "b"},
				Data:    [][]any{{"king.com", 1.5, 2.0}, {"dreamgames.com", 3.25, nil}},
			},
		},
	}

	service := New(client)
	request := &domain.AuditRequest{
		TargetAppIDs:        []string{"app-1"},
		ExcludedBlockValues: []string{"king.com"},
		RecipientEmail:      "ops@example.com",
		SenderEmail:         "sender@gmail.com",
		GmailAppPassword:    "secret",
	}

	result, err := service.RunFullPipeline(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, []string{"app-1"}, client.got.TargetAppIDs)
	assert.Equal(t, []string{"king.com"}, client.got.ExcludedBlockValues)
	assert.Equal(t, "secret", client.got.GmailAppPassword)

	assert.Equal(t, "<p>summary</p>", result.HTMLSummary)
	require.NotNil(t, result.CombinedRevMatrix)
	assert.Equal(t, []string{"competitor", "2024", "rev / usd"}, result.CombinedRevMatrix.Columns)
	assert.True(t, result.CombinedRevMatrix.HasIndex())
	assert.Equal(t, 2, result.CombinedRevMatrix.Len())
	assert.Nil(t, result.SummaryMetrics)
}

func TestPipelineService_RunFullPipeline_Error(t *testing.T) {
	client := &fakeClient{err: errors.New("pipeline timed out")}

	result, err := New(client).RunFullPipeline(context.Background(), &domain.AuditRequest{TargetAppIDs: []string{"app-1"}})
	assert.EqualError(t, err, "pipeline timed out")
	assert.Nil(t, result)
}

func TestFactoryAuditResult_NilResponse(t *testing.T) {
	result := FactoryAuditResult(nil)
	require.NotNil(t, result)
	assert.Empty(t, result.HTMLSummary)
	assert.Nil(t, result.Dataset(domain.DatasetSummaryMetrics))
}
