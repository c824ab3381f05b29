package pipelineclient

import (
	"context"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	pipelinedomain "github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline/domain"
	"github.com/vfg2006/vx-block-audit/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBodySize bounds how much of a failed response is read.
const maxErrorBodySize = 64 << 10

type Client interface {
	RunFullPipeline(ctx context.Context, request pipelinedomain.RunRequest) (*pipelinedomain.RunResponse, error)
}

type PipelineClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a client for the pipeline service. A zero timeout leaves
// the request bounded only by its context.
func NewClient(cfg config.Pipeline) Client {
	return &PipelineClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
	}
}
