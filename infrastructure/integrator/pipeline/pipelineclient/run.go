package pipelineclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	pipelinedomain "github.com/vfg2006/vx-block-audit/infrastructure/integrator/pipeline/domain"
)

const runPath = "/run"

func (c *PipelineClient) RunFullPipeline(ctx context.Context, request pipelinedomain.RunRequest) (*pipelinedomain.RunResponse, error) {
	if request.ExcludedBlockValues == nil {
		request.ExcludedBlockValues = []string{}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding pipeline request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+runPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "error creating pipeline request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error calling pipeline")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, readError(resp)
	}

	var response pipelinedomain.RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrap(err, "error decoding pipeline response")
	}

	return &response, nil
}

// readError turns a non-2xx response into an error carrying the pipeline's
// own message, or the status text when the body has none.
func readError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errors.Errorf("pipeline returned %s", resp.Status)
	}

	var errorResponse pipelinedomain.ErrorResponse
	if json.Unmarshal(raw, &errorResponse) == nil {
		if message := errorResponse.Message(); message != "" {
			return errors.New(message)
		}
	}

	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "<") && len(text) <= 500 {
		return errors.New(text)
	}

	return errors.Errorf("pipeline returned %s", resp.Status)
}
