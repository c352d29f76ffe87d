package leadimport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-outreach/internal/config"

	"go.uber.org/zap"
)

// IngestRequest is the single payload handed to the lead-ingestion
// service. ColumnMapping excludes do_not_import entries.
type IngestRequest struct {
	Leads           []LeadRecord           `json:"leads"`
	ColumnMapping   map[string]TargetField `json:"columnMapping"`
	FileName        string                 `json:"fileName"`
	DuplicateChecks DedupConfig            `json:"duplicateChecks"`
}

// IngestResponse is the ingestion service's settlement. Data is an
// opaque summary; unrecognized fields are ignored.
type IngestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// IngestClient talks to the external lead-ingestion service, which owns
// persistence and duplicate resolution
type IngestClient interface {
	ImportLeads(ctx context.Context, req IngestRequest) (*IngestResponse, error)
}

type httpIngestClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewIngestClient builds the HTTP client for the ingestion service.
// The timeout is configurable because a hung upload would otherwise pin
// a session in "uploading" forever; 0 disables it.
func NewIngestClient(cfg *config.Config, log *zap.Logger) IngestClient {
	return &httpIngestClient{
		baseURL: strings.TrimRight(cfg.IngestURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(cfg.IngestTimeoutSeconds) * time.Second,
		},
		log: log,
	}
}

// ImportLeads issues one request and awaits one structured response.
// Nothing is retried here: every retry is a deliberate user action.
func (c *httpIngestClient) ImportLeads(ctx context.Context, req IngestRequest) (*IngestResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ingest request: %w", err)
	}

	url := c.baseURL + "/api/leads/bulk-import"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build ingest request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Info("Sending lead batch to ingestion service",
		zap.String("url", url),
		zap.Int("leads", len(req.Leads)),
		zap.String("file", req.FileName),
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Error("Ingestion request failed", zap.Error(err))
		return nil, &UploadError{}
	}
	defer resp.Body.Close()

	var ingestResp IngestResponse
	if err := json.NewDecoder(resp.Body).Decode(&ingestResp); err != nil {
		c.log.Error("Ingestion response was not valid JSON",
			zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &UploadError{StatusCode: resp.StatusCode}
	}

	if !ingestResp.Success || resp.StatusCode >= 400 {
		return nil, &UploadError{Message: ingestResp.Message, StatusCode: resp.StatusCode}
	}

	return &ingestResp, nil
}
