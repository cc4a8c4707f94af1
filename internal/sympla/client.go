// Package sympla implements the client for the Sympla public API: issuing
// authenticated GETs, timing them, and normalizing response envelopes.
package sympla

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/dyike/symplacheck/internal/config"
	"github.com/dyike/symplacheck/internal/models"
)

const tokenHeader = "S_TOKEN"

// Client issues authenticated requests against the Sympla public API.
// Every failure is terminal for its call: no retries are performed.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates an API client from the configuration.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTimeout(cfg.HTTPTimeout)

	return &Client{
		http:   client,
		logger: logger,
	}
}

// FetchEvents retrieves the first page of events visible to the token.
func (c *Client) FetchEvents(ctx context.Context, creds models.Credentials) (models.Table, error) {
	raw, _, err := c.get(ctx, creds, fmt.Sprintf("/%s/events", creds.Version))
	if err != nil {
		return models.Table{}, err
	}

	body, err := decodeEnvelope(raw)
	if err != nil {
		return models.Table{}, err
	}

	records, _, _ := Normalize(body, creds.Version)
	return models.BuildTable(records), nil
}

// FetchOrders retrieves the first page of orders for an event.
func (c *Client) FetchOrders(ctx context.Context, creds models.Credentials, eventID string) (*models.FetchResult, error) {
	return c.fetchCollection(ctx, creds, eventID, models.QueryOrders)
}

// FetchParticipants retrieves the first page of participants for an event.
func (c *Client) FetchParticipants(ctx context.Context, creds models.Credentials, eventID string) (*models.FetchResult, error) {
	return c.fetchCollection(ctx, creds, eventID, models.QueryParticipants)
}

func (c *Client) fetchCollection(ctx context.Context, creds models.Credentials, eventID string, query models.QueryType) (*models.FetchResult, error) {
	path := fmt.Sprintf("/%s/events/%s/%s", creds.Version, eventID, query)

	raw, callLatency, err := c.get(ctx, creds, path)
	if err != nil {
		return nil, err
	}

	// Processing covers everything local: envelope decode, normalization,
	// and table materialization.
	processStart := time.Now()
	body, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	records, pagination, total := Normalize(body, creds.Version)
	table := models.BuildTable(records)
	processingLatency := time.Since(processStart)

	return &models.FetchResult{
		EventID:           eventID,
		Type:              query,
		Version:           creds.Version,
		Records:           table,
		Pagination:        pagination,
		CallLatency:       callLatency,
		ProcessingLatency: processingLatency,
		TotalPossible:     total,
		FetchedAt:         time.Now(),
	}, nil
}

// get performs one authenticated GET and returns the raw body. The
// returned duration covers the network call only; envelope decoding is
// charged to processing time by the callers that track it.
func (c *Client) get(ctx context.Context, creds models.Credentials, path string) ([]byte, time.Duration, error) {
	if !creds.Complete() {
		return nil, 0, ErrMissingInput
	}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(tokenHeader, creds.Token).
		Get(path)
	callLatency := time.Since(start)

	if err != nil {
		c.logger.Debug("api call failed",
			zap.String("path", path),
			zap.Duration("latency", callLatency),
			zap.Error(err),
		)
		return nil, callLatency, &TransportError{Err: err}
	}

	c.logger.Debug("api call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("latency", callLatency),
	)

	switch resp.StatusCode() {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, callLatency, ErrUnauthorized
	default:
		return nil, callLatency, &UpstreamError{Status: resp.StatusCode()}
	}

	return resp.Body(), callLatency, nil
}

func decodeEnvelope(raw []byte) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return body, nil
}
