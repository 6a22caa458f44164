package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/dokanlabs/dokan-hisab/internal/config"
	"github.com/dokanlabs/dokan-hisab/internal/logger"
	"github.com/dokanlabs/dokan-hisab/models"
)

const ownerScopeHeader = "X-Owner-Scope"

type httpRemoteAdapter struct {
	client     *resty.Client
	ownerScope string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAccess] bound to one owner scope. It normalises and validates the
// base URL from adapterCfg.HTTPAddress and configures the underlying client
// with the resolved base URL and request timeout. The timeout also bounds
// every replayed mutation during a sync run, so a hung remote call cannot
// hold a run open indefinitely.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, ownerScope string, logger *logger.Logger) (RemoteAccess, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteAdapter{client: client, ownerScope: ownerScope, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [RemoteAccess]. It POSTs the record to
// POST /api/records/{type}.
func (h *httpRemoteAdapter) Create(ctx context.Context, record models.Record) error {
	resp, err := h.scopedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/records/" + string(record.Type))
	if err != nil {
		return fmt.Errorf("create record request: %w", err)
	}

	return mapHTTPError(resp)
}

// Update implements [RemoteAccess]. It PUTs the record to
// PUT /api/records/{type}/{id}.
func (h *httpRemoteAdapter) Update(ctx context.Context, record models.Record) error {
	resp, err := h.scopedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put("/api/records/" + string(record.Type) + "/" + record.ID)
	if err != nil {
		return fmt.Errorf("update record request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [RemoteAccess]. It sends
// DELETE /api/records/{type}/{id}. Returns [ErrNotFound] (wrapped) on
// HTTP 404.
func (h *httpRemoteAdapter) Delete(ctx context.Context, recordType models.RecordType, recordID string) error {
	resp, err := h.scopedRequest(ctx).
		Delete("/api/records/" + string(recordType) + "/" + recordID)
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// FetchAll implements [RemoteAccess]. It GETs /api/records/{type} and
// decodes the response into a [models.Record] slice.
func (h *httpRemoteAdapter) FetchAll(ctx context.Context, recordType models.RecordType) ([]models.Record, error) {
	resp, err := h.scopedRequest(ctx).
		Get("/api/records/" + string(recordType))
	if err != nil {
		return nil, fmt.Errorf("fetch records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.Record
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}

	return records, nil
}

// Ping implements [RemoteAccess]. It GETs /api/health.
func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteAdapter) scopedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(ownerScopeHeader, h.ownerScope)
}
