package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-airs-adapter/internal/config"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/utils"
	"github.com/MKhiriev/go-airs-adapter/models"
)

const (
	syncScanPath    = "/v1/scan/sync/request"
	asyncScanPath   = "/v1/scan/async/request"
	scanResultsPath = "/v1/scan/results/{scan_id}"
)

type httpScanAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPScanAdapter constructs an HTTP/REST implementation of [ScanAPI].
// It resolves the base URL from the region selector (failing on an unknown
// region before any request is made) and configures the underlying client
// with the API key header.
//
// The client has no timeout of its own: each call is bounded by its context,
// which carries the per-item timeout (cfg.RequestTimeout when the item sets
// none).
func NewHTTPScanAdapter(cfg config.Adapter, userAgent string, log *logger.Logger) (ScanAPI, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	baseURL, err := config.ResolveBaseURL(cfg.Region, cfg.CustomEndpoint)
	if err != nil {
		return nil, fmt.Errorf("resolve scan API base URL: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		APIKey:    cfg.APIKey,
		UserAgent: userAgent,
	})

	log.Info().Str("base_url", baseURL).Msg("scan API adapter created")

	return &httpScanAdapter{client: client, logger: log}, nil
}

func (h *httpScanAdapter) ScanSync(ctx context.Context, req models.ScanRequest) (models.ScanVerdict, error) {
	const op = "scan sync request"

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(syncScanPath)
	if err != nil {
		return models.ScanVerdict{}, mapRequestError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return models.ScanVerdict{}, err
	}

	var verdict models.ScanVerdict
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return models.ScanVerdict{}, fmt.Errorf("decode scan verdict: %w", err)
	}

	return verdict, nil
}

func (h *httpScanAdapter) ScanAsync(ctx context.Context, req models.ScanRequest) (models.AsyncJobHandle, error) {
	const op = "scan async request"

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(asyncScanPath)
	if err != nil {
		return models.AsyncJobHandle{}, mapRequestError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return models.AsyncJobHandle{}, err
	}

	var job models.AsyncJobHandle
	if err = json.Unmarshal(resp.Body(), &job); err != nil {
		return models.AsyncJobHandle{}, fmt.Errorf("decode scan job: %w", err)
	}
	if job.ScanID == "" {
		return models.AsyncJobHandle{}, fmt.Errorf("decode scan job: %w", ErrMissingScanID)
	}

	return job, nil
}

func (h *httpScanAdapter) GetScanResult(ctx context.Context, scanID string) (models.ScanResult, error) {
	const op = "get scan result"

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("scan_id", scanID).
		Get(scanResultsPath)
	if err != nil {
		return models.ScanResult{}, mapRequestError(op, err)
	}
	if err = mapHTTPError(op, resp); err != nil {
		return models.ScanResult{}, err
	}

	return models.DecodeScanResult(resp.Body())
}
