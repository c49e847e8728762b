package service

import (
	"context"

	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/retry"
	"github.com/MKhiriev/go-airs-adapter/models"
)

type resultService struct {
	api      adapter.ScanAPI
	executor *retry.Executor

	logger *logger.Logger
}

func NewResultService(api adapter.ScanAPI, executor *retry.Executor, logger *logger.Logger) ResultService {
	return &resultService{api: api, executor: executor, logger: logger}
}

func (r *resultService) GetScanResult(ctx context.Context, scanID string, opts models.ScanOptions) (models.ScanResult, error) {
	r.logger.Debug().Str("scan_id", scanID).Msg("fetching scan result")

	return retry.Do(ctx, r.executor, retry.Call{
		Op:         "get scan result",
		MaxRetries: opts.MaxRetries,
		Timeout:    opts.Timeout,
	}, func(ctx context.Context) (models.ScanResult, error) {
		return r.api.GetScanResult(ctx, scanID)
	})
}
