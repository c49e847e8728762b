package service

import (
	"context"

	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/retry"
	"github.com/MKhiriev/go-airs-adapter/models"
)

type syncScanner struct {
	api      adapter.ScanAPI
	executor *retry.Executor

	logger *logger.Logger
}

// NewSyncScanner returns a [Scanner] that posts to the synchronous endpoint
// through the retry executor.
func NewSyncScanner(api adapter.ScanAPI, executor *retry.Executor, logger *logger.Logger) Scanner {
	return &syncScanner{api: api, executor: executor, logger: logger}
}

func (s *syncScanner) Scan(ctx context.Context, req models.ScanRequest, opts models.ScanOptions) (models.ScanVerdict, error) {
	s.logger.WithTransaction(req.TransactionID).Debug().Msg("sync scan")

	return retry.Do(ctx, s.executor, retry.Call{
		Op:         "scan sync request",
		MaxRetries: opts.MaxRetries,
		Timeout:    opts.Timeout,
	}, func(ctx context.Context) (models.ScanVerdict, error) {
		return s.api.ScanSync(ctx, req)
	})
}
