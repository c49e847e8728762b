// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-airs-adapter/internal/adapter"
	"github.com/MKhiriev/go-airs-adapter/internal/logger"
	"github.com/MKhiriev/go-airs-adapter/internal/retry"
	"github.com/MKhiriev/go-airs-adapter/models"
)

type asyncScanner struct {
	api      adapter.ScanAPI
	executor *retry.Executor

	logger *logger.Logger
}

// NewAsyncScanner returns a [Scanner] that submits a scan job and polls its
// results resource until the job completes, fails, or the maximum polling
// duration has elapsed.
func NewAsyncScanner(api adapter.ScanAPI, executor *retry.Executor, logger *logger.Logger) Scanner {
	return &asyncScanner{api: api, executor: executor, logger: logger}
}

func (s *asyncScanner) Scan(ctx context.Context, req models.ScanRequest, opts models.ScanOptions) (models.ScanVerdict, error) {
	log := s.logger.WithTransaction(req.TransactionID)

	job, err := retry.Do(ctx, s.executor, retry.Call{
		Op:         "scan async request",
		MaxRetries: opts.MaxRetries,
		Timeout:    opts.Timeout,
	}, func(ctx context.Context) (models.AsyncJobHandle, error) {
		return s.api.ScanAsync(ctx, req)
	})
	if err != nil {
		return models.ScanVerdict{}, err
	}

	log.Debug().Str("scan_id", job.ScanID).Str("report_id", job.ReportID).Msg("async scan submitted")

	return s.poll(ctx, job, opts, log)
}

// poll drives the submitted job to a terminal state. A 404 from the results
// endpoint means the result is not published yet and is polled again like a
// queued or processing job.
func (s *asyncScanner) poll(ctx context.Context, job models.AsyncJobHandle, opts models.ScanOptions, log *logger.Logger) (models.ScanVerdict, error) {
	started := time.Now()
	polls := 0

	for time.Since(started) < opts.MaxPollingDuration {
		polls++

		result, err := retry.Do(ctx, s.executor, retry.Call{
			Op:         "get scan result",
			MaxRetries: opts.MaxRetries,
			Timeout:    opts.Timeout,
		}, func(ctx context.Context) (models.ScanResult, error) {
			return s.api.GetScanResult(ctx, job.ScanID)
		})

		switch {
		case err != nil && adapter.IsNotFound(err):
			log.Debug().Int("poll", polls).Str("scan_id", job.ScanID).Msg("scan result not published yet")

		case err != nil:
			return models.ScanVerdict{}, err

		case result.Completed():
			log.Debug().Int("poll", polls).Str("scan_id", job.ScanID).Msg("async scan completed")
			return completeVerdict(*result.Verdict, job), nil

		case result.Job == nil:
			return models.ScanVerdict{}, fmt.Errorf("scan %s: empty scan result", job.ScanID)

		case result.Job.Status == models.JobStatusFailed:
			return models.ScanVerdict{}, jobFailedError(job.ScanID, result.Job.Error)

		default:
			log.Debug().Int("poll", polls).Str("status", string(result.Job.Status)).Msg("async scan still running")
		}

		if err = sleep(ctx, opts.PollingInterval); err != nil {
			return models.ScanVerdict{}, err
		}
	}

	return models.ScanVerdict{}, fmt.Errorf("%w: scan %s after %s", ErrPollingTimeout, job.ScanID, opts.MaxPollingDuration)
}

// jobFailedError wraps [ErrScanFailed] with the remote error text, if any.
func jobFailedError(scanID, remote string) error {
	if remote == "" {
		return fmt.Errorf("%w: scan %s", ErrScanFailed, scanID)
	}
	return fmt.Errorf("%w: scan %s: %s", ErrScanFailed, scanID, remote)
}

// completeVerdict fills the ids a results payload may omit from the job.
func completeVerdict(v models.ScanVerdict, job models.AsyncJobHandle) models.ScanVerdict {
	if v.ScanID == "" {
		v.ScanID = job.ScanID
	}
	if v.ReportID == "" {
		v.ReportID = job.ReportID
	}
	return v
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
