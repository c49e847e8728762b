// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the scan engine: turning host items into scan
// requests, running them against the remote scan API in sync or async mode,
// batching, masking, and assembling output records.
package service

import (
	"context"

	"github.com/MKhiriev/go-airs-adapter/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Scanner runs one scan request to a verdict. The sync and async
// implementations differ in endpoint and in whether they poll.
type Scanner interface {
	Scan(ctx context.Context, req models.ScanRequest, opts models.ScanOptions) (models.ScanVerdict, error)
}

// BatchCoordinator scans many requests in bounded concurrent groups.
type BatchCoordinator interface {
	// ScanBatch returns one verdict per request, in request order. Any
	// failing request fails the whole batch.
	ScanBatch(ctx context.Context, reqs []models.ScanRequest, mode models.ScanMode, opts models.ScanOptions) ([]models.ScanVerdict, error)
}

// MaskingService scans content for sensitive data and reports the masked
// form returned by the remote service.
type MaskingService interface {
	Mask(ctx context.Context, req models.ScanRequest, original string, mode models.ScanMode, opts models.ScanOptions) (models.MaskingOutcome, error)
}

// ResultService fetches the state of an async scan once, without polling.
type ResultService interface {
	GetScanResult(ctx context.Context, scanID string, opts models.ScanOptions) (models.ScanResult, error)
}

// ScanService is the entry point used by host surfaces. It drives every
// input item through the engine and returns the output records.
type ScanService interface {
	// Dispatch processes one item. Batch items yield one record per batch
	// entry; every other operation yields a single record.
	Dispatch(ctx context.Context, index int, item models.Item) ([]models.Record, error)

	// Run processes items in order. With continueOnFail a failing item is
	// replaced by an error record; without it the run stops at the first
	// failure and returns the records produced so far with the error.
	Run(ctx context.Context, items []models.Item, continueOnFail bool) ([]models.Record, error)
}
