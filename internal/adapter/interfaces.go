// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client of the remote AI
// security scan API.
//
// The primary abstraction is [ScanAPI], which decouples the scan engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPScanAdapter]) built on resty.
//
// Every failed call is returned as a [*TransportError] whose [ErrorKind]
// (client, server, network) is set once in this package from the HTTP status
// or the absence of a response. Callers use [IsNotFound], [IsClientError]
// and [errors.Is] against the sentinels in errors.go instead of inspecting
// status codes themselves.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-airs-adapter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/scan_api_mock.go -package=mock

// ScanAPI is one call per method against the remote scan API. None of the
// methods retry; retries are layered on top by the caller.
type ScanAPI interface {
	// ScanSync posts req to the synchronous scan endpoint and returns the
	// decoded verdict.
	ScanSync(ctx context.Context, req models.ScanRequest) (models.ScanVerdict, error)

	// ScanAsync posts req to the asynchronous scan endpoint and returns the
	// handle of the created job.
	ScanAsync(ctx context.Context, req models.ScanRequest) (models.AsyncJobHandle, error)

	// GetScanResult fetches the results resource of scanID. The result is
	// either a completed verdict or the job handle of a running scan. A
	// result that is not published yet is reported as a 404
	// [*TransportError] (see [IsNotFound]).
	GetScanResult(ctx context.Context, scanID string) (models.ScanResult, error)
}
