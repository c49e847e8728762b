package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrScanFailed is returned when the remote service reports an async
	// scan job as failed.
	ErrScanFailed = errors.New("scan failed")

	// ErrPollingTimeout is returned when an async scan does not reach a
	// terminal state within the maximum polling duration.
	ErrPollingTimeout = errors.New("scan polling timed out")

	ErrNoScanner = errors.New("no scanner for scan mode")
)
