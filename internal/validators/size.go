// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "github.com/MKhiriev/go-airs-adapter/models"

const (
	// MaxSyncContentSize is the largest combined content accepted by the
	// synchronous endpoint.
	MaxSyncContentSize = 2 << 20

	// MaxAsyncContentSize is the largest combined content accepted by the
	// asynchronous endpoint.
	MaxAsyncContentSize = 5 << 20
)

// ContentLimit returns the size ceiling in bytes for mode. An empty mode
// means sync.
func ContentLimit(mode models.ScanMode) int {
	if mode == models.ScanModeAsync {
		return MaxAsyncContentSize
	}
	return MaxSyncContentSize
}

// CheckContentSize measures the UTF-8 size of every content field in req and
// fails with a [*ContentSizeError] when it is over the limit for mode.
func CheckContentSize(req models.ScanRequest, mode models.ScanMode) error {
	size := 0
	for _, c := range req.Contents {
		size += c.Size()
	}

	if limit := ContentLimit(mode); size > limit {
		if mode == "" {
			mode = models.ScanModeSync
		}
		return &ContentSizeError{Size: size, Mode: mode, Limit: limit}
	}

	return nil
}
