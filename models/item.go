// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is one unit of work handed over by the host workflow. Fields that are
// irrelevant for the chosen Operation are ignored.
type Item struct {
	// Operation selects what the dispatcher does with the item.
	Operation Operation `json:"operation"`

	// Mode selects the sync or async endpoint. Empty means sync.
	Mode ScanMode `json:"mode,omitempty"`

	// TransactionID is sent as tr_id. A fresh one is generated when empty.
	TransactionID string `json:"transaction_id,omitempty"`

	Prompt   string `json:"prompt,omitempty"`
	Response string `json:"response,omitempty"`
	Context  string `json:"context,omitempty"`

	// Content is the text to mask for [OperationMaskData].
	Content string `json:"content,omitempty"`

	// ScanID identifies the scan for [OperationGetScanResult].
	ScanID string `json:"scan_id,omitempty"`

	// BatchItems are the scans of an [OperationBatchScan] item.
	BatchItems []BatchItem `json:"batch_items,omitempty"`

	// Metadata overrides the configured application metadata when set.
	Metadata ScanMetadata `json:"metadata"`

	// Options overrides the configured per-call options when set.
	Options ItemOptions `json:"options"`
}

// BatchItem is one entry of a batch scan. Index is assigned by position when
// the batch is built and is echoed on the matching output record.
type BatchItem struct {
	Index    int      `json:"-"`
	ItemType ItemType `json:"item_type"`
	Prompt   string   `json:"prompt,omitempty"`
	Response string   `json:"response,omitempty"`
	Context  string   `json:"context,omitempty"`
}

// ItemOptions are the per-item overrides supplied by the host. Zero values
// mean "use the configured default".
type ItemOptions struct {
	Profile            string   `json:"profile,omitempty"`
	Timeout            Duration `json:"timeout,omitempty"`
	MaxRetries         *int     `json:"max_retries,omitempty"`
	PollingInterval    Duration `json:"polling_interval,omitempty"`
	MaxPollingDuration Duration `json:"max_polling_duration,omitempty"`
}

// ScanOptions is the fully resolved per-item configuration. It is built once
// per item and passed explicitly to every engine component.
type ScanOptions struct {
	// Profile is the security profile the item is scanned against.
	Profile ProfileRef

	// Timeout bounds each individual network call.
	Timeout time.Duration

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	PollingInterval    time.Duration
	MaxPollingDuration time.Duration
}
