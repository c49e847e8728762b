// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation names the kind of work the dispatcher performs for a single input
// item. The string values are the ones accepted from the host in item JSON.
type Operation string

const (
	// OperationPromptScan scans a single prompt.
	OperationPromptScan Operation = "promptScan"
	// OperationResponseScan scans a single model response.
	OperationResponseScan Operation = "responseScan"
	// OperationDualScan scans a prompt and its response together, with an
	// optional grounding context.
	OperationDualScan Operation = "dualScan"
	// OperationBatchScan scans a list of independent batch items.
	OperationBatchScan Operation = "batchScan"
	// OperationMaskData scans content and reports the DLP masking outcome.
	OperationMaskData Operation = "maskData"
	// OperationGetScanResult fetches the current state of an async scan once.
	OperationGetScanResult Operation = "getScanResult"
)

// IsValid reports whether o is one of the known operations.
func (o Operation) IsValid() bool {
	switch o {
	case OperationPromptScan, OperationResponseScan, OperationDualScan,
		OperationBatchScan, OperationMaskData, OperationGetScanResult:
		return true
	}
	return false
}

// ScanMode selects the remote endpoint family used for a scan.
type ScanMode string

const (
	// ScanModeSync submits to the synchronous endpoint and gets the verdict
	// in the same response.
	ScanModeSync ScanMode = "sync"
	// ScanModeAsync submits a job and polls the results endpoint.
	ScanModeAsync ScanMode = "async"
)

// IsValid reports whether m is a known scan mode.
func (m ScanMode) IsValid() bool {
	return m == ScanModeSync || m == ScanModeAsync
}

// ItemType tells which content fields of a [BatchItem] are scanned.
type ItemType string

const (
	ItemTypePrompt   ItemType = "prompt"
	ItemTypeResponse ItemType = "response"
	ItemTypeBoth     ItemType = "both"
)

// IsValid reports whether t is one of the known item types.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypePrompt, ItemTypeResponse, ItemTypeBoth:
		return true
	default:
		return false
	}
}
