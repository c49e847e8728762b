// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// ScanRecord is the success output for an item, or for one batch entry.
// Verdict fields are flattened so that the host can map them directly.
type ScanRecord struct {
	Operation     Operation `json:"operation"`
	Mode          ScanMode  `json:"mode,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`

	Action      string   `json:"action,omitempty"`
	Category    string   `json:"category,omitempty"`
	Confidence  float64  `json:"confidence"`
	ScanID      string   `json:"scan_id,omitempty"`
	ReportID    string   `json:"report_id,omitempty"`
	ProfileID   string   `json:"profile_id,omitempty"`
	ProfileName string   `json:"profile_name,omitempty"`
	Blocked     bool     `json:"blocked"`
	Violations  []string `json:"violations"`

	PromptDetected     *Detection  `json:"prompt_detected,omitempty"`
	ResponseDetected   *Detection  `json:"response_detected,omitempty"`
	PromptMaskedData   *MaskedData `json:"prompt_masked_data,omitempty"`
	ResponseMaskedData *MaskedData `json:"response_masked_data,omitempty"`

	Metadata *VerdictMetadata `json:"metadata,omitempty"`

	// Status is set by getScanResult while the job is still running.
	Status JobStatus `json:"status,omitempty"`

	// BatchIndex is the position of the entry inside its batch.
	BatchIndex *int `json:"batch_index,omitempty"`

	// Masking outcome, maskData only.
	OriginalContent *string `json:"original_content,omitempty"`
	MaskedContent   *string `json:"masked_content,omitempty"`
	MaskApplied     *bool   `json:"mask_applied,omitempty"`
	DLPDetected     *bool   `json:"dlp_detected,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// ApplyVerdict copies the verdict fields into the record.
func (r *ScanRecord) ApplyVerdict(v ScanVerdict) {
	r.Action = v.Action
	r.Category = v.Category
	r.Confidence = v.Confidence
	r.ScanID = v.ScanID
	r.ReportID = v.ReportID
	r.ProfileID = v.ProfileID
	r.ProfileName = v.ProfileName
	r.Blocked = v.Blocked
	r.Violations = v.Violations
	if r.Violations == nil {
		r.Violations = []string{}
	}
	r.PromptDetected = v.PromptDetected
	r.ResponseDetected = v.ResponseDetected
	r.PromptMaskedData = v.PromptMaskedData
	r.ResponseMaskedData = v.ResponseMaskedData
	meta := v.Metadata
	r.Metadata = &meta
}

// ErrorRecord replaces the success output of an item that failed while the
// host runs with continue-on-fail enabled.
type ErrorRecord struct {
	Error     string    `json:"error"`
	Operation Operation `json:"operation,omitempty"`
	ItemIndex int       `json:"item_index"`
	Timestamp time.Time `json:"timestamp"`
}

// Record is one output entry. Exactly one of Scan and Error is set.
type Record struct {
	Scan  *ScanRecord
	Error *ErrorRecord
}

// MarshalJSON implements [json.Marshaler] by emitting the populated variant.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(r.Error)
	}
	return json.Marshal(r.Scan)
}
